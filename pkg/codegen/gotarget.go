package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const (
	GoTargetName     = "go"
	DefaultGoPackage = "l10n"
	DefaultGoRuntime = "github.com/dmitrymomot/locgen/pkg/localize"
)

// Methods of the generated Strings type.
var goReserved = []string{"SetLang", "Lang", "Load"}

var goFuncs = template.FuncMap{
	"goIdent":  goIdent,
	"goString": strconv.Quote,
}

var (
	goDeclaration = parseTemplate("go_declaration.tmpl", goFuncs)
	goDefinition  = parseTemplate("go_definition.tmpl", goFuncs)
)

// GoTarget emits a Go package: the declaration holds the Strings type with
// one method per key, the definition holds the table layout and constructor.
// Both files belong to the same package and are backed by pkg/localize.
type GoTarget struct {
	pkg     string
	runtime string
}

// GoOption configures a GoTarget.
type GoOption func(*GoTarget)

// WithPackage sets the package clause of both generated files.
func WithPackage(name string) GoOption {
	return func(t *GoTarget) {
		if name != "" {
			t.pkg = name
		}
	}
}

// WithRuntimeImport sets the import path of the localize runtime.
func WithRuntimeImport(importPath string) GoOption {
	return func(t *GoTarget) {
		if importPath != "" {
			t.runtime = importPath
		}
	}
}

func NewGoTarget(opts ...GoOption) *GoTarget {
	t := &GoTarget{pkg: DefaultGoPackage, runtime: DefaultGoRuntime}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *GoTarget) Name() string { return GoTargetName }

func (t *GoTarget) Check(m *Model) error {
	if !token.IsIdentifier(t.pkg) {
		return fmt.Errorf("%w: %q is not a valid Go package name", ErrInvalidModel, t.pkg)
	}
	if diags := collisions("key", m.keyNames(), goIdent, goReserved); len(diags) > 0 {
		return &CollisionError{Target: GoTargetName, Diagnostics: diags}
	}
	return nil
}

type goData struct {
	Package string
	Runtime string
	Model   *Model
}

func (t *GoTarget) Declaration(m *Model) ([]byte, error) {
	return t.render(goDeclaration, "declaration.go", m)
}

func (t *GoTarget) Definition(m *Model) ([]byte, error) {
	return t.render(goDefinition, "definition.go", m)
}

func (t *GoTarget) render(tmpl *template.Template, filename string, m *Model) ([]byte, error) {
	src, err := render(tmpl, goData{Package: t.pkg, Runtime: t.runtime, Model: m})
	if err != nil {
		return nil, err
	}
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToFormat, filename), err)
	}
	return out, nil
}

// Poison returns a file of the target package that fails type checking;
// each diagnostic appears verbatim in the compiler's error output.
func (t *GoTarget) Poison(diagnostics []string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by locgen. DO NOT EDIT.\n\npackage %s\n\n", t.pkg)
	buf.WriteString("// Localization catalogs were rejected. Fix them and regenerate.\nvar (\n")
	for _, d := range diagnostics {
		fmt.Fprintf(&buf, "\t_ int = %s\n", strconv.Quote(strings.TrimSpace(d)))
	}
	buf.WriteString(")\n")
	return buf.Bytes()
}
