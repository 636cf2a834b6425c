package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Target renders a Model into a declaration and a definition artifact for
// one host language, and renders the poisoned declaration for a rejection.
type Target interface {
	Name() string
	// Check reports problems that make the Model unrenderable for this
	// target, such as two keys mapping onto one identifier.
	Check(m *Model) error
	Declaration(m *Model) ([]byte, error)
	Definition(m *Model) ([]byte, error)
	// Poison returns a declaration artifact that makes any build including
	// it fail, quoting each diagnostic.
	Poison(diagnostics []string) []byte
}

// Generate renders both artifacts of m. Either both are returned or an error.
func Generate(t Target, m *Model) (Generated, error) {
	if err := t.Check(m); err != nil {
		return Generated{}, err
	}
	decl, err := t.Declaration(m)
	if err != nil {
		return Generated{}, err
	}
	def, err := t.Definition(m)
	if err != nil {
		return Generated{}, err
	}
	return Generated{Target: t.Name(), Declaration: decl, Definition: def}, nil
}

// Reject wraps diagnostics into the rejection outcome.
func Reject(diagnostics []string) Rejected {
	return Rejected{Diagnostics: append([]string(nil), diagnostics...)}
}

// NewTarget returns the target registered under name with default settings.
func NewTarget(name string) (Target, error) {
	switch name {
	case CPPTargetName:
		return NewCPPTarget(), nil
	case GoTargetName:
		return NewGoTarget(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}

// TargetNames lists every supported target.
func TargetNames() []string {
	return []string{CPPTargetName, GoTargetName}
}

func parseTemplate(name string, funcs template.FuncMap) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name))
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToRender, tmpl.Name()), err)
	}
	return buf.Bytes(), nil
}
