package codegen

import (
	"bytes"
	"fmt"
	"path"
	"slices"
	"strings"
	"text/template"
)

const (
	CPPTargetName     = "cpp"
	DefaultCPPStruct  = "ll"
	DefaultCPPHeader  = "LocalizationGen.h"
	DefaultCPPGuard   = "LOCALIZATION_GEN_H_"
	cppPoisonPreamble = "// Code generated by locgen. DO NOT EDIT.\n"
)

// cppKeywords holds the C++20 keywords and alternative operator tokens.
var cppKeywords = []string{
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "co_await", "co_return", "co_yield", "compl", "concept", "const",
	"const_cast", "consteval", "constexpr", "constinit", "continue", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires", "return",
	"short", "signed", "sizeof", "static", "static_assert", "static_cast",
	"struct", "switch", "template", "this", "thread_local", "throw", "true",
	"try", "typedef", "typeid", "typename", "union", "unsigned", "using",
	"virtual", "void", "volatile", "wchar_t", "while", "xor", "xor_eq",
}

// cppGeneratedNames are members and macros of the generated header.
var cppGeneratedNames = []string{
	"setLang", "load", "m_currentStrings", "LocalMap", "GENERATE_LOCALIZED_KEY",
}

// cppLibraryMacros are object-like macros that <string> and <fstream> pull
// in from the C library on common toolchains.
var cppLibraryMacros = []string{
	"NULL", "EOF", "BUFSIZ", "FILENAME_MAX", "errno", "stdin", "stdout", "stderr",
}

var cppFuncs = template.FuncMap{
	"cppIdent":  cppIdent,
	"cppString": cppString,
}

var (
	cppDeclaration = parseTemplate("cpp_declaration.tmpl", cppFuncs)
	cppDefinition  = parseTemplate("cpp_definition.tmpl", cppFuncs)
)

// CPPTarget emits a header declaring struct ll with one static accessor per
// key and a source file holding the per-language tables, setLang and load.
type CPPTarget struct {
	structName string
	headerName string
	guard      string
}

// CPPOption configures a CPPTarget.
type CPPOption func(*CPPTarget)

// WithStructName sets the name of the generated struct.
func WithStructName(name string) CPPOption {
	return func(t *CPPTarget) {
		if name != "" {
			t.structName = name
		}
	}
}

// WithHeaderName sets the file name the definition includes.
// Any directory part is dropped.
func WithHeaderName(name string) CPPOption {
	return func(t *CPPTarget) {
		if name != "" {
			t.headerName = path.Base(name)
		}
	}
}

// WithIncludeGuard sets the header's include guard macro.
func WithIncludeGuard(guard string) CPPOption {
	return func(t *CPPTarget) {
		if guard != "" {
			t.guard = guard
		}
	}
}

func NewCPPTarget(opts ...CPPOption) *CPPTarget {
	t := &CPPTarget{
		structName: DefaultCPPStruct,
		headerName: DefaultCPPHeader,
		guard:      DefaultCPPGuard,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *CPPTarget) Name() string { return CPPTargetName }

// Check rejects identifier collisions and catalogs the generated loader cannot parse.
func (t *CPPTarget) Check(m *Model) error {
	if !strings.EqualFold(path.Ext(m.CatalogFile), ".json") {
		return fmt.Errorf("%w: %s target loads JSON at run time, got %q", ErrUnsupportedCatalog, CPPTargetName, m.CatalogFile)
	}
	if cppIdent(t.structName) != t.structName || slices.Contains(cppKeywords, t.structName) {
		return fmt.Errorf("%w: %q is not a valid C++ struct name", ErrInvalidModel, t.structName)
	}

	diags := collisions("key", m.keyNames(), cppIdent, t.reserved(m))
	diags = append(diags, collisions("language", m.Languages, cppIdent, nil)...)
	if len(diags) > 0 {
		return &CollisionError{Target: CPPTargetName, Diagnostics: diags}
	}
	return nil
}

// reserved returns every identifier a key accessor must not take for m.
func (t *CPPTarget) reserved(m *Model) []string {
	reserved := slices.Concat(cppKeywords, cppGeneratedNames, cppLibraryMacros, []string{t.structName})
	for _, lang := range m.Languages {
		reserved = append(reserved, "m_strings"+cppIdent(lang))
	}
	return reserved
}

type cppData struct {
	Struct     string
	HeaderName string
	Guard      string
	Model      *Model
	NonDefault []string
}

func (t *CPPTarget) data(m *Model) cppData {
	return cppData{
		Struct:     t.structName,
		HeaderName: t.headerName,
		Guard:      t.guard,
		Model:      m,
		NonDefault: m.NonDefaultLanguages(),
	}
}

func (t *CPPTarget) Declaration(m *Model) ([]byte, error) {
	return render(cppDeclaration, t.data(m))
}

func (t *CPPTarget) Definition(m *Model) ([]byte, error) {
	return render(cppDefinition, t.data(m))
}

// Poison returns a header with one #error directive per diagnostic.
func (t *CPPTarget) Poison(diagnostics []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(cppPoisonPreamble)
	for _, d := range diagnostics {
		fmt.Fprintf(&buf, "#error %s\n", strings.ReplaceAll(d, "\n", " "))
	}
	return buf.Bytes()
}

// cppString quotes s as a C++ narrow string literal. Bytes outside printable
// ASCII other than UTF-8 sequences are written as three-digit octal escapes,
// which unlike \x cannot swallow a following character.
func cppString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '?' && i+1 < len(s) && s[i+1] == '?':
			b.WriteString(`\?`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
