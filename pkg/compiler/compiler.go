package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/locgen/pkg/catalog"
	"github.com/dmitrymomot/locgen/pkg/codegen"
	"github.com/dmitrymomot/locgen/pkg/coverage"
	"github.com/dmitrymomot/locgen/pkg/keyindex"
	"github.com/dmitrymomot/locgen/pkg/logger"
)

const DefaultLanguage = "en"

// Compiler runs the pipeline for one catalog root and one pair of output paths:
// load, validate, assign indices, render, write.
type Compiler struct {
	loader      *catalog.Loader
	target      codegen.Target
	declaration string
	definition  string
	defaultLang string
	runtimeDir  string
	logger      *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithTarget sets the code generation target. Defaults to the cpp target.
func WithTarget(t codegen.Target) Option {
	return func(c *Compiler) {
		if t != nil {
			c.target = t
		}
	}
}

// WithDefaultLanguage sets the language that must be present and that unknown
// run-time language codes fall back to.
func WithDefaultLanguage(code string) Option {
	return func(c *Compiler) {
		if code != "" {
			c.defaultLang = code
		}
	}
}

// WithRuntimeDir sets the directory, relative to the run-time root, the
// generated loader reads language directories from.
func WithRuntimeDir(dir string) Option {
	return func(c *Compiler) {
		if dir != "" {
			c.runtimeDir = dir
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Compiler writing the declaration artifact to declarationPath
// and the definition artifact to definitionPath.
func New(loader *catalog.Loader, declarationPath, definitionPath string, opts ...Option) (*Compiler, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: nil catalog loader", ErrFailedToLoad)
	}
	if declarationPath == "" || definitionPath == "" {
		return nil, fmt.Errorf("%w: both artifact paths are required", ErrInvalidOutput)
	}
	if filepath.Clean(declarationPath) == filepath.Clean(definitionPath) {
		return nil, fmt.Errorf("%w: declaration and definition share path %s", ErrInvalidOutput, declarationPath)
	}

	c := &Compiler{
		loader:      loader,
		target:      codegen.NewCPPTarget(),
		declaration: declarationPath,
		definition:  definitionPath,
		defaultLang: DefaultLanguage,
		runtimeDir:  codegen.DefaultRuntimeDir,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("compiler"), logger.Target(c.target.Name()))
	return c, nil
}

// Compile loads and validates the catalogs and renders the artifacts in memory.
// A catalog set that violates coverage, or whose names cannot be mapped onto
// target identifiers, yields codegen.Rejected with a nil error. Errors are
// reserved for failures that are not the catalogs' fault, plus malformed
// catalog files.
func (c *Compiler) Compile(ctx context.Context) (codegen.Outcome, error) {
	start := time.Now()

	res, err := c.loader.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrCompilationCancelled, err)
	}

	report := coverage.Validate(res.Languages, res.Coverage, c.defaultLang)
	if !report.Valid() {
		for _, v := range report.Violations {
			c.logger.ErrorContext(ctx, "coverage violation", logger.Error(v))
		}
		return codegen.Reject(report.Diagnostics()), nil
	}

	idx := keyindex.Assign(res.Keys())
	model, err := codegen.NewModel(res.Languages, idx, c.defaultLang,
		codegen.WithRuntimeDir(c.runtimeDir),
		codegen.WithCatalogFile(c.loader.FileName()),
	)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}

	out, err := codegen.Generate(c.target, model)
	var collision *codegen.CollisionError
	if errors.As(err, &collision) {
		diags := make([]string, len(collision.Diagnostics))
		for i, d := range collision.Diagnostics {
			c.logger.ErrorContext(ctx, "identifier collision", slog.String("detail", d))
			diags[i] = "ERROR: " + d
		}
		return codegen.Reject(diags), nil
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}

	c.logger.InfoContext(ctx, "artifacts generated",
		logger.Languages(model.Languages),
		logger.Count(idx.Len()),
		logger.Duration(time.Since(start)),
	)
	return out, nil
}

// Emit writes the outcome to disk. Generated replaces both artifacts as one
// unit: if either cannot be written, neither file changes. Rejected
// overwrites only the declaration with the target's poisoned form and leaves
// any existing definition artifact untouched.
func (c *Compiler) Emit(ctx context.Context, outcome codegen.Outcome) error {
	switch o := outcome.(type) {
	case codegen.Generated:
		return c.write(ctx,
			artifact{path: c.declaration, content: o.Declaration},
			artifact{path: c.definition, content: o.Definition},
		)
	case codegen.Rejected:
		return c.write(ctx, artifact{path: c.declaration, content: c.target.Poison(o.Diagnostics)})
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedOutcome, outcome)
	}
}

// Run compiles and emits. A rejection is reported as *RejectedError after
// the poisoned declaration has been written.
func (c *Compiler) Run(ctx context.Context) error {
	outcome, err := c.Compile(ctx)
	if err != nil {
		return err
	}
	if err := c.Emit(ctx, outcome); err != nil {
		return err
	}
	if r, ok := outcome.(codegen.Rejected); ok {
		return &RejectedError{Diagnostics: r.Diagnostics}
	}
	return nil
}

func (c *Compiler) write(ctx context.Context, files ...artifact) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrCompilationCancelled, err)
	}
	statuses, err := writeFiles(files...)
	if err != nil {
		return err
	}
	for i, f := range files {
		c.logger.InfoContext(ctx, "artifact "+statuses[i].String(), logger.Path(f.path))
	}
	return nil
}
