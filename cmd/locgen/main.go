// Command locgen compiles per-language string catalogs into a statically
// indexed lookup module for a host application.
//
//	locgen --header gen/LocalizationGen.h --cpp gen/LocalizationGen.cpp --jsonroot assets/Localization
//
// The process exits with status 1 when the catalogs are rejected or the run
// fails; on rejection the declaration artifact is replaced with one that
// breaks the host build and quotes every diagnostic.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/locgen/pkg/catalog"
	"github.com/dmitrymomot/locgen/pkg/codegen"
	"github.com/dmitrymomot/locgen/pkg/compiler"
	"github.com/dmitrymomot/locgen/pkg/config"
	"github.com/dmitrymomot/locgen/pkg/logger"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().RunContext(ctx, os.Args)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "locgen",
		Usage:   "compile localization catalogs into generated source",
		Version: version,
		Flags:   flags(),
		Before: func(c *cli.Context) error {
			if c.IsSet(flagColor) {
				color.NoColor = !c.Bool(flagColor)
			}
			return nil
		},
		Action: run,
	}
}

// exitCode reports err on w and maps it onto the process exit status.
// Rejections have already been printed by run.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, compiler.ErrRejected) {
		_, _ = color.New(color.FgRed).Fprintf(w, "locgen: %v\n", err)
	}
	return 1
}

func run(c *cli.Context) error {
	if err := config.LoadEnv(c.StringSlice(flagEnvFile)...); err != nil {
		return err
	}
	var s settings
	if err := config.Load(&s); err != nil {
		return err
	}
	s.applyFlags(c)

	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(c.App.ErrWriter),
		logger.WithTool(c.App.Name, c.App.Version),
		logger.WithContextExtractors(logger.RunIDExtractor()),
	)
	logger.SetAsDefault(log)
	ctx := logger.WithRunID(c.Context, uuid.NewString())

	header := c.Path(flagHeader)
	target, err := newTarget(s, header)
	if err != nil {
		return err
	}

	source, err := catalog.OpenSource(ctx, c.String(flagRoot), s.S3, s.s3Options()...)
	if err != nil {
		return err
	}
	loader, err := catalog.NewLoader(source,
		catalog.WithFileName(s.CatalogFile),
		catalog.WithLogger(log),
	)
	if err != nil {
		return err
	}

	comp, err := compiler.New(loader, header, c.Path(flagDefinition),
		compiler.WithTarget(target),
		compiler.WithDefaultLanguage(s.DefaultLang),
		compiler.WithRuntimeDir(s.RuntimeDir),
		compiler.WithLogger(log),
	)
	if err != nil {
		return err
	}

	err = comp.Run(ctx)
	var rejected *compiler.RejectedError
	if errors.As(err, &rejected) {
		red := color.New(color.FgRed, color.Bold)
		for _, d := range rejected.Diagnostics {
			_, _ = red.Fprintln(c.App.ErrWriter, d)
		}
	}
	return err
}

func newTarget(s settings, header string) (codegen.Target, error) {
	switch s.Target {
	case codegen.CPPTargetName:
		return codegen.NewCPPTarget(
			codegen.WithStructName(s.Struct),
			codegen.WithHeaderName(filepath.Base(header)),
		), nil
	case codegen.GoTargetName:
		return codegen.NewGoTarget(codegen.WithPackage(s.Package)), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", codegen.ErrUnknownTarget, s.Target, codegen.TargetNames())
}
