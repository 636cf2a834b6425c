package main

import (
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/locgen/pkg/catalog"
)

// settings holds every optional knob. Values come from LOCGEN_* environment
// variables (and .env files) first; flags set on the command line win.
type settings struct {
	Target      string `env:"LOCGEN_TARGET" envDefault:"cpp"`
	Package     string `env:"LOCGEN_PACKAGE" envDefault:"l10n"`
	Struct      string `env:"LOCGEN_STRUCT" envDefault:"ll"`
	DefaultLang string `env:"LOCGEN_DEFAULT_LANG" envDefault:"en"`
	CatalogFile string `env:"LOCGEN_CATALOG_FILE" envDefault:"strings.json"`
	RuntimeDir  string `env:"LOCGEN_RUNTIME_DIR" envDefault:"Localization"`
	LogLevel    string `env:"LOCGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOCGEN_LOG_FORMAT" envDefault:"text"`

	S3            catalog.S3Config
	S3Timeout     time.Duration `env:"LOCGEN_S3_TIMEOUT" envDefault:"30s"`
	S3MaxAttempts int           `env:"LOCGEN_S3_MAX_ATTEMPTS" envDefault:"3"`
}

const (
	flagHeader      = "header"
	flagDefinition  = "cpp"
	flagRoot        = "jsonroot"
	flagTarget      = "target"
	flagPackage     = "package"
	flagStruct      = "struct"
	flagDefaultLang = "default-lang"
	flagCatalogFile = "catalog-file"
	flagRuntimeDir  = "runtime-dir"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagEnvFile     = "env-file"
	flagColor       = "color"
	flagS3Timeout   = "s3-timeout"
	flagS3Attempts  = "s3-max-attempts"
)

// applyFlags overrides s with every flag given explicitly on the command line.
func (s *settings) applyFlags(c *cli.Context) {
	for name, dst := range map[string]*string{
		flagTarget:      &s.Target,
		flagPackage:     &s.Package,
		flagStruct:      &s.Struct,
		flagDefaultLang: &s.DefaultLang,
		flagCatalogFile: &s.CatalogFile,
		flagRuntimeDir:  &s.RuntimeDir,
		flagLogLevel:    &s.LogLevel,
		flagLogFormat:   &s.LogFormat,
	} {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet(flagS3Timeout) {
		s.S3Timeout = c.Duration(flagS3Timeout)
	}
	if c.IsSet(flagS3Attempts) {
		s.S3MaxAttempts = c.Int(flagS3Attempts)
	}
}

// s3Options translates the S3 transport settings into source options.
// They only matter for s3:// catalog roots.
func (s settings) s3Options() []catalog.S3Option {
	opts := []catalog.S3Option{
		catalog.WithHTTPClient(&http.Client{Timeout: s.S3Timeout}),
	}
	if s.S3MaxAttempts > 0 {
		opts = append(opts, catalog.WithS3ConfigOption(awsconfig.WithRetryMaxAttempts(s.S3MaxAttempts)))
	}
	return opts
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:     flagHeader,
			Usage:    "output path of the declaration artifact",
			Required: true,
		},
		&cli.PathFlag{
			Name:     flagDefinition,
			Usage:    "output path of the definition artifact",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagRoot,
			Usage:    "catalog root: a directory or s3://bucket/prefix holding one directory per language",
			Required: true,
		},
		&cli.StringFlag{
			Name:        flagTarget,
			Usage:       "code generation target: cpp or go",
			DefaultText: "cpp, $LOCGEN_TARGET",
		},
		&cli.StringFlag{
			Name:        flagPackage,
			Usage:       "package name of the generated Go files",
			DefaultText: "l10n, $LOCGEN_PACKAGE",
		},
		&cli.StringFlag{
			Name:        flagStruct,
			Usage:       "name of the generated C++ struct",
			DefaultText: "ll, $LOCGEN_STRUCT",
		},
		&cli.StringFlag{
			Name:        flagDefaultLang,
			Usage:       "language every catalog set must provide and unknown codes fall back to",
			DefaultText: "en, $LOCGEN_DEFAULT_LANG",
		},
		&cli.StringFlag{
			Name:        flagCatalogFile,
			Usage:       "catalog file name inside each language directory (.json, .yaml, .yml, .toml)",
			DefaultText: "strings.json, $LOCGEN_CATALOG_FILE",
		},
		&cli.StringFlag{
			Name:        flagRuntimeDir,
			Usage:       "directory under the run-time root the generated loader reads catalogs from",
			DefaultText: "Localization, $LOCGEN_RUNTIME_DIR",
		},
		&cli.StringFlag{
			Name:        flagLogLevel,
			Usage:       "debug, info, warn or error",
			DefaultText: "info, $LOCGEN_LOG_LEVEL",
		},
		&cli.StringFlag{
			Name:        flagLogFormat,
			Usage:       "text or json",
			DefaultText: "text, $LOCGEN_LOG_FORMAT",
		},
		&cli.DurationFlag{
			Name:        flagS3Timeout,
			Usage:       "timeout of a single S3 request",
			DefaultText: "30s, $LOCGEN_S3_TIMEOUT",
		},
		&cli.IntFlag{
			Name:        flagS3Attempts,
			Usage:       "maximum attempts of a failing S3 request",
			DefaultText: "3, $LOCGEN_S3_MAX_ATTEMPTS",
		},
		&cli.StringSliceFlag{
			Name:  flagEnvFile,
			Usage: "additional .env files to read before the environment is parsed",
		},
		&cli.BoolFlag{
			Name:        flagColor,
			Usage:       "use color in diagnostics",
			DefaultText: "depends on output being a TTY",
		},
	}
}
