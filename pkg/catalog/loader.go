package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/locgen/pkg/logger"
)

// DefaultFileName is the per-language catalog file looked up in every
// language directory.
const DefaultFileName = "strings.json"

// Loader discovers languages under a Source and loads one catalog per language.
type Loader struct {
	source   Source
	fileName string
	parser   Parser
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileName sets the catalog file name looked up in each language directory.
// The parser is chosen from its extension unless WithParser is also given.
func WithFileName(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.fileName = name
		}
	}
}

// WithParser overrides the parser picked from the file extension.
func WithParser(p Parser) Option {
	return func(l *Loader) {
		if p != nil {
			l.parser = p
		}
	}
}

// WithLogger provides a logger. A discard logger is used by default.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewLoader creates a Loader reading from source.
func NewLoader(source Source, opts ...Option) (*Loader, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidRoot)
	}

	l := &Loader{
		source:   source,
		fileName: DefaultFileName,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.parser == nil {
		l.parser = NewParserForFile(l.fileName)
	}
	if l.parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, l.fileName)
	}

	l.logger = l.logger.With(logger.Component("catalog"))
	return l, nil
}

// FileName returns the catalog file name looked up in each language directory.
func (l *Loader) FileName() string {
	return l.fileName
}

// Load walks the source and returns the catalogs and key coverage of every
// discovered language. A language without a catalog file is kept with zero
// keys; a malformed catalog aborts the load.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	langs, err := l.source.Languages(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Languages: langs,
		Catalog:   make(Catalog, len(langs)),
		Coverage:  make(Coverage),
	}

	for _, lang := range langs {
		l.logger.DebugContext(ctx, "found language", logger.Language(lang))
		if _, err := language.Parse(lang); err != nil {
			l.logger.WarnContext(ctx, "language directory is not a BCP 47 tag",
				logger.Language(lang), logger.Error(err))
		}

		table, err := l.loadLanguage(ctx, lang)
		if errors.Is(err, ErrCatalogNotFound) {
			l.logger.WarnContext(ctx, "no catalog file for language",
				logger.Language(lang), logger.Path(path.Join(lang, l.fileName)))
			res.Missing = append(res.Missing, lang)
			res.Catalog[lang] = map[string]string{}
			continue
		}
		if err != nil {
			return nil, err
		}

		res.Catalog[lang] = table
		for key := range table {
			res.Coverage.add(key, lang)
		}
		l.logger.DebugContext(ctx, "catalog loaded", logger.Language(lang), logger.Count(len(table)))
	}

	l.logger.InfoContext(ctx, "catalogs discovered",
		logger.Languages(res.Languages),
		logger.Count(len(res.Coverage)),
		slog.String("root", l.source.String()),
	)
	return res, nil
}

func (l *Loader) loadLanguage(ctx context.Context, lang string) (map[string]string, error) {
	content, err := l.source.ReadFile(ctx, lang, l.fileName)
	if err != nil {
		return nil, err
	}

	table, err := l.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("%w: %s in %s", ErrMalformedCatalog, path.Join(lang, l.fileName), l.source),
			err,
		)
	}
	return table, nil
}
