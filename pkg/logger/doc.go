// Package logger builds the *slog.Logger used by locgen.
//
// New creates a logger configured by functional options: output format (text
// or json), minimum level, static attributes and ContextExtractor callbacks
// that pull attributes out of the context on every Handle call. The compiler
// stores a per-run identifier in the context with WithRunID and registers
// RunIDExtractor, so every line of one compilation carries the same run_id.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTool("locgen", version),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextExtractors(logger.RunIDExtractor()),
//	)
//
//	ctx := logger.WithRunID(context.Background(), uuid.NewString())
//	log.InfoContext(ctx, "catalog loaded", logger.Language("fr"), logger.Count(42))
//
// Attribute helpers (Language, Key, Path, Target, Error, ...) keep attribute
// names consistent between packages. Error and Errors return an empty Attr for
// nil errors, so they can be passed without a nil check.
package logger
