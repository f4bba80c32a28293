package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/safetext/pkg/config"
	"github.com/dmitrymomot/safetext/pkg/logger"
)

var (
	// ErrUnknownOperation is returned for an -op value that names no operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidLogFormat is returned when SAFETEXT_LOG_FORMAT is not json or text.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// sourceKey carries the input source ("stdin" or a file path) for logging.
type sourceKey struct{}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg Config
	if err := config.Load(&cfg, ".env"); err != nil {
		fmt.Fprintf(stderr, "safetext: %v\n", err)
		return err
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "safetext: %v\n", err)
		return err
	}

	fs := flag.NewFlagSet("safetext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opName := fs.String("op", cfg.Op, "operation or comma-separated text pipeline")
	inPath := fs.String("in", "", "read input from file instead of stdin")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	op, err := lookup(*opName)
	if err != nil {
		log.ErrorContext(ctx, "resolve operation", logger.Operation(*opName), logger.Error(err))
		return err
	}

	source := "stdin"
	if *inPath != "" {
		source = *inPath
	}
	ctx = context.WithValue(ctx, sourceKey{}, source)

	input, err := readInput(ctx, log, *inPath, stdin, cfg.MaxInput)
	if err != nil {
		log.ErrorContext(ctx, "read input", logger.Error(err))
		return err
	}

	start := time.Now()
	out, err := op(input)
	if err != nil {
		log.ErrorContext(ctx, "sanitize", logger.Operation(*opName), logger.Error(err))
		return err
	}

	if _, err := io.WriteString(stdout, out+"\n"); err != nil {
		log.ErrorContext(ctx, "write output", logger.Error(err))
		return err
	}

	log.DebugContext(ctx, "sanitized input",
		logger.Operation(*opName),
		logger.Bytes(len(input)),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "safetext"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextValue("source", sourceKey{}),
	}
	if cfg.LogFormat != "" {
		format := logger.Format(strings.ToLower(cfg.LogFormat))
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// readInput reads at most limit bytes, never splitting a UTF-8 sequence,
// and drops one trailing line break.
func readInput(ctx context.Context, log *slog.Logger, path string, stdin io.Reader, limit int) (string, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if limit <= 0 {
		limit = 1 << 20
	}
	b, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(b) > limit {
		cut := limit
		// back up to the start of the rune that straddles the limit
		for cut > 0 && !utf8.RuneStart(b[cut]) {
			cut--
		}
		log.WarnContext(ctx, "input truncated", logger.Bytes(cut))
		b = b[:cut]
	}

	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
