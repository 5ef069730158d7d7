package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Debug bool
	// File, if set, additionally receives every entry as a JSON line.
	File string
}

// NewContextWithLogger installs the global logger and returns a context
// carrying it, plus a func flushing and closing the outputs.
func NewContextWithLogger(ctx context.Context, opts Options) (context.Context, func(), error) {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Non-blocking console output
	wr := diode.NewWriter(os.Stdout, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Printf("Logger Dropped %d messages\n", missed)
	})
	closers := []io.Closer{wr}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        wr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
			zerolog.CallerFieldName,
		},
	}}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			_ = wr.Close()
			return ctx, func() {}, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			_ = wr.Close()
			return ctx, func() {}, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closers = append(closers, f)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()

	log.Logger = logger

	return logger.WithContext(ctx), func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}, nil
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
