package minipng

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/k1LoW/errors"
)

// Generator assembles the PNG, dumps it and writes it to a file.
type Generator struct {
	output  string
	hexdump bool
	stdout  io.Writer
	logger  *slog.Logger
}

type Option func(*Generator) error

// WithOutput sets the path the PNG is written to.
func WithOutput(path string) Option {
	return func(g *Generator) error {
		if path == "" {
			return fmt.Errorf("output path is empty: %w", ErrInvalidArgument)
		}
		g.output = path
		return nil
	}
}

// WithHexdump enables or disables the hexdump.
func WithHexdump(enable bool) Option {
	return func(g *Generator) error {
		g.hexdump = enable
		return nil
	}
}

// WithStdout sets the writer the hexdump is written to.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) error {
		g.stdout = w
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		output:  DefaultFilename,
		hexdump: true,
		stdout:  os.Stdout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Output returns the path the PNG is written to.
func (g *Generator) Output() string {
	return g.output
}

// Run builds the PNG, verifies it, writes the hexdump and then the file.
// It returns the bytes written.
func (g *Generator) Run(ctx context.Context) (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g.logger.InfoContext(ctx, "assembling png")
	b, err := Build()
	if err != nil {
		return nil, err
	}
	if _, err := ParseChunks(b); err != nil {
		return nil, fmt.Errorf("assembled png is invalid: %w", err)
	}
	g.logger.InfoContext(ctx, "created png", slog.Int("len", len(b)), slog.Bool("hexdump", g.hexdump))
	if g.hexdump {
		if err := Hexdump(g.stdout, b); err != nil {
			return nil, err
		}
	}
	g.logger.InfoContext(ctx, "writing png", slog.String("path", g.output))
	if err := WriteFile(g.output, b); err != nil {
		return nil, err
	}
	g.logger.InfoContext(ctx, "done")
	return b, nil
}
