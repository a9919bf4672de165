package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
)

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

var _ slog.Handler = (*progressHandler)(nil)

type progressHandler struct {
	handler slog.Handler
	stdout  io.Writer
	attrs   []slog.Attr
}

// New returns a handler that renders generator progress records as lines on w.
// Level filtering is delegated to h.
func New(h slog.Handler, w io.Writer) slog.Handler {
	return &progressHandler{
		handler: h,
		stdout:  w,
	}
}

func (h *progressHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *progressHandler) Handle(ctx context.Context, r slog.Record) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	attrs := map[string]slog.Value{}
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})

	var line string
	switch r.Message {
	case "assembling png":
		line = "Assembling png data"
	case "created png":
		line = fmt.Sprintf("Created png, len %s.", bold(attrs["len"].String()))
		if v, ok := attrs["hexdump"]; ok && v.Kind() == slog.KindBool && v.Bool() {
			line += " Hex dump:"
		}
	case "writing png":
		line = fmt.Sprintf("Writing to %s", cyan(attrs["path"].String()))
	case "done":
		line = green("Done!")
	default:
		if r.Level < slog.LevelError {
			return nil
		}
		line = red(r.Message)
		if v, ok := attrs["error"]; ok {
			line = fmt.Sprintf("%s: %s", line, v.String())
		}
	}
	if _, err := fmt.Fprintln(h.stdout, line); err != nil {
		return err
	}
	return nil
}

func (h *progressHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &progressHandler{
		handler: h.handler.WithAttrs(attrs),
		stdout:  h.stdout,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *progressHandler) WithGroup(name string) slog.Handler {
	return &progressHandler{handler: h.handler.WithGroup(name), stdout: h.stdout, attrs: h.attrs}
}
