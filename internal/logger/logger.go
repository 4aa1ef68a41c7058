package logger

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey uint8

const ctxKeyRequestID ctxKey = iota

// Handler enriches every record with the request id carried in the context.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok && v != "" {
		record.Add("request_id", v)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

// New returns a JSON logger writing to stdout.
func New() *slog.Logger {
	return slog.New(&Handler{Handler: slog.NewJSONHandler(os.Stdout, nil)})
}

// WithRequestID stores the request id for later extraction by Handler.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID returns the request id carried in ctx, or "".
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
