package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// MsgHandler prints the message and attribute values like fmt.Println.
// Keys, time and level are dropped.
type MsgHandler struct {
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
}

func NewMsgHandler(writer io.Writer, level slog.Leveler) *MsgHandler {
	return &MsgHandler{writer: writer, level: level}
}

func (h *MsgHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *MsgHandler) Handle(_ context.Context, record slog.Record) error {
	line := []byte(record.Message)

	for _, a := range h.attrs {
		line = fmt.Append(line, " ", a.Value)
	}
	record.Attrs(func(a slog.Attr) bool {
		line = fmt.Append(line, " ", a.Value)
		return true
	})

	line = append(line, '\n')
	_, err := h.writer.Write(line)
	return err
}

func (h *MsgHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MsgHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  slices.Concat(h.attrs, attrs),
	}
}

// WithGroup is a no-op because group names are keys and keys are not printed.
func (h *MsgHandler) WithGroup(_ string) slog.Handler {
	return h
}
