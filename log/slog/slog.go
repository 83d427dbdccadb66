// Package slog adapts a stdlib log/slog logger to the minne Logger interface.
package slog

import (
	"log/slog"

	"github.com/unkn0wn-root/minne"
)

type SlogLogger struct{ L *slog.Logger }

func (s SlogLogger) Debug(msg string, f minne.Fields) { s.L.Debug(msg, args(f)...) }
func (s SlogLogger) Info(msg string, f minne.Fields)  { s.L.Info(msg, args(f)...) }
func (s SlogLogger) Warn(msg string, f minne.Fields)  { s.L.Warn(msg, args(f)...) }
func (s SlogLogger) Error(msg string, f minne.Fields) { s.L.Error(msg, args(f)...) }

func args(f minne.Fields) []any {
	if len(f) == 0 {
		return nil
	}
	out := make([]any, 0, len(f)*2)
	for k, v := range f {
		out = append(out, k, v)
	}
	return out
}
