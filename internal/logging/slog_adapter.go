// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewSlogLogger returns an slog.Logger that writes through the global zerolog
// logger. The supervisor tree hands it to sutureslog.
func NewSlogLogger() *slog.Logger {
	return slog.New(&slogBridge{zl: Logger()})
}

// slogBridge is an slog.Handler. Attributes added with WithAttrs are folded
// into the zerolog context once instead of being replayed per record.
type slogBridge struct {
	zl     zerolog.Logger
	prefix string
}

func (b *slogBridge) Enabled(_ context.Context, level slog.Level) bool {
	zlvl := zerologLevel(level)
	return zlvl >= b.zl.GetLevel() && zlvl >= zerolog.GlobalLevel()
}

//nolint:gocritic // slog.Handler takes the record by value
func (b *slogBridge) Handle(_ context.Context, r slog.Record) error {
	ev := b.zl.WithLevel(zerologLevel(r.Level))
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(ev, b.prefix, a)
		return true
	})
	ev.Msg(r.Message)
	return nil
}

func (b *slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return b
	}
	fields := make(map[string]any, len(attrs))
	for _, a := range attrs {
		flattenAttr(fields, b.prefix, a)
	}
	return &slogBridge{zl: b.zl.With().Fields(fields).Logger(), prefix: b.prefix}
}

func (b *slogBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	return &slogBridge{zl: b.zl, prefix: b.prefix + name + "."}
}

func writeAttr(ev *zerolog.Event, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	key := prefix + a.Key
	switch v.Kind() {
	case slog.KindGroup:
		for _, sub := range v.Group() {
			writeAttr(ev, key+".", sub)
		}
	case slog.KindString:
		ev.Str(key, v.String())
	case slog.KindInt64:
		ev.Int64(key, v.Int64())
	case slog.KindUint64:
		ev.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		ev.Float64(key, v.Float64())
	case slog.KindBool:
		ev.Bool(key, v.Bool())
	case slog.KindDuration:
		ev.Dur(key, v.Duration())
	case slog.KindTime:
		ev.Time(key, v.Time())
	default:
		if err, ok := v.Any().(error); ok {
			ev.AnErr(key, err)
			return
		}
		ev.Interface(key, v.Any())
	}
}

func flattenAttr(dst map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, sub := range v.Group() {
			flattenAttr(dst, prefix+a.Key+".", sub)
		}
		return
	}
	dst[prefix+a.Key] = v.Any()
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
