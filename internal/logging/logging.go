package logging

import (
	"io"
	"log/slog"

	"github.com/samber/lo"
)

// New は JSON 形式のロガーを返します。omitTime が true なら time キーを出力しないのだ。
func New(w io.Writer, level slog.Level, omitTime bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			return lo.Ternary(omitTime && a.Key == slog.TimeKey, slog.Attr{}, a)
		},
	}))
}

// ParseLevel は "debug" などの文字列をログレベルに変換します。不明な値は Info です。
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
