// Package zerolog adapts a zerolog.Logger to caching.Logger.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/noordwind/Coolector-Common/caching"
)

var _ caching.Logger = Logger{}

type Logger struct{ L zerolog.Logger }

// New tags every entry with component=cache, the way the pipeline services do.
func New(l zerolog.Logger) Logger {
	return Logger{L: l.With().Str("component", "cache").Logger()}
}

func (z Logger) Debug(msg string, f caching.Fields) { z.L.Debug().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Info(msg string, f caching.Fields)  { z.L.Info().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Warn(msg string, f caching.Fields)  { z.L.Warn().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Error(msg string, f caching.Fields) { z.L.Error().Fields(map[string]any(f)).Msg(msg) }
