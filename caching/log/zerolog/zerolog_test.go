package zerolog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/noordwind/Coolector-Common/caching"
)

func TestLoggerWritesFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf))

	l.Warn("cache store error absorbed", caching.Fields{"op": "get", "err": errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, `"component":"cache"`)
	assert.Contains(t, out, `"op":"get"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "boom")
}

func TestLoggerNilFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf))
	l.Info("redis cache disabled", nil)
	assert.Contains(t, buf.String(), "redis cache disabled")
}
