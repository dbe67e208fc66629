package promhooks

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersTrackEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := New(reg, "collectively")
	require.NoError(t, err)

	h.Unavailable("get")
	h.Unavailable("get")
	h.Unavailable("geo_add")
	h.StoreError("add", "k", errors.New("boom"))
	h.DecodeFailed("k", errors.New("bad json"))
	h.SortedSetTrimmed("board", 2)
	h.SortedSetTrimmed("board", 3)
	h.SoftDeleted("k")

	assert.Equal(t, 2.0, testutil.ToFloat64(h.unavailable.WithLabelValues("get")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.unavailable.WithLabelValues("geo_add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.storeErrors.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.decodeFailed))
	assert.Equal(t, 5.0, testutil.ToFloat64(h.trimmed))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.softDeletes))
}

func TestDuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, "dup")
	require.NoError(t, err)
	_, err = New(reg, "dup")
	assert.Error(t, err)
}
