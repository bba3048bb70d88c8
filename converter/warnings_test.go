package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarningAggregator_ConsolidatesPerType(t *testing.T) {
	w := NewWarningAggregator()
	for _, id := range []string{"a", "b", "c", "d"} {
		w.Add(WarningNoResolvableDate, id)
	}
	w.Add(WarningNoLine, "x")

	assert.Equal(t, 4, w.Count(WarningNoResolvableDate))
	assert.Equal(t, []string{WarningNoLine, WarningNoResolvableDate}, w.Types())

	core, logs := observer.New(zapcore.WarnLevel)
	w.LogAll(zap.New(core), "bulletin", "TTC")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Records from bulletin for agency TTC have records with no line (1 occurrences). Exporting without an affected line. Examples: x", entries[0].Message)

	dates := entries[1].ContextMap()
	assert.Equal(t, WarningNoResolvableDate, dates["warning"])
	assert.Equal(t, int64(4), dates["occurrences"])
	assert.Equal(t, []interface{}{"a", "b", "c"}, dates["examples"])
}

func TestWarningAggregator_NilIsNoop(t *testing.T) {
	var w *WarningAggregator
	w.Add(WarningNoLine, "x")
	assert.Equal(t, 0, w.Count(WarningNoLine))
	assert.Nil(t, w.Types())

	core, logs := observer.New(zapcore.DebugLevel)
	w.LogAll(zap.New(core), "markup", "TTC")
	assert.Zero(t, logs.Len())
}
