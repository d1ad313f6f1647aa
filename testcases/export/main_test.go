package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.json")
	v := map[string]jsonFloat{
		"a": 1.5,
		"b": jsonFloat(math.NaN()),
		"c": jsonFloat(math.Inf(-1)),
	}
	require.NoError(t, writeJSON(fname, v))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1.5, "b": "NaN", "c": "-Inf"}`, string(data))
}

func TestWriteJSONError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "out.json")
	assert.Error(t, writeJSON(fname, 1))
}
