package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONMap_MissingFile(t *testing.T) {
	m, err := readJSONMap(filepath.Join(t.TempDir(), "products.json"))
	require.NoError(t, err, "missing file is the fresh-install state")
	assert.Nil(t, m)
}

func TestReadJSONMap_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := readJSONMap(path)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestReadJSONMap_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := readJSONMap(path)
	assert.Error(t, err)
}

func TestWriteJSONMap_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	in := map[string]json.RawMessage{
		"p1": json.RawMessage(`{"product_id":"p1","quantity":2}`),
		"d1": json.RawMessage(`{"product_id":"d1","quantity":5}`),
	}

	require.NoError(t, writeJSONMap(path, in))

	out, err := readJSONMap(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.JSONEq(t, string(in["p1"]), string(out["p1"]))
	assert.JSONEq(t, string(in["d1"]), string(out["d1"]))
}

func TestWriteJSONMap_EmptyWritesObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	require.NoError(t, writeJSONMap(path, map[string]json.RawMessage{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestWriteJSONMap_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, writeJSONMap(path, map[string]json.RawMessage{
		"p1": json.RawMessage(`{"product_id":"p1","quantity":2}`),
	}))
	require.NoError(t, writeJSONMap(path, map[string]json.RawMessage{}))

	out, err := readJSONMap(path)
	require.NoError(t, err)
	assert.Empty(t, out, "save is a whole-file overwrite")
}

func TestWriteJSONMap_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	require.NoError(t, writeJSONMap(path, map[string]json.RawMessage{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
}

func TestReadJSONL_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settlements.jsonl")
	content := `{"settlement_id":"a","total":10}
not json
{"settlement_id":"b","total":20}

`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := readJSONL(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadJSONL_MissingFile(t *testing.T) {
	records, err := readJSONL(filepath.Join(t.TempDir(), "settlements.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteJSONL_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settlements.jsonl")
	in := []json.RawMessage{
		json.RawMessage(`{"settlement_id":"a","total":10}`),
		json.RawMessage(`{"settlement_id":"b","total":20}`),
	}

	require.NoError(t, writeJSONL(path, in))

	out, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.JSONEq(t, string(in[0]), string(out[0]))
	assert.JSONEq(t, string(in[1]), string(out[1]))
}
