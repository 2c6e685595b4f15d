package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-network-export/export"
)

func strptr(s string) *string { return &s }

func TestWriteConnectionsJSON_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.json")
	connections := []export.Connection{
		{Name: "Ada Lovelace", Headline: "Engineer at Analytical Engines", Employer: strptr("Analytical Engines")},
		{Name: "Alan Turing", Headline: "Cryptanalyst"},
	}

	require.NoError(t, WriteConnectionsJSON(connections, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Flat array of objects with exactly these keys; missing employer is an
	// explicit null, not an omitted key.
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	for _, obj := range decoded {
		assert.ElementsMatch(t, []string{"name", "headline", "employer"}, keys(obj))
	}
	assert.Equal(t, "Ada Lovelace", decoded[0]["name"])
	assert.Equal(t, "Analytical Engines", decoded[0]["employer"])
	assert.Nil(t, decoded[1]["employer"])

	// Pretty-printed.
	assert.True(t, strings.Contains(string(data), "\n  {"), "output should be indented")
}

func TestWriteConnectionsJSON_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.json")

	require.NoError(t, WriteConnectionsJSON(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteConnectionsJSON_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, WriteConnectionsJSON([]export.Connection{{Name: "A"}}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteConnectionsJSON_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "connections.json")
	require.NoError(t, WriteConnectionsJSON([]export.Connection{{Name: "A"}}, path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "connections.json", entries[0].Name())
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
