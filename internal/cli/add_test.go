package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpress/internal/store"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "resume.db")
}

func TestAdd_StoresRecord(t *testing.T) {
	dbPath := tempDBPath(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"--db", dbPath,
		"--title", "Engineer",
		"--company", "Acme",
		"--start", "Jan 2022",
		"--end", "Dec 2023",
		"--description", "Built widgets",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ Record stored (ID: 1)")

	// Verify round trip through the store
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	records, err := st.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Engineer", records[0].Title)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "Dec 2023", records[0].EndDate)
}

func TestAdd_JSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"--db", tempDBPath(t),
		"--title", "Engineer",
		"--company", "Acme",
		"--start", "Jan 2022",
	})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestAdd_MissingRequiredFlag(t *testing.T) {
	cmd := NewAddCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", tempDBPath(t), "--title", "Engineer"})

	err := cmd.Execute()
	require.Error(t, err)
}
