package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpress/internal/store"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_LoadsRecords(t *testing.T) {
	dbPath := tempDBPath(t)
	yamlPath := writeImportFile(t, `
records:
  - title: Engineer
    company: Acme
    start_date: Jan 2022
    end_date: Dec 2023
    description: Built widgets
  - title: Senior Engineer
    company: Initech
    start_date: Jan 2024
`)

	buf := &bytes.Buffer{}
	cmd := NewImportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{yamlPath, "--db", dbPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ Imported 2 record(s)")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	records, err := st.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Engineer", records[0].Title)
	assert.Equal(t, "", records[1].EndDate, "ongoing position has no end date")
}

func TestImport_InvalidRecordAbortsBeforeAnyWrite(t *testing.T) {
	dbPath := tempDBPath(t)
	yamlPath := writeImportFile(t, `
records:
  - title: Engineer
    company: Acme
    start_date: Jan 2022
  - title: Missing Company
    start_date: Jan 2024
`)

	cmd := NewImportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{yamlPath, "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	count, err := st.CountRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count, "no records should be written when validation fails")
}

func TestImport_EmptyFile(t *testing.T) {
	yamlPath := writeImportFile(t, "records: []\n")

	cmd := NewImportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{yamlPath, "--db", tempDBPath(t)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records found")
}

func TestImport_MissingFile(t *testing.T) {
	cmd := NewImportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.yaml"), "--db", tempDBPath(t)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
