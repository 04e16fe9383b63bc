package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpress/internal/record"
)

func TestRender_WritesTexFile(t *testing.T) {
	dbPath := seedDB(t,
		record.Record{Title: "Engineer", Company: "Acme", StartDate: "Jan 2022"},
	)
	dir := t.TempDir()

	buf := &bytes.Buffer{}
	cmd := NewRenderCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath, "--dir", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ Rendered 1 record(s)")

	texPath := filepath.Join(dir, "resume.tex")
	content, err := os.ReadFile(texPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\\begin{document}")
	assert.Contains(t, string(content), "Jan 2022 -- Present")
	assert.Contains(t, string(content), "\\end{document}")
}

func TestRender_OutputFlagOverridesBasename(t *testing.T) {
	dbPath := seedDB(t,
		record.Record{Title: "Engineer", Company: "Acme", StartDate: "Jan 2022"},
	)
	dir := t.TempDir()

	cmd := NewRenderCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", dbPath, "--dir", dir, "--output", "jane-doe"})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "jane-doe.tex"))
}

func TestRender_UsesProfile(t *testing.T) {
	dbPath := seedDB(t)
	dir := t.TempDir()

	profilePath := filepath.Join(t.TempDir(), "resume.cue")
	require.NoError(t, os.WriteFile(profilePath, []byte(`
profile: {
	name:     "Jane Doe"
	headline: "Software Engineer"
}
`), 0o644))

	cmd := NewRenderCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", dbPath, "--dir", dir, "--profile", profilePath})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(dir, "resume.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Jane Doe")
	assert.Contains(t, string(content), "Software Engineer")
}

func TestRender_BadProfileFails(t *testing.T) {
	dbPath := seedDB(t)

	profilePath := filepath.Join(t.TempDir(), "resume.cue")
	require.NoError(t, os.WriteFile(profilePath, []byte(`profile: headline: "no name"`), 0o644))

	cmd := NewRenderCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", dbPath, "--dir", t.TempDir(), "--profile", profilePath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
