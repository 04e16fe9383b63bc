package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cvpress/internal/profile"
	"cvpress/internal/render"
	"cvpress/internal/store"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Database string
	Profile  string
	Output   string
	Dir      string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the LaTeX document without compiling it",
		Long: `Render stored work records into a LaTeX document and write the .tex file.

No compiler is invoked; use build for the full pipeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", DefaultDBPath, "path to SQLite database")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "path to a resume.cue profile")
	cmd.Flags().StringVar(&opts.Output, "output", "", "artifact basename (overrides the profile)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory to write the document into")

	return cmd
}

// renderResult is the JSON payload for a rendered document.
type renderResult struct {
	TexPath     string `json:"tex_path"`
	RecordCount int    `json:"record_count"`
}

func runRender(opts *RenderOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	records, err := st.ListRecords(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}
	formatter.VerboseLog("Loaded %d record(s) from %s", len(records), opts.Database)

	prof := profile.Default()
	if opts.Profile != "" {
		prof, err = profile.Load(opts.Profile)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load profile", err)
		}
	}

	base := opts.Output
	if base == "" {
		base = prof.Output
	}

	document := render.New().Render(prof, records)
	texPath := filepath.Join(opts.Dir, base+".tex")
	if err := os.WriteFile(texPath, []byte(document), 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write document", err)
	}

	if opts.Format == "json" {
		return formatter.Success(renderResult{TexPath: texPath, RecordCount: len(records)})
	}
	return formatter.Success(fmt.Sprintf("✓ Rendered %d record(s) to %s", len(records), texPath))
}
