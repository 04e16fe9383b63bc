package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cvpress/internal/latex"
	"cvpress/internal/pipeline"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Database string
	Profile  string
	Output   string
	Dir      string
	Binary   string
	Timeout  time.Duration
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the PDF resume from the database",
		Long: `Run the full pipeline: load records, render the LaTeX document, compile it
with pdflatex, and clean up auxiliary files.

On compile failure the captured compiler output is printed and the rendered
.tex file is left in place for diagnosis.

Example:
  cvpress build --db resume.db --profile resume.cue`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", DefaultDBPath, "path to SQLite database")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "path to a resume.cue profile")
	cmd.Flags().StringVar(&opts.Output, "output", "", "artifact basename (overrides the profile)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory to write artifacts into")
	cmd.Flags().StringVar(&opts.Binary, "compiler", latex.DefaultBinary, "LaTeX compiler binary")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "compiler timeout (0 = unbounded)")

	return cmd
}

// buildResult is the JSON payload for a completed build.
type buildResult struct {
	BuildID     string `json:"build_id"`
	RecordCount int    `json:"record_count"`
	TexPath     string `json:"tex_path"`
	PDFPath     string `json:"pdf_path"`
}

func runBuild(opts *BuildOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	report, err := pipeline.Build(cmd.Context(), pipeline.Options{
		DBPath:      opts.Database,
		ProfilePath: opts.Profile,
		Output:      opts.Output,
		Dir:         opts.Dir,
		Binary:      opts.Binary,
		Timeout:     opts.Timeout,
		Logger:      logger,
	})
	if err != nil {
		// Binary absent: reported distinctly from a compile failure.
		if errors.Is(err, latex.ErrBinaryNotFound) {
			_ = formatter.Error(
				fmt.Sprintf("%s not found - install a TeX distribution and make sure it is on your PATH", opts.Binary),
				nil,
			)
			return WrapExitError(ExitFailure, "compiler binary not found", err)
		}

		// Compile failure: surface the captured output for diagnosis.
		var compileErr *latex.CompileError
		if errors.As(err, &compileErr) {
			_ = formatter.Error("PDF compilation failed", compileErr.Output)
			return WrapExitError(ExitFailure, "compilation failed", err)
		}

		return WrapExitError(ExitCommandError, "build failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(buildResult{
			BuildID:     report.BuildID,
			RecordCount: report.RecordCount,
			TexPath:     report.TexPath,
			PDFPath:     report.PDFPath,
		})
	}
	return formatter.Success(fmt.Sprintf("✓ PDF compiled successfully: %s (%d record(s))", report.PDFPath, report.RecordCount))
}
