// Package pipeline chains the four build stages: load records from the
// store, render the LaTeX document, invoke the external compiler, and clean
// up auxiliary files. Control flows top to bottom once; there is no retry,
// queuing, or backtracking.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"cvpress/internal/latex"
	"cvpress/internal/profile"
	"cvpress/internal/render"
	"cvpress/internal/store"
)

// Options configures a single build run.
type Options struct {
	// DBPath is the SQLite database holding work records.
	DBPath string

	// ProfilePath is the CUE profile file. Empty or missing falls back to
	// the default profile.
	ProfilePath string

	// Output overrides the artifact basename from the profile.
	Output string

	// Dir is the directory artifacts are written to. Empty means the
	// current working directory.
	Dir string

	// Binary overrides the compiler executable (default pdflatex).
	Binary string

	// Timeout bounds the compiler invocation. Zero means unbounded.
	Timeout time.Duration

	// Now supplies the render timestamp; defaults to time.Now.
	Now func() time.Time

	// Logger receives stage-by-stage progress. Defaults to slog.Default.
	Logger *slog.Logger
}

// Report summarizes a build run.
type Report struct {
	// BuildID is the UUIDv7 identifying this run in logs.
	BuildID string

	// RecordCount is the number of work records rendered.
	RecordCount int

	// TexPath is the rendered markup file.
	TexPath string

	// PDFPath is the compiled artifact. Empty if compilation did not
	// succeed.
	PDFPath string
}

// Build runs the full pipeline. Auxiliary-file cleanup runs regardless of
// the compiler outcome; on compile failure the rendered .tex is left in
// place for diagnosis.
//
// Compiler failures pass through unwrapped in meaning: errors.Is picks up
// latex.ErrBinaryNotFound and errors.As picks up *latex.CompileError.
func Build(ctx context.Context, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	buildID := uuid.Must(uuid.NewV7()).String()
	logger = logger.With("build_id", buildID)

	report := &Report{BuildID: buildID}

	// Stage 1+2: open the store and load every record.
	logger.Info("opening database", "path", opts.DBPath)
	st, err := store.Open(opts.DBPath)
	if err != nil {
		return report, fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	records, err := st.ListRecords(ctx)
	if err != nil {
		return report, fmt.Errorf("load records: %w", err)
	}
	report.RecordCount = len(records)
	logger.Info("records loaded", "count", len(records))

	prof, err := loadProfile(opts.ProfilePath)
	if err != nil {
		return report, fmt.Errorf("load profile: %w", err)
	}

	base := opts.Output
	if base == "" {
		base = prof.Output
	}

	// Stage 3: render and write the markup file.
	renderer := &render.Renderer{Now: opts.Now}
	document := renderer.Render(prof, records)

	texName := base + ".tex"
	report.TexPath = filepath.Join(opts.Dir, texName)
	if err := os.WriteFile(report.TexPath, []byte(document), 0o644); err != nil {
		return report, fmt.Errorf("write document: %w", err)
	}
	logger.Info("document rendered", "path", report.TexPath, "bytes", len(document))

	// Stage 4: compile, then clean up auxiliary files no matter what.
	compiler := &latex.Compiler{
		Binary:  opts.Binary,
		Dir:     opts.Dir,
		Timeout: opts.Timeout,
	}

	logger.Info("compiling document", "input", texName)
	result, compileErr := compiler.Compile(ctx, texName)

	if cleanupErr := latex.CleanupAux(filepath.Join(opts.Dir, base)); cleanupErr != nil {
		logger.Warn("auxiliary file cleanup incomplete", "error", cleanupErr)
	}

	if compileErr != nil {
		return report, compileErr
	}

	report.PDFPath = filepath.Join(opts.Dir, result.PDFPath)
	logger.Info("build complete", "artifact", report.PDFPath)

	return report, nil
}

// loadProfile resolves the profile, treating an empty path as "no profile".
func loadProfile(path string) (profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.Load(path)
}
