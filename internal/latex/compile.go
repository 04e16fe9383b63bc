// Package latex shells out to an external LaTeX compiler and cleans up the
// auxiliary files it leaves behind.
//
// The invocation is non-interactive and classified purely by exit status:
// exit 0 is success, anything else is a compile failure carrying the captured
// output for diagnosis. A missing binary is reported distinctly via
// ErrBinaryNotFound so callers can tell "install pdflatex" apart from "fix
// the document".
package latex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the compiler invoked when none is configured.
const DefaultBinary = "pdflatex"

// ErrBinaryNotFound reports that the compiler binary is not on the PATH.
// Distinct from a compile failure.
var ErrBinaryNotFound = errors.New("latex compiler not found")

// CompileError reports a compiler run that completed with a nonzero exit
// status. Output carries the captured compiler output for diagnosis.
type CompileError struct {
	ExitCode int
	Output   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("latex compile failed with exit code %d", e.ExitCode)
}

// Result describes a successful compilation.
type Result struct {
	// PDFPath is the output artifact: the input path with .tex replaced
	// by .pdf.
	PDFPath string

	// Output is the captured compiler output (stdout and stderr combined).
	Output string
}

// Compiler invokes an external LaTeX binary.
type Compiler struct {
	// Binary is the compiler executable. Defaults to DefaultBinary.
	Binary string

	// Dir is the working directory for the invocation. Empty means the
	// current directory. The compiler writes its artifacts here.
	Dir string

	// Timeout bounds a single invocation. Zero means no timeout: a hung
	// compiler then hangs the run until the context is cancelled.
	Timeout time.Duration
}

// Compile runs the compiler non-interactively against texPath.
//
// Returns ErrBinaryNotFound (wrapped) if the binary is absent, a
// *CompileError if the compiler exits nonzero, and a Result on success.
func (c *Compiler) Compile(ctx context.Context, texPath string) (*Result, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, "-interaction=nonstopmode", texPath)
	cmd.Dir = c.Dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q is not on the PATH", ErrBinaryNotFound, binary)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CompileError{
				ExitCode: exitErr.ExitCode(),
				Output:   out.String(),
			}
		}

		return nil, fmt.Errorf("run %s: %w", binary, err)
	}

	return &Result{
		PDFPath: pdfPath(texPath),
		Output:  out.String(),
	}, nil
}

// pdfPath substitutes the compiled-output extension for the input extension.
func pdfPath(texPath string) string {
	return strings.TrimSuffix(texPath, ".tex") + ".pdf"
}
