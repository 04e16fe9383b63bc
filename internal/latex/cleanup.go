package latex

import (
	"errors"
	"io/fs"
	"os"
)

// auxExtensions is the fixed set of compiler byproducts removed after a run.
var auxExtensions = []string{".aux", ".log", ".out"}

// CleanupAux removes the compiler's auxiliary files for the given document
// base name (path without extension). Best-effort: a file that is already
// absent is not an error. Other removal failures are collected and returned
// joined.
func CleanupAux(baseName string) error {
	var errs []error
	for _, ext := range auxExtensions {
		err := os.Remove(baseName + ext)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
