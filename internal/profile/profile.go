// Package profile loads the résumé profile from a CUE file.
//
// The profile carries the document-level fields that are not work records:
// the name printed in the header, an optional headline, and the output
// artifact basename. A missing profile file falls back to Default().
package profile

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
)

// Profile holds the document-level résumé settings.
type Profile struct {
	// Name is printed in the document header. Required.
	Name string

	// Headline is an optional one-line subtitle under the name.
	Headline string

	// Output is the artifact basename (without extension).
	// The pipeline writes <Output>.tex and expects <Output>.pdf.
	Output string
}

// DefaultOutput is the artifact basename used when the profile omits one.
const DefaultOutput = "resume"

// Default returns the profile used when no profile file exists.
func Default() Profile {
	return Profile{
		Name:   "Resume",
		Output: DefaultOutput,
	}
}

// LoadError reports a problem with the profile file, with CUE position
// information when available.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: profile %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("profile %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("profile: %s", e.Message)
}

// Load reads and validates a profile from a CUE file.
//
// The file must define a profile struct:
//
//	profile: {
//		name:     "Jane Doe"
//		headline: "Software Engineer"
//		output:   "jane-doe-resume"
//	}
//
// name is required; headline and output are optional. If the file does not
// exist, Load returns Default() with no error.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return Profile{}, &LoadError{Message: fmt.Sprintf("compiling CUE: %v", err)}
	}

	return fromValue(value)
}

// fromValue extracts a Profile from a compiled CUE value.
func fromValue(value cue.Value) (Profile, error) {
	v := value.LookupPath(cue.ParsePath("profile"))
	if !v.Exists() {
		return Profile{}, &LoadError{
			Field:   "profile",
			Message: "profile struct is required",
			Pos:     value.Pos(),
		}
	}

	p := Default()

	// name (required)
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return Profile{}, &LoadError{
			Field:   "name",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return Profile{}, &LoadError{Field: "name", Message: err.Error(), Pos: nameVal.Pos()}
	}
	if name == "" {
		return Profile{}, &LoadError{Field: "name", Message: "name must be non-empty", Pos: nameVal.Pos()}
	}
	p.Name = name

	// headline (optional)
	headlineVal := v.LookupPath(cue.ParsePath("headline"))
	if headlineVal.Exists() {
		headline, err := headlineVal.String()
		if err != nil {
			return Profile{}, &LoadError{Field: "headline", Message: err.Error(), Pos: headlineVal.Pos()}
		}
		p.Headline = headline
	}

	// output (optional)
	outputVal := v.LookupPath(cue.ParsePath("output"))
	if outputVal.Exists() {
		output, err := outputVal.String()
		if err != nil {
			return Profile{}, &LoadError{Field: "output", Message: err.Error(), Pos: outputVal.Pos()}
		}
		if output != "" {
			p.Output = output
		}
	}

	return p, nil
}
