// Package render turns stored work records into a complete LaTeX document.
//
// The document shape is fixed: preamble, a centered header with the profile
// name and generation timestamp, one Experience section with a block per
// record, and the closing footer. All interpolated fields are LaTeX-escaped;
// there is no general templating here.
package render

import (
	"fmt"
	"strings"
	"time"

	"cvpress/internal/profile"
	"cvpress/internal/record"
)

// timestampFormat is the header timestamp layout.
const timestampFormat = "2006-01-02 15:04"

// Renderer renders work records into a LaTeX document.
type Renderer struct {
	// Now supplies the generation timestamp. Overridable for deterministic
	// tests; defaults to time.Now.
	Now func() time.Time
}

// New returns a Renderer using the wall clock.
func New() *Renderer {
	return &Renderer{Now: time.Now}
}

// Render produces the complete document. Rendering zero records still yields
// a structurally valid document with an empty Experience section.
func (r *Renderer) Render(p profile.Profile, records []record.Record) string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var b strings.Builder

	// Preamble
	b.WriteString("\\documentclass[11pt,letterpaper]{article}\n")
	b.WriteString("\\usepackage[margin=1in]{geometry}\n")
	b.WriteString("\\usepackage{enumitem}\n")
	b.WriteString("\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString("\n")

	// Header
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "{\\LARGE \\textbf{%s}}\\\\\n", Escape(p.Name))
	if p.Headline != "" {
		fmt.Fprintf(&b, "%s\\\\\n", Escape(p.Headline))
	}
	b.WriteString("\\vspace{0.5em}\n")
	fmt.Fprintf(&b, "Generated: %s\n", now().Format(timestampFormat))
	b.WriteString("\\end{center}\n")
	b.WriteString("\n")

	b.WriteString("\\section*{Experience}\n")
	b.WriteString("\n")

	for _, rec := range records {
		fmt.Fprintf(&b, "\\noindent\\textbf{%s} \\hfill %s\\\\\n", Escape(rec.Title), Escape(rec.DateRange()))
		fmt.Fprintf(&b, "\\textit{%s}\n\n", Escape(rec.Company))
		if rec.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", Escape(rec.Description))
		}
		b.WriteString("\\vspace{1em}\n\n")
	}

	// Footer
	b.WriteString("\\end{document}\n")

	return b.String()
}
