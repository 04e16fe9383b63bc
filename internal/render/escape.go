package render

import "strings"

// latexEscaper rewrites the ten LaTeX-significant characters so free text
// survives interpolation into the document. Backslash must map to
// \textbackslash{} (not \\, which is a line break).
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes a free-text string safe for interpolation into LaTeX.
// Every user-supplied field goes through this before rendering.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}
