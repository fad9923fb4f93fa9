package svg

import "strings"

// escaper rewrites the five reserved markup characters in a single pass, so
// already-escaped output is never reprocessed. The entity set is fixed for
// compatibility ('"' must become &quot; and "'" &apos;), which is why this
// is not encoding/xml.EscapeText.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape returns s with the reserved markup characters replaced by their
// entities. All other characters pass through unchanged.
func Escape(s string) string {
	return escaper.Replace(s)
}
