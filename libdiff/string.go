package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// InlineString renders the character diff of two strings, deleted runs as
// [-text-] and inserted runs as {+text+}.
func InlineString(from, to string) string {
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, doMultiLine))
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Lines returns a line diff of two texts, every line prefixed by "-", "+"
// or " ", under a "--- fromName" / "+++ toName" header. It returns "" when
// the texts are equal.
func Lines(fromName, toName, from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var out strings.Builder
	out.WriteString("--- " + fromName + "\n+++ " + toName + "\n")
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out.WriteString(prefix + line + "\n")
		}
	}
	return out.String()
}
