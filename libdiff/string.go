package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a line diff of two texts, each line prefixed with
// "+", "-" or " ". It returns "" when the texts are equal.
func TextDiff(before, after string, colored bool) string {
	if before == after {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, df := range diffs {
		prefix, c := " ", color.Reset
		switch df.Type {
		case diffpatch.DiffInsert:
			prefix, c = addPrefix, color.FgGreen
		case diffpatch.DiffDelete:
			prefix, c = removePrefix, color.FgRed
		}
		for _, ln := range splitLines(df.Text) {
			sb.WriteString(paint(colored, c, prefix+ln))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func paint(colored bool, c color.Attribute, s string) string {
	if !colored || c == color.Reset {
		return s
	}
	cc := color.New(c)
	cc.EnableColor()
	return cc.Sprint(s)
}

// splitLines splits s into lines without their terminators. A final
// unterminated line is kept.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
