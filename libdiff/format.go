package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/kv"
)

// FormatText renders one line per entry:
//
//	+ path: value
//	- path: value
//	~ path: old -> new
//
// Values are written as JSON.
func FormatText(d *DocumentDiff, colored bool) string {
	var sb strings.Builder
	for i := range d.Changes {
		e := &d.Changes[i]
		var ln string
		c := color.Reset
		switch e.Op {
		case OpAdd:
			ln = fmt.Sprintf("%s %s: %s", addPrefix, e.Path, jsonText(e.NewValue))
			c = color.FgGreen
		case OpRemove:
			ln = fmt.Sprintf("%s %s: %s", removePrefix, e.Path, jsonText(e.OldValue))
			c = color.FgRed
		case OpReplace:
			ln = fmt.Sprintf("%s %s: %s -> %s", replacePrefix, e.Path, jsonText(e.OldValue), jsonText(e.NewValue))
			c = color.FgYellow
		default:
			ln = fmt.Sprintf("? %s: unknown op %q", e.Path, e.Op)
		}
		sb.WriteString(paint(colored, c, ln))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatUnified renders each entry as a hunk headed by its path, with the
// old and new pairs written as KeyValues text.
func FormatUnified(d *DocumentDiff, colored bool) string {
	var sb strings.Builder
	for i := range d.Changes {
		e := &d.Changes[i]
		sb.WriteString(paint(colored, color.FgCyan, "@@ "+e.Path+" @@"))
		sb.WriteByte('\n')
		key := e.Path
		if j := strings.LastIndexByte(key, '.'); j >= 0 {
			key = key[j+1:]
		}
		if e.OldValue != nil {
			for _, ln := range pairLines(key, e.OldValue) {
				sb.WriteString(paint(colored, color.FgRed, removePrefix+ln))
				sb.WriteByte('\n')
			}
		}
		if e.NewValue != nil {
			for _, ln := range pairLines(key, e.NewValue) {
				sb.WriteString(paint(colored, color.FgGreen, addPrefix+ln))
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

func jsonText(v kv.Value) string {
	if v == nil {
		return "<none>"
	}
	d, err := kv.MarshalValue(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(d)
}

func pairLines(key string, v kv.Value) []string {
	s, err := encode.DataString(kv.NewObject().With(key, v))
	if err != nil {
		return []string{fmt.Sprintf("<%v>", err)}
	}
	return splitLines(s)
}
