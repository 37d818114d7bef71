package debug

import (
	"fmt"
	"strings"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Diff     bool
	Patch    bool
}

var d = &debug{}

// Channels lists the names accepted by Enable.
var Channels = []string{"tokenize", "parse", "diff", "patch"}

// Enable turns on the named channels. "all" enables every channel.
func Enable(names ...string) error {
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		switch name {
		case "":
		case "all":
			d.Tokenize, d.Parse, d.Diff, d.Patch = true, true, true, true
		case "tokenize":
			d.Tokenize = true
		case "parse":
			d.Parse = true
		case "diff":
			d.Diff = true
		case "patch":
			d.Patch = true
		default:
			return fmt.Errorf("unknown debug channel %q (have %s)", name, strings.Join(Channels, ","))
		}
	}
	return nil
}

// Reset disables every channel.
func Reset() {
	*d = debug{}
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
