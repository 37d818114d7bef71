package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/kv"
)

// Logf writes to stderr, rendering data objects as JSON and parse trees as
// KeyValues text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *kv.Object:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("[raw *kv.Object] %v", x.Keys())
				continue
			}
			args[i] = string(d)
		case kv.Array:
			d, err := kv.MarshalValue(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw %s]", x.Kind())
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
