package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlenc/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr. Node and generic container
// arguments are expanded to indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			v, err := ir.ToAny(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node %s] %v", x.Type, err)
				continue
			}
			args[i] = jsonArg(v)
		case map[string]any, []any, json.Number:
			args[i] = jsonArg(x)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func jsonArg(v any) string {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
