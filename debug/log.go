package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
)

type HCS struct{ *ir.Node }

func (h HCS) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(h.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", h.Node.Path())
	}
	return buf.String()
}

// Logf prints to stderr, rendering *ir.Node arguments as HCS text.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = HCS{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
