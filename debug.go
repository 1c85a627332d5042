package cursorfx

import (
	"fmt"
	"io"
	"log"
	"os"
)

const logPrefix = "[cursorfx] "

// DispatchStats counts what Dispatch did since the Remapper was created.
type DispatchStats struct {
	Dispatched int // raw events normalized
	Emitted    int // renamed events delivered to an object or the default target
	Unresolved int // events whose target id matched no registered object
	Untargeted int // untargeted events with no default target configured
}

// Stats returns the dispatch counters.
func (r *Remapper) Stats() DispatchStats {
	return r.stats
}

// NewLogger returns a logger writing cursorfx-prefixed lines to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, logPrefix, log.LstdFlags)
}

// tracef logs only when tracing is enabled.
func (r *Remapper) tracef(format string, args ...any) {
	if !r.trace {
		return
	}
	r.log.Printf("trace: "+format, args...)
}

func (r *Remapper) errorf(format string, args ...any) {
	r.log.Printf("error: "+format, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("cursorfx debug: %s on disposed node %q (ID %s)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "%swarning: tree depth %d exceeds %d (node %q)\n",
			logPrefix, depth, debugMaxTreeDepth, n.Name)
	}
}
