package cli

import (
	"fmt"
	"io"
	"sync"
)

// printingNavigator reports hard navigations on the command output.
type printingNavigator struct {
	mu   sync.Mutex
	out  io.Writer
	dest string
	done chan struct{}
}

func newPrintingNavigator(out io.Writer) *printingNavigator {
	return &printingNavigator{out: out, done: make(chan struct{})}
}

func (n *printingNavigator) Navigate(dest string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dest != "" {
		return
	}
	n.dest = dest
	fmt.Fprintf(n.out, "redirect: %s\n", dest)
	close(n.done)
}

// Done is closed on the first navigation.
func (n *printingNavigator) Done() <-chan struct{} {
	return n.done
}

func (n *printingNavigator) Destination() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dest
}
