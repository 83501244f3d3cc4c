package web

import "sync"

// Navigator records where the form asked to go; the handler turns it into
// a redirect.
type Navigator struct {
	mu     sync.Mutex
	target string
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) GoTo(path string) {
	n.mu.Lock()
	n.target = path
	n.mu.Unlock()
}

// Take returns the pending target and clears it.
func (n *Navigator) Take() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	t := n.target
	n.target = ""
	return t
}
