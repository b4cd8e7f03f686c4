package shell

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	xhtml "golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

func renderNode(t *testing.T, node g.Node) string {
	t.Helper()

	var buff bytes.Buffer
	if err := node.Render(&buff); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return buff.String()
}

func parseHTML(t *testing.T, raw string) *xhtml.Node {
	t.Helper()

	doc, err := xhtml.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func findAll(root *xhtml.Node, match func(n *xhtml.Node) bool) []*xhtml.Node {
	found := make([]*xhtml.Node, 0)

	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if match(n) {
			found = append(found, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return found
}

func attr(n *xhtml.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func mustAttr(t *testing.T, n *xhtml.Node, key string) string {
	t.Helper()

	value, exists := attr(n, key)
	if !exists {
		t.Fatalf("attribute '%s' not found on <%s>", key, n.Data)
	}

	return value
}

func hasClass(n *xhtml.Node, class string) bool {
	value, _ := attr(n, "class")
	for _, c := range strings.Fields(value) {
		if c == class {
			return true
		}
	}

	return false
}

func isElement(tag string, classes ...string) func(n *xhtml.Node) bool {
	return func(n *xhtml.Node) bool {
		if n.Type != xhtml.ElementNode || n.Data != tag {
			return false
		}

		for _, c := range classes {
			if !hasClass(n, c) {
				return false
			}
		}

		return true
	}
}

func textContent(n *xhtml.Node) string {
	var sb strings.Builder

	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)

	return strings.TrimSpace(sb.String())
}

// flushRecorder records the written bytes at each flush.
type flushRecorder struct {
	mutex   sync.Mutex
	buff    bytes.Buffer
	flushed chan string
}

func newFlushRecorder() *flushRecorder {
	return &flushRecorder{flushed: make(chan string, 16)}
}

func (r *flushRecorder) Write(p []byte) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.buff.Write(p)
}

func (r *flushRecorder) Flush() {
	r.mutex.Lock()
	snapshot := r.buff.String()
	r.mutex.Unlock()

	r.flushed <- snapshot
}

func (r *flushRecorder) String() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.buff.String()
}
