package deferred

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const swapFunc = "__deferredSwap"

// SwapScript returns the inline script replacing placeholders by their
// resolved content. It must be written before any swap chunk.
func SwapScript() g.Node {
	return html.Script(g.Raw(
		`function ` + swapFunc + `(id){` +
			`var t=document.getElementById(id+"-resolved"),p=document.getElementById(id);` +
			`if(!t||!p){return}` +
			`var c=t.content.cloneNode(true);p.replaceChildren(c);p.setAttribute("data-deferred","resolved");t.remove()}`,
	))
}

// Await returns a node which, when rendered, resolves every region
// concurrently and writes a swap chunk for each one as soon as it is ready.
//
// out is the response the page is rendered to. It is flushed before the
// regions are resolved and after each chunk when it implements http.Flusher.
// If out is nil, the writer given to Render is used instead.
//
// A failing region does not prevent its siblings from being written. The
// first failure is returned from Render as a *RegionError once every region
// is settled.
func Await(ctx context.Context, out io.Writer, regions ...Region) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		target := out
		if target == nil {
			target = w
		}

		return stream(ctx, &syncWriter{w: w, out: target}, regions)
	})
}

func stream(ctx context.Context, sw *syncWriter, regions []Region) error {

	// The synchronous part of the page is displayed before any region resolves
	if err := sw.flush(); err != nil {
		return errors.WithStack(err)
	}

	var group errgroup.Group

	for _, r := range regions {
		group.Go(func() error {
			node, err := Settle(ctx, r)
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return errors.WithStack(err)
			}

			if err := sw.write(chunk(r.ID, node)); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return nil
}

// Settle resolves r on its own goroutine. A panic or a failure of the
// region is returned as a *RegionError, a cancelled context as its error.
func Settle(ctx context.Context, r Region) (g.Node, error) {
	type result struct {
		node g.Node
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{nil, errors.Errorf("region panicked: %v", p)}
			}
		}()

		node, err := r.Resolve(ctx)
		done <- result{node, err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, &RegionError{ID: r.ID, Err: res.err}
		}

		return res.node, nil
	}
}

// Replace writes a swap chunk substituting node to the placeholder
// identified by id.
func Replace(w io.Writer, id string, node g.Node) error {
	sw := &syncWriter{w: w, out: w}

	if err := sw.write(chunk(id, node)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func chunk(id string, node g.Node) g.Node {
	return g.Group{
		g.El("template", html.ID(id+"-resolved"), node),
		html.Script(g.Raw(swapFunc + "(" + strconv.Quote(id) + ")")),
	}
}

type syncWriter struct {
	mutex sync.Mutex
	w     io.Writer
	out   io.Writer
}

func (sw *syncWriter) write(node g.Node) error {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if err := node.Render(sw.w); err != nil {
		return errors.WithStack(err)
	}

	return sw.flushLocked()
}

func (sw *syncWriter) flush() error {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	return sw.flushLocked()
}

func (sw *syncWriter) flushLocked() error {
	switch f := sw.out.(type) {
	case interface{ FlushError() error }:
		return errors.WithStack(f.FlushError())
	case http.Flusher:
		f.Flush()
	}

	return nil
}
