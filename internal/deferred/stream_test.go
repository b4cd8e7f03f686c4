package deferred

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

type recorder struct {
	mutex   sync.Mutex
	buff    bytes.Buffer
	flushes []string
	flushed chan string
}

func newRecorder() *recorder {
	return &recorder{
		flushed: make(chan string, 16),
	}
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.buff.Write(p)
}

func (r *recorder) Flush() {
	r.mutex.Lock()
	snapshot := r.buff.String()
	r.flushes = append(r.flushes, snapshot)
	r.mutex.Unlock()

	r.flushed <- snapshot
}

func (r *recorder) String() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.buff.String()
}

func waitFlush(t *testing.T, r *recorder) string {
	t.Helper()

	select {
	case snapshot := <-r.flushed:
		return snapshot
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for flush")
		return ""
	}
}

func blockingRegion(id string, release <-chan struct{}, text string) Region {
	return Region{
		ID:       id,
		Fallback: g.Text("Loading..."),
		Resolve: func(ctx context.Context) (g.Node, error) {
			select {
			case <-release:
				return html.P(g.Text(text)), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	}
}

func render(ctx context.Context, w *recorder, regions ...Region) <-chan error {
	nodes := g.Group{}
	for _, r := range regions {
		nodes = append(nodes, r.Placeholder())
	}

	nodes = append(nodes, Await(ctx, w, regions...))

	done := make(chan error, 1)
	go func() {
		done <- nodes.Render(w)
	}()

	return done
}

func TestAwaitShowsPlaceholderBeforeResolution(t *testing.T) {
	release := make(chan struct{})
	w := newRecorder()

	done := render(context.Background(), w, blockingRegion("header", release, "resolved header"))

	snapshot := waitFlush(t, w)

	if !strings.Contains(snapshot, `<div id="header" data-deferred="pending">Loading...</div>`) {
		t.Errorf("snapshot: expected placeholder, got '%s'", snapshot)
	}

	if strings.Contains(snapshot, "resolved header") {
		t.Errorf("snapshot: expected no resolved content, got '%s'", snapshot)
	}

	close(release)

	if err := <-done; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output := w.String()

	expected := `<template id="header-resolved"><p>resolved header</p></template><script>__deferredSwap("header")</script>`
	if !strings.Contains(output, expected) {
		t.Errorf("output: expected to contain '%s', got '%s'", expected, output)
	}
}

func TestAwaitResolvesRegionsIndependently(t *testing.T) {
	type testCase struct {
		First  string
		Second string
	}

	testCases := []testCase{
		{First: "sidebar", Second: "header"},
		{First: "header", Second: "sidebar"},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			releases := map[string]chan struct{}{
				"sidebar": make(chan struct{}),
				"header":  make(chan struct{}),
			}

			w := newRecorder()

			done := render(
				context.Background(), w,
				blockingRegion("sidebar", releases["sidebar"], "sidebar content"),
				blockingRegion("header", releases["header"], "header content"),
			)

			// Synchronous frame
			waitFlush(t, w)

			close(releases[tc.First])

			snapshot := waitFlush(t, w)

			if !strings.Contains(snapshot, tc.First+" content") {
				t.Errorf("snapshot: expected '%s' to be resolved, got '%s'", tc.First, snapshot)
			}

			if strings.Contains(snapshot, tc.Second+" content") {
				t.Errorf("snapshot: expected '%s' to be pending, got '%s'", tc.Second, snapshot)
			}

			close(releases[tc.Second])

			if err := <-done; err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			output := w.String()

			for _, id := range []string{"sidebar", "header"} {
				if e, g := 1, strings.Count(output, `<template id="`+id+`-resolved">`); e != g {
					t.Errorf("resolved chunks for '%s': expected '%v', got '%v'", id, e, g)
				}
			}
		})
	}
}

func TestAwaitPropagatesRegionError(t *testing.T) {
	failure := errors.New("header unavailable")
	release := make(chan struct{})
	close(release)

	failing := Region{
		ID:       "header",
		Fallback: g.Text(""),
		Resolve: func(ctx context.Context) (g.Node, error) {
			return nil, failure
		},
	}

	w := newRecorder()

	done := render(context.Background(), w, blockingRegion("sidebar", release, "sidebar content"), failing)

	waitFlush(t, w)

	err := <-done
	if err == nil {
		t.Fatal("Render(): expected an error")
	}

	var regionErr *RegionError
	if !errors.As(err, &regionErr) {
		t.Fatalf("Render(): expected a *RegionError, got '%T'", err)
	}

	if e, g := "header", regionErr.ID; e != g {
		t.Errorf("regionErr.ID: expected '%v', got '%v'", e, g)
	}

	if !errors.Is(err, failure) {
		t.Errorf("Render(): expected error to wrap '%v', got '%v'", failure, err)
	}

	if !strings.Contains(w.String(), `<template id="sidebar-resolved"><p>sidebar content</p></template>`) {
		t.Errorf("output: expected sibling region to be resolved, got '%s'", w.String())
	}

	if strings.Contains(w.String(), "header-resolved") {
		t.Error("output: expected no chunk for the failing region")
	}
}

func TestAwaitAbandonsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	never := make(chan struct{})
	w := newRecorder()

	done := render(ctx, w, blockingRegion("header", never, "header content"))

	waitFlush(t, w)

	cancel()

	err := <-done
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render(): expected '%v', got '%v'", context.Canceled, err)
	}

	if strings.Contains(w.String(), "header-resolved") {
		t.Error("output: expected no resolved chunk")
	}
}

func TestStaticAndReplace(t *testing.T) {
	var buff bytes.Buffer

	region := Static("sidebar", g.Text("Loading..."), g.Text("ready"))

	if err := Await(context.Background(), nil, region).Render(&buff); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(buff.String(), `<template id="sidebar-resolved">ready</template>`) {
		t.Errorf("output: expected resolved chunk, got '%s'", buff.String())
	}

	buff.Reset()

	if err := Replace(&buff, "header", g.Text("failed")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := `<template id="header-resolved">failed</template><script>__deferredSwap("header")</script>`, buff.String(); e != g {
		t.Errorf("Replace(): expected '%v', got '%v'", e, g)
	}
}

func TestSwapScript(t *testing.T) {
	var buff bytes.Buffer

	if err := SwapScript().Render(&buff); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(buff.String(), "function __deferredSwap(id)") {
		t.Errorf("SwapScript(): expected swap function, got '%s'", buff.String())
	}
}

func TestAwaitRecoversRegionPanic(t *testing.T) {
	w := newRecorder()

	release := make(chan struct{})
	close(release)

	failing := Region{
		ID:       "header",
		Fallback: g.Text("..."),
		Resolve: func(ctx context.Context) (g.Node, error) {
			panic("header collaborator failed")
		},
	}

	err := <-render(context.Background(), w, failing, blockingRegion("sidebar", release, "menu"))
	if err == nil {
		t.Fatal("Render(): expected an error")
	}

	var regionErr *RegionError
	if !errors.As(err, &regionErr) {
		t.Fatalf("Render(): expected a *RegionError, got '%T'", err)
	}

	if e, g := "header", regionErr.ID; e != g {
		t.Errorf("regionErr.ID: expected '%v', got '%v'", e, g)
	}

	if !strings.Contains(err.Error(), "header collaborator failed") {
		t.Errorf("err: expected panic value in message, got '%v'", err)
	}

	output := w.String()

	if !strings.Contains(output, `<template id="sidebar-resolved"><p>menu</p></template>`) {
		t.Errorf("output: expected sibling region to resolve, got '%s'", output)
	}

	if strings.Contains(output, `<template id="header-resolved">`) {
		t.Errorf("output: expected no chunk for the panicking region, got '%s'", output)
	}
}
