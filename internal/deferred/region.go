// Package deferred renders page regions whose content resolves asynchronously.
//
// A region is first written as a placeholder. Once its content is resolved,
// a swap chunk is appended to the response and replaces the placeholder on
// the client. Regions resolve independently of each other.
package deferred

import (
	"context"
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

type ResolveFunc func(ctx context.Context) (g.Node, error)

type Region struct {
	ID       string
	Fallback g.Node
	Resolve  ResolveFunc
}

// Placeholder returns the node displayed until the region is resolved.
func (r Region) Placeholder() g.Node {
	return html.Div(
		html.ID(r.ID),
		g.Attr("data-deferred", "pending"),
		r.Fallback,
	)
}

// Static returns a region resolving immediately to node.
func Static(id string, fallback g.Node, node g.Node) Region {
	return Region{
		ID:       id,
		Fallback: fallback,
		Resolve: func(ctx context.Context) (g.Node, error) {
			return node, nil
		},
	}
}

type RegionError struct {
	ID  string
	Err error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("could not resolve region '%s': %v", e.ID, e.Err)
}

func (e *RegionError) Unwrap() error {
	return e.Err
}
