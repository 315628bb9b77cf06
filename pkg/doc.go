// Package pkg provides the core libraries for Ripple topic layouts.
//
// # Overview
//
// Ripple places a changing list of conversation topics on a canvas. Each
// topic is a circle sized by its text; circles never overlap, and a topic
// that survives an update stays where it was so the picture does not jump
// around while people watch it. The same topics are also arranged on a
// radial map with their keywords orbiting them. The pkg directory is
// organized into four areas:
//
//  1. Layout core - [geom], [topic], [scatter], [radial], [engine]
//  2. Edges - [preview] images, [server] HTTP API, [stream] Redis consumer
//  3. Infrastructure - [config], [session], [cache], [fonts]
//  4. Cross-cutting - [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow for one update:
//
//	[]topic.Topic (stream message, HTTP body or file)
//	         ↓
//	    [topic] normalize ids, digest the list
//	         ↓
//	    [scatter] keep, resize, move or place circles; relax overlaps
//	         ↓
//	    [radial] ring placement of topics and cached keyword positions
//	         ↓
//	    [engine] Snapshot: positions, map, colors, canvas size, stats
//	         ↓
//	    JSON, SVG or PNG
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/ripple/pkg/engine"
//	    "github.com/matzehuels/ripple/pkg/topic"
//	)
//
//	e := engine.New()
//	topics, _ := topic.ReadFile("topics.json")
//	snap, _ := e.Update(context.Background(), topics, engine.Viewport{Width: 1400, Height: 900})
//	for _, id := range snap.Order {
//	    c := snap.Scatter[id]
//	    fmt.Printf("%s at (%.0f, %.0f) size %.0f\n", id, c.X, c.Y, c.Size)
//	}
//
// Feeding the next list to the same engine keeps earlier topics in place.
//
// # Main Packages
//
// [scatter] - Adaptive circle packing. [scatter.Controller] remembers the
// previous layout and decides per topic whether to keep, resize, move or
// create its circle; [scatter.FindPosition] runs the randomized search and
// [scatter.Relax] removes residual overlaps.
//
// [radial] - The map view. Topics sit on a ring around the canvas center and
// keywords on a ring around each topic, pushed out of collisions. Keyword
// positions are cached per (topic, keyword, index) so they stay put.
//
// [engine] - Orchestrates both views, colors and canvas sizing, skips work
// when neither the topic list nor the viewport changed, and reports
// observability hooks.
//
// [session] and [server] - Per-client engines behind a chi HTTP API.
//
// [stream] - Redis pub/sub consumer that always lays out the latest list.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/scatter/...    # Specific package
//	go test -run Example ./...   # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/geom
// [topic]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/topic
// [scatter]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/scatter
// [scatter.Controller]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/scatter#Controller
// [scatter.FindPosition]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/scatter#FindPosition
// [scatter.Relax]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/scatter#Relax
// [radial]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/radial
// [engine]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/engine
// [preview]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/preview
// [server]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/server
// [stream]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/stream
// [config]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/config
// [session]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/session
// [cache]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/cache
// [fonts]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ripple/pkg/buildinfo
package pkg
