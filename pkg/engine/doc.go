// Package engine runs both ripple views over a stream of topic lists.
//
// An [Engine] owns all layout state of one canvas: the scatter controller's
// previous circles, the map view's keyword cache and the colour assigned to
// each topic. Each call to [Engine.Update] takes the complete current topic
// list and the viewport and returns a [Snapshot] with the positions of both
// views. [Engine.Reset] starts a new canvas.
//
// # Usage
//
//	e := engine.New(engine.WithLogger(logger))
//	snap, err := e.Update(ctx, topics, engine.Viewport{Width: 1400, Height: 900})
//	if err != nil {
//	    return err
//	}
//	for _, id := range snap.Order {
//	    c := snap.Scatter[id]
//	    // draw c
//	}
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Updates must be serialized by
// the caller; the HTTP server holds a mutex per session and the Redis
// consumer runs a single layout goroutine that always picks up the latest
// pending list.
//
// # Change detection
//
// Update hashes the normalized topic list. When neither the list nor the
// viewport changed since the previous call, the previous snapshot is returned
// again with Stats.Skipped set and no layout work is done.
package engine
