// Package reactive wraps plain nested data so that every write notifies a
// single callback.
//
// Go has no property traps, so the wrapped view is explicit: a mapping is
// exposed as an *Object and an ordered sequence as an *Array. Reads return
// wrapped views of nested containers, cached per underlying container so
// that repeated reads yield the same wrapper. Writes, deletes and sequence
// mutations perform the change and then call the callback synchronously.
//
//	state := reactive.NewObject(map[string]any{"count": 0}, render)
//	state.Set("count", state.Int("count")+1) // render() is called
//
// Every write notifies, including one that stores the value already
// present. Batching notifications is the caller's job.
//
// A reactive tree is not safe for concurrent use; it is meant to be owned by
// one goroutine or by a loop that serializes access.
package reactive
