// Package tracker is the team-fight match tracker: the domain rules for
// drafts, matches and champion usage, the page built on pkg/app, and the
// persistence of matches in a key-value storage.
//
// The page state is a plain mapping wrapped by pkg/reactive. Its actions
// are stored in the state as reactive methods, so they can be invoked
// through the state by views, tests and the live bridge alike:
//
//	state.Call("openChampionPicker", "blue", "mid")
//	state.Call("assignChampionToContext", "ahri")
package tracker
