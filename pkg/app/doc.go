// Package app hosts a component: one reactive state, one root element, and
// a render pass scheduled on every state change.
//
//	a := app.CreateApp(app.Component{
//	    Setup: func() map[string]any { return map[string]any{"count": 0} },
//	    Render: func(s *reactive.Object) *vdom.VNode {
//	        return vdom.Text(s.String("count"))
//	    },
//	}, app.WithDocument(doc), app.WithLoop(l))
//	if err := a.Mount("#app"); err != nil {
//	    return err
//	}
//
// Every write to the state notifies the app. The first notification after a
// pass queues one render as a microtask on the app's loop; later
// notifications are absorbed until that render runs, so a burst of writes
// inside one task produces a single pass that sees all of them.
//
// A pass always replaces the root's content wholesale. There is no diffing:
// element identity, focus and selection do not survive a pass.
//
// A panic in Render is not recovered by the app. It reaches whoever drove
// the pass: the caller of Mount, or the loop (Do re-panics, Run logs).
package app
