// Package live serves an app to one browser at a time.
//
// The app renders into a server-side document. After every render pass the
// bridge serializes the mount point with hydration ids and pushes it over a
// websocket; the browser swaps its content and sends events back as
// {seq, hid, type, value, checked, confirm} frames. Events carrying the
// sequence number of an older render are dropped, because their hydration
// ids no longer name the same elements.
//
// Routes:
//
//	GET /                    page shell with the current markup
//	GET /_teamfight/client.js
//	GET /_teamfight/style.css
//	GET /ws                  websocket
//	GET /metrics             Prometheus, when a handler is configured
//	GET /healthz
package live
