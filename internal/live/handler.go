package live

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

//go:embed assets/client.js assets/style.css
var assets embed.FS

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/_teamfight/style.css">
</head>
<body>
<div id="app" data-seq="{{.Seq}}">{{.Body}}</div>
<script src="/_teamfight/client.js"></script>
</body>
</html>
`))

// Handler returns the bridge's routes.
func (b *Bridge) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", b.servePage)
	r.Get("/_teamfight/client.js", serveAsset("assets/client.js", "text/javascript; charset=utf-8"))
	r.Get("/_teamfight/style.css", serveAsset("assets/style.css", "text/css; charset=utf-8"))
	r.Get("/ws", b.serveWS)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "seq": b.Current().Seq})
	})
	if b.metricsHandler != nil {
		r.Handle("/metrics", b.metricsHandler)
	}
	return r
}

func (b *Bridge) servePage(w http.ResponseWriter, r *http.Request) {
	f := b.Current()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := page.Execute(w, map[string]any{
		"Title": b.title,
		"Seq":   f.Seq,
		"Body":  template.HTML(f.HTML),
	})
	if err != nil {
		b.logger.Warn("page write failed", "error", err)
	}
}

func serveAsset(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := assets.ReadFile(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(data)
	}
}

// serveWS upgrades the request and makes it the connected browser,
// closing any previous connection.
func (b *Bridge) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	c := newClient(conn, b.logger, b.metrics)

	b.mu.Lock()
	old := b.client
	b.client = c
	c.push(b.frame)
	b.mu.Unlock()

	if old != nil {
		b.logger.Info("replacing connected browser", "remote", r.RemoteAddr)
		old.close(closeReplaced, "replaced by a newer connection")
	}
	b.metrics.ClientConnected()
	b.logger.Info("browser connected", "remote", r.RemoteAddr)

	go c.writeLoop()
	b.readLoop(c)
}

// readLoop posts every event frame to the loop until the connection ends.
func (b *Bridge) readLoop(c *client) {
	defer func() {
		b.mu.Lock()
		if b.client == c {
			b.client = nil
		}
		b.mu.Unlock()
		c.close(websocket.CloseNormalClosure, "")
		b.metrics.ClientDisconnected()
		b.logger.Info("browser disconnected")
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				closeReplaced) {
				b.logger.Warn("read error", "error", err)
			}
			return
		}

		var ev EventFrame
		if err := json.Unmarshal(msg, &ev); err != nil {
			b.logger.Warn("malformed event frame", "error", err)
			continue
		}
		if err := b.loop.Post(func() { b.dispatch(ev) }); err != nil {
			b.logger.Warn("event dropped", "type", ev.Type, "error", err)
		}
	}
}
