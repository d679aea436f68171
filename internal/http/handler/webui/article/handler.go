package article

import (
	"net/http"

	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/http/session"
)

type Handler struct {
	mux       *http.ServeMux
	handler   http.Handler
	store     port.ArticleStore
	listLimit int
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func NewHandler(store port.ArticleStore, sessions *session.Codec, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:       http.NewServeMux(),
		store:     store,
		listLimit: opts.ListLimit,
	}

	var handleWrite http.Handler = http.HandlerFunc(h.handleWrite)
	for i := len(opts.WriteMiddlewares) - 1; i >= 0; i-- {
		handleWrite = opts.WriteMiddlewares[i](handleWrite)
	}

	h.mux.HandleFunc("GET /{$}", h.getArticleListPage)
	h.mux.HandleFunc("GET /articles/{id}", h.getArticlePage)
	h.mux.HandleFunc("GET /write", h.getWritePage)
	h.mux.Handle("POST /write", handleWrite)

	h.handler = session.Middleware(sessions)(h.mux)

	return h
}

var _ http.Handler = &Handler{}
