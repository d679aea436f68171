package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/http/handler/webui/article"
	"github.com/bornholm/scribe/internal/http/session"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(articleStore port.ArticleStore, sessions *session.Codec, funcs ...article.OptionFunc) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/", article.NewHandler(articleStore, sessions, funcs...))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
