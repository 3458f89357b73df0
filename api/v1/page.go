package v1

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// home serves the scanner page. Everything else on the page goes through
// the JSON API.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
