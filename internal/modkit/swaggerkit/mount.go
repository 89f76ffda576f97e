// Package swaggerkit serves the API document and the swagger UI
package swaggerkit

import (
	"net/http"
	"strings"

	phttp "personalab/internal/platform/net/http"
)

// Mount serves base+"/docs/doc.json" and the UI under base+"/docs/" when
// enabled. r is the router the API is mounted on, base its public path
func Mount(r phttp.Router, enabled bool, base string) {
	if !enabled {
		return
	}
	base = strings.TrimRight(base, "/")
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/doc.json", serveDocJSON(base))
	phttp.MountSwagger(r, true, base+"/docs/doc.json")
}
