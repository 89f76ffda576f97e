package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under /docs when enabled. docURL points
// at the generated document, e.g. "/api/v1/docs/doc.json"
func MountSwagger(r Router, enabled bool, docURL string) {
	if !enabled {
		return
	}
	h := httpSwagger.Handler(httpSwagger.URL(docURL))
	r.Get("/docs/*", func(w http.ResponseWriter, req *http.Request) {
		h.ServeHTTP(w, req)
	})
}
