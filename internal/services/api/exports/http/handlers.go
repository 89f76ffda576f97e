// Package http provides http transport for persona exports
package http

import (
	stdhttp "net/http"

	"personalab/internal/core/export"
	"personalab/internal/modkit/httpkit"
	"personalab/internal/platform/net/middleware"
	svc "personalab/internal/services/api/exports/service"
)

// Register mounts the export routes. Downloads work anonymously, the caller is
// attached when a token is sent so the audit row can name them
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Public(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/personas/{id}/exports", h.all)
		httpkit.Get(pr, "/personas/{id}/exports/{format}", h.one)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /personas/{id}/exports Exports all
// @Summary Render every export of a persona
// @Tags exports
// @Produce json
// @Param id path string true "persona id"
// @Success 200 {array} export.Artifact "pdf-executive, pdf-detailed, markdown, json"
// @Router /personas/{id}/exports [get]
func (h *handlers) all(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.All(r.Context(), id)
}

// @Summary Download one export of a persona
// @Tags exports
// @Produce application/pdf,text/markdown,application/json
// @Param id path string true "persona id"
// @Param format path string true "export format" Enums(pdf-executive, pdf-detailed, markdown, json)
// @Success 200 {file} file
// @Failure 422 {object} httpkit.Envelope "unknown format"
// @Router /personas/{id}/exports/{format} [get]
func (h *handlers) one(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	f, err := export.ParseFormat(httpkit.Param(r, "format"))
	if err != nil {
		return nil, err
	}
	a, err := h.svc.One(r.Context(), id, f)
	if err != nil {
		return nil, err
	}
	return httpkit.File(httpkit.Attachment{Filename: a.Filename, ContentType: a.ContentType, Body: a.Body}), nil
}
