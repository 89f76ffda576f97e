// Package http provides http transport for persona records
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"personalab/internal/core/persona"
	"personalab/internal/modkit/httpkit"
	perr "personalab/internal/platform/errors"
	"personalab/internal/platform/net/middleware"
	"personalab/internal/services/api/personas/domain"
	svc "personalab/internal/services/api/personas/service"
)

// Register mounts the persona routes. Reads see the caller when a token is
// sent, writes need one
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Public(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.list)
		httpkit.PostJSON(pr, "/validate", body(), h.validate)
		httpkit.Get(pr, "/{id}", h.get)
	})
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON(pr, "/", body(), h.create)
		httpkit.PatchJSON(pr, "/{id}", body(), h.update)
		httpkit.Delete(pr, "/{id}", h.delete)
		httpkit.Post(pr, "/{id}/fork", h.fork)
	})
}

// body tolerates unknown keys so a client can send a record back as a payload
func body() httpkit.BindOptions {
	o := httpkit.DomainBody()
	o.DisallowUnknown = false
	return o
}

// Caller maps the request identity onto the service caller. Anonymous
// requests give the zero Caller
func Caller(r *stdhttp.Request) domain.Caller {
	id, ok := httpkit.Identity(r)
	if !ok {
		return domain.Caller{}
	}
	return domain.Caller{UserID: id.UserID, DisplayName: id.Name, Email: id.Email}
}

type handlers struct{ svc svc.Service }

// swagger:route GET /personas Personas list
// @Summary List personas visible to the caller
// @Tags personas
// @Produce json
// @Param scope query string false "mine, community or all" Enums(mine, community, all)
// @Success 200 {array} persona.Record "most recently updated first"
// @Router /personas [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	scope, err := domain.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), scope, Caller(r))
}

// swagger:route POST /personas/validate Personas validate
// @Summary Validate a payload without saving it
// @Tags personas
// @Accept json
// @Produce json
// @Param defaults query bool false "fill missing scores and levels first"
// @Param payload body persona.Payload true "Payload"
// @Success 200 {object} persona.Payload "canonical payload"
// @Failure 400 {object} httpkit.Envelope "violations in details"
// @Router /personas/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in persona.Payload) (any, error) {
	defaults := false
	if raw := strings.TrimSpace(r.URL.Query().Get("defaults")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("defaults must be a boolean"), "defaults")
		}
		defaults = v
	}
	return h.svc.Validate(r.Context(), in, defaults)
}

// @Summary Get one persona
// @Tags personas
// @Produce json
// @Param id path string true "persona id"
// @Success 200 {object} persona.Record "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /personas/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Create a persona
// @Tags personas
// @Accept json
// @Produce json
// @Param payload body persona.Payload true "Payload"
// @Success 201 {object} persona.Record "created"
// @Router /personas [post]
func (h *handlers) create(r *stdhttp.Request, in persona.Payload) (any, error) {
	rec, err := h.svc.Create(r.Context(), Caller(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(rec), nil
}

// @Summary Replace a persona the caller owns
// @Tags personas
// @Accept json
// @Produce json
// @Param id path string true "persona id"
// @Param payload body persona.Payload true "Payload"
// @Success 200 {object} persona.Record "ok"
// @Failure 403 {object} httpkit.Envelope "not the owner"
// @Router /personas/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in persona.Payload) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, Caller(r), in)
}

// @Summary Delete a persona the caller owns
// @Tags personas
// @Param id path string true "persona id"
// @Success 204 "deleted"
// @Router /personas/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id, Caller(r)); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Fork a persona into a private copy
// @Tags personas
// @Produce json
// @Param id path string true "source persona id"
// @Success 201 {object} persona.Record "created"
// @Router /personas/{id}/fork [post]
func (h *handlers) fork(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.Fork(r.Context(), id, Caller(r))
	if err != nil {
		return nil, err
	}
	return httpkit.Created(rec), nil
}
