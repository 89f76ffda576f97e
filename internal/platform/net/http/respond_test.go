package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "personalab/internal/platform/errors"
	pnet "personalab/internal/platform/net"
	phttp "personalab/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/err", "rid-3")

	phttp.RespondError(rec, req, perr.New(perr.ErrorCodeNotFound, "nope"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeNotFound || env.Error == "" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestRespondError_Details(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("POST", "/personas", "rid-v")

	err := perr.WithDetails(perr.Validationf("title is required"),
		perr.Detail{Field: "title", Message: "title is required"},
		perr.Detail{Field: "data.quote", Message: "quote is required"},
	)
	phttp.RespondError(rec, req, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if len(env.Details) != 2 || env.Details[1].Field != "data.quote" {
		t.Fatalf("details not carried: %+v", env.Details)
	}
}

func TestReturnStyle_Handle_OKCreatedNoContent(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]any{"x": 1})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/ok", "rid-4"))
	if rec.Code != http.StatusOK {
		t.Fatalf("handle OK code: %d", rec.Code)
	}

	hc := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Created(map[string]any{"id": 99})
	})
	recC := httptest.NewRecorder()
	hc(recC, reqWithReqID("POST", "/created", "rid-5"))
	if recC.Code != http.StatusCreated {
		t.Fatalf("handle Created code: %d", recC.Code)
	}

	hn := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.NoContent()
	})
	recN := httptest.NewRecorder()
	hn(recN, reqWithReqID("DELETE", "/no", "rid-6"))
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("handle NoContent code=%d body=%q", recN.Code, recN.Body.String())
	}
}

func TestReturnStyle_ErrorAndHeaders(t *testing.T) {
	hErr := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.New(perr.ErrorCodeForbidden, "nope"))
	})
	rec := httptest.NewRecorder()
	hErr(rec, reqWithReqID("GET", "/err", "rid-7"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("handle error code: %d", rec.Code)
	}

	hHdr := phttp.Handle(func(r *http.Request) phttp.Response {
		resp := phttp.OK("hello")
		resp.Header = http.Header{}
		resp.Header.Set("X-Thing", "yup")
		return resp
	})
	rec2 := httptest.NewRecorder()
	hHdr(rec2, reqWithReqID("GET", "/hdr", "rid-8"))
	if got := rec2.Header().Get("X-Thing"); got != "yup" {
		t.Fatalf("expected header override, got %q", got)
	}

	// non-project errors map to unknown 500
	hGen := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(errors.New("boom"))
	})
	rec3 := httptest.NewRecorder()
	hGen(rec3, reqWithReqID("GET", "/gen", "rid-9"))
	if rec3.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for generic error, got %d", rec3.Code)
	}
}

func TestReturnStyle_File(t *testing.T) {
	body := []byte("# Primary persona\n")
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.File(phttp.Attachment{
			Filename:    "primary-persona.md",
			ContentType: "text/markdown; charset=utf-8",
			Body:        body,
		})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/file", "rid-f"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/markdown; charset=utf-8" {
		t.Fatalf("content-type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename=primary-persona.md` {
		t.Fatalf("content-disposition %q", got)
	}
	if got := rec.Header().Get("Content-Length"); got != "18" {
		t.Fatalf("content-length %q", got)
	}
	if rec.Body.String() != string(body) {
		t.Fatalf("body %q", rec.Body.String())
	}
}

func TestReturnStyle_FileDefaultsContentType(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.File(phttp.Attachment{Body: []byte{1, 2}})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/file", "rid-g"))
	if got := rec.Header().Get("Content-Type"); got != "application/octet-stream" {
		t.Fatalf("content-type %q", got)
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Fatalf("no filename means no disposition")
	}
}
