package httpkit

import "net/http"

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post mounts a body-less handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// Delete mounts a body-less handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, Call(h))
}

// PostJSON mounts a body handler under POST
func PostJSON[T any](r Router, path string, opts BindOptions, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(opts, h))
}

// PatchJSON mounts a body handler under PATCH
func PatchJSON[T any](r Router, path string, opts BindOptions, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSON(opts, h))
}
