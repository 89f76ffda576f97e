package httpkit

import "personalab/internal/platform/net/middleware"

// Protected groups routes that need a verified caller
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}

// Public groups routes that work anonymously but see the caller when a token
// is sent. A present but invalid token is still a 401
func Public(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(OptionalAuth(p))
		fn(gr)
	})
}
