// AngelaMos | 2026
// routes.go

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Access is the authorization requirement attached to a route.
type Access int

const (
	Public Access = iota
	Authenticated
	AdminOnly
)

func (a Access) String() string {
	switch a {
	case Authenticated:
		return "user"
	case AdminOnly:
		return "admin"
	default:
		return "public"
	}
}

type Route struct {
	Method  string
	Pattern string
	Access  Access
	Handler http.HandlerFunc
}

// Mount registers routes on r, wrapping each handler with the guard its
// Access level requires.
func Mount(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	routes ...Route,
) {
	for _, route := range routes {
		r.Method(route.Method, route.Pattern, Guard(route.Access, authenticator, route.Handler))
	}
}

func Guard(
	access Access,
	authenticator func(http.Handler) http.Handler,
	h http.Handler,
) http.Handler {
	switch access {
	case AdminOnly:
		return authenticator(RequireAdmin(h))
	case Authenticated:
		return authenticator(h)
	default:
		return h
	}
}
