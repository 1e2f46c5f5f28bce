package server

import (
	"crypto/subtle"
	"net/http"
)

const adminCookie = "X-Admin-Key"

// admin hides the wrapped handler behind notFound unless the request carries the admin key.
type admin struct {
	key      []byte
	notFound http.Handler
}

func newAdmin(key string, notFound http.Handler) *admin {
	return &admin{
		key:      []byte(key),
		notFound: notFound,
	}
}

func (a *admin) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, _ := r.Cookie(adminCookie); cookie != nil && subtle.ConstantTimeCompare([]byte(cookie.Value), a.key) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		a.notFound.ServeHTTP(w, r)
	})
}
