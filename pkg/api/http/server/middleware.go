package server

import (
	"log"
	"net/http"
)

// loggingMiddleware shims in a handler middleware that logs requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println(r.Method, r.RequestURI, r.ContentLength)
		next.ServeHTTP(w, r)
	})
}

// recoverMiddleware turns a handler panic into a 500 rather than a dropped
// connection.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Println("panic serving", r.RequestURI, ":", rec)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
