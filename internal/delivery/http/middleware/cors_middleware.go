package middleware

import "net/http"

// CORSMiddleware reflects the request origin when it appears in the
// configured allow list. A list containing "*" allows any origin.
type CORSMiddleware struct {
	allowedOrigins map[string]struct{}
	allowAll       bool
}

func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	m := &CORSMiddleware{
		allowedOrigins: make(map[string]struct{}, len(allowedOrigins)),
	}
	for _, o := range allowedOrigins {
		if o == "*" {
			m.allowAll = true
			continue
		}
		m.allowedOrigins[o] = struct{}{}
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")

		switch {
		case m.allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && m.allowed(origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (m *CORSMiddleware) allowed(origin string) bool {
	_, ok := m.allowedOrigins[origin]
	return ok
}
