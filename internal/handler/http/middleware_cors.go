package http

import "net/http"

const (
	corsAllowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

	headerAllowOrigin    = "Access-Control-Allow-Origin"
	headerAllowMethods   = "Access-Control-Allow-Methods"
	headerAllowHeaders   = "Access-Control-Allow-Headers"
	headerRequestMethod  = "Access-Control-Request-Method"
	headerRequestHeaders = "Access-Control-Request-Headers"
)

// withCORS allows every origin. Every response carries
// Access-Control-Allow-Origin: *. A preflight, an OPTIONS request carrying
// Access-Control-Request-Method, is answered here with 204 and never reaches
// the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set(headerAllowOrigin, "*")

		if r.Method != http.MethodOptions || r.Header.Get(headerRequestMethod) == "" {
			next.ServeHTTP(w, r)
			return
		}

		header.Set(headerAllowMethods, corsAllowedMethods)
		if requested := r.Header.Get(headerRequestHeaders); requested != "" {
			header.Set(headerAllowHeaders, requested)
		}
		header.Add("Vary", headerRequestHeaders)
		header.Set("Content-Length", "0")
		w.WriteHeader(http.StatusNoContent)
	})
}
