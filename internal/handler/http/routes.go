package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// route mounts handler under prefix. prefix matches whole path segments:
// "/auth" serves "/auth" and "/auth/...", never "/authors".
type route struct {
	prefix  string
	handler http.Handler
}

// Init builds the dispatcher. Middlewares run in order for every request,
// matched or not; then the route table is tried top to bottom and anything
// left over, including a method a mounted router does not serve, gets the
// 404 catch-all.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		h.withCORS,
		h.withJSONBody,
	)

	// must be set before Mount so that mounted routers inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	for _, rt := range h.routes() {
		router.Mount(rt.prefix, rt.handler)
	}

	return router
}

func (h *Handler) routes() []route {
	return []route{
		{prefix: "/auth", handler: h.authRouter()},
		{prefix: "/posts", handler: h.postsRouter()},
	}
}

func (h *Handler) authRouter() chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.handle(h.signUp))
	r.Post("/signin", h.handle(h.signIn))
	r.With(h.auth).Get("/me", h.handle(h.me))

	return r
}

func (h *Handler) postsRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.GetHead)

	// routes without authorization
	r.Get("/", h.handle(h.listPosts))
	r.Get("/{id}", h.handle(h.getPost))

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.handle(h.createPost))
		r.Put("/{id}", h.handle(h.updatePost))
		r.Delete("/{id}", h.handle(h.deletePost))
	})

	return r
}
