package routerhttp

import (
	"context"
	"net/http"

	"github.com/pathway-dev/pathway/pkg/route"
	"github.com/pathway-dev/pathway/pkg/router"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type ctxKey int

const (
	paramsKey ctxKey = iota
	routeNameKey
)

// Handler dispatches requests by resolving the path against a router and
// invoking the http.Handler registered under the matched route's name.
//
// Register all routes and middleware before serving; Handler is not safe
// for concurrent mutation.
type Handler struct {
	router     *router.Router
	handlers   map[string]http.Handler
	middleware []Middleware
	notFound   http.Handler
}

// NewHandler creates a Handler over r.
func NewHandler(r *router.Router) *Handler {
	return &Handler{
		router:   r,
		handlers: make(map[string]http.Handler),
		notFound: http.NotFoundHandler(),
	}
}

// Handle registers h for the named route. A route with no handler falls
// through to the not-found handler even when its pattern matches.
func (h *Handler) Handle(name string, handler http.Handler) {
	h.handlers[name] = handler
}

// HandleFunc registers a handler function for the named route.
func (h *Handler) HandleFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	h.Handle(name, http.HandlerFunc(fn))
}

// NotFound replaces the handler invoked when no route matches.
func (h *Handler) NotFound(handler http.Handler) {
	h.notFound = handler
}

// Use appends middleware. Middleware runs in registration order around
// every dispatched request, the not-found path included, after route
// resolution so it can read the route name from the context.
func (h *Handler) Use(mw ...Middleware) {
	h.middleware = append(h.middleware, mw...)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var next http.Handler

	m, ok := h.router.Match(req.URL.Path)
	if ok {
		name := m.Route.Name()
		if handler, registered := h.handlers[name]; registered {
			ctx := req.Context()
			ctx = context.WithValue(ctx, paramsKey, m.Params)
			ctx = context.WithValue(ctx, routeNameKey, name)
			req = req.WithContext(ctx)
			next = handler
		}
	}
	if next == nil {
		next = h.notFound
	}

	for i := len(h.middleware) - 1; i >= 0; i-- {
		next = h.middleware[i](next)
	}
	next.ServeHTTP(w, req)
}

// ParamsFromContext returns the matched route parameters, or nil outside a
// dispatched request.
func ParamsFromContext(ctx context.Context) route.Params {
	params, _ := ctx.Value(paramsKey).(route.Params)
	return params
}

// RouteNameFromContext returns the matched route's name, or "" outside a
// dispatched request.
func RouteNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(routeNameKey).(string)
	return name
}

// Param returns one matched parameter from the request context.
func Param(req *http.Request, name string) string {
	return ParamsFromContext(req.Context()).Get(name)
}
