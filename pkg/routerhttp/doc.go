// Package routerhttp serves a route forest over net/http.
//
// A Handler resolves each request path through the router and dispatches
// to the http.Handler registered under the matched route's name. Matched
// parameters and the route name travel in the request context:
//
//	h := routerhttp.NewHandler(r)
//	h.Handle("post", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
//		id := routerhttp.Param(req, "id")
//		...
//	}))
//
// Metrics and Tracing provide Prometheus and OpenTelemetry middleware
// keyed by route name, so instrument cardinality stays bounded no matter
// what paths arrive.
package routerhttp
