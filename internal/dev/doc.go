// Package dev implements the route inspector served by "pathway serve".
//
// The inspector loads a route definition document, builds a router from
// it, and exposes the route table over HTTP:
//
//	GET /routes            the route table as JSON
//	GET /match?path=...    resolve a path against the table
//	GET /assemble?name=... build a path for a named route
//	GET /metrics           Prometheus metrics
//	GET /ws                route table updates over WebSocket
//
// A polling watcher rebuilds the router whenever the definition document
// changes on disk. A rebuild that fails keeps the last good table serving
// and pushes the error to connected WebSocket clients instead.
package dev
