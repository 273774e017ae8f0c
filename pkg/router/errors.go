package router

import "fmt"

// DuplicateRouteNameError reports a naming collision at registration time.
// Tree construction must abort; a partially built router is unsafe to
// serve.
type DuplicateRouteNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateRouteNameError) Error() string {
	return fmt.Sprintf("router: duplicate route name %q", e.Name)
}

// RouteNotFoundError reports a lookup of a name no route carries, from
// Assemble or from AddTo with an unknown parent.
type RouteNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("router: no route named %q", e.Name)
}
