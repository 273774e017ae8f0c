// Package route implements individual URL routes: compiled path templates
// that match request paths in one direction and assemble concrete paths in
// the other.
//
// A route is one of three variants sharing the same contract:
//
//   - Literal: an exact path string, matched by comparison.
//   - Segment: a templated path with required parameters and optional groups.
//   - Regex: a caller-supplied regular expression.
//
// # Template Syntax
//
// Segment templates use ":" to introduce a required parameter and square
// brackets for optional groups, which nest:
//
//	/search/:keyword          one required parameter
//	/blog[/:category]         optional category
//	/blog[/:category[/:post]] nested optional groups
//
// A required parameter consumes one path segment ([^/]+ unless constrained).
// An optional group matches as a unit or not at all. Backslash escapes a
// literal ":", "[", "]", or "\".
//
// # Matching and Assembly
//
// Both directions are compiled from the same parsed template, so a path
// produced by Assemble always matches the route that produced it:
//
//	rt, _ := route.NewSegment("post", "/blog[/:category[/:post]]")
//	rt.Assemble(route.Params{"category": "python"}) // "/blog/python", nil
//	rt.Match("/blog/python/generics")               // {category: python, post: generics}, true
//
// Parameter values pass through verbatim in both directions; URL decoding
// and encoding belong to the transport layer.
package route
