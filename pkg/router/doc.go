// Package router owns an ordered forest of routes and resolves request
// paths to matches and route names to assembled paths.
//
// Routes register top-level with Add or under a named parent with AddTo.
// Registration flattens the tree as it goes: a child's matcher is compiled
// against its full ancestor-prefixed template, so matching never walks the
// tree. Candidates are tried linearly in registration order and the first
// match wins — register the most specific routes first when patterns
// overlap.
//
// Route names are flat across the whole forest: a child is looked up by
// its own name, and any collision fails registration with
// DuplicateRouteNameError.
//
// Construction is a single-writer phase. Once populated, a Router is
// immutable and safe for unbounded concurrent Match and Assemble calls.
//
//	r := router.New()
//	r.Add(route.NewLiteral("blog", "/blog"))
//	r.AddTo("blog", route.NewLiteral("categories", "/categories"))
//
//	m, ok := r.Match("/blog/categories") // route "categories"
//	p, err := r.Assemble("categories", nil) // "/blog/categories"
//
// Build constructs a whole router from declarative definitions; see the
// definition package for the document format.
package router
