package router

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/pathway-dev/pathway/pkg/route"
)

// Match is the result of resolving a request path.
type Match struct {
	// Route is the route that matched.
	Route route.Route

	// Params are the parameters extracted from the path.
	Params route.Params
}

// entry is one registered route together with the build-time state its
// descendants need: the effective template and the constraints and
// defaults accumulated from its ancestors.
type entry struct {
	route       route.Route
	name        string
	template    string
	regex       bool
	parent      *entry
	constraints map[string]string
	defaults    route.Params
}

// Router is an ordered forest of routes with a flattened name lookup.
// Populate it fully before serving; afterwards it is immutable and safe
// for concurrent use.
type Router struct {
	logger *slog.Logger
	order  []*entry
	byName map[string]*entry
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// New creates an empty router.
func New(opts ...Option) *Router {
	r := &Router{
		logger: slog.Default().With("component", "router"),
		byName: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a top-level route. The route's name must be unique across
// the whole forest.
func (r *Router) Add(rt route.Route) error {
	return r.add(rt, nil)
}

// AddTo registers a route as a child of the named parent. The child's
// matcher is recompiled against the parent's effective template, and the
// parent's constraints and defaults carry over (the child's own win on
// conflict). The child keeps its plain name for lookup.
func (r *Router) AddTo(parentName string, rt route.Route) error {
	parent, ok := r.byName[parentName]
	if !ok {
		return &RouteNotFoundError{Name: parentName}
	}
	return r.add(rt, parent)
}

func (r *Router) add(rt route.Route, parent *entry) error {
	name := rt.Name()
	if name == "" {
		return fmt.Errorf("router: route name must not be empty")
	}
	if _, exists := r.byName[name]; exists {
		return &DuplicateRouteNameError{Name: name}
	}

	e, err := r.newEntry(rt, parent)
	if err != nil {
		return err
	}

	r.byName[name] = e
	r.order = append(r.order, e)

	r.logger.Debug("route registered",
		"name", name,
		"template", e.template,
		"regex", e.regex,
	)
	return nil
}

// newEntry compiles the effective route for rt under parent.
func (r *Router) newEntry(rt route.Route, parent *entry) (*entry, error) {
	if parent == nil {
		e := &entry{route: rt, name: rt.Name(), template: rt.Template()}
		switch v := rt.(type) {
		case *route.Literal:
			e.defaults = v.Defaults()
		case *route.Segment:
			e.constraints = v.Constraints()
			e.defaults = v.Defaults()
		case *route.Regex:
			e.regex = true
			e.defaults = v.Defaults()
		}
		return e, nil
	}

	if parent.regex {
		return nil, &route.PatternError{
			Template: parent.name,
			Pos:      -1,
			Reason:   "regex routes cannot have children",
		}
	}

	name := rt.Name()
	constraints := mergeConstraints(parent.constraints, nil)
	defaults := parent.defaults.Clone()

	switch v := rt.(type) {
	case *route.Literal:
		for k, val := range v.Defaults() {
			defaults[k] = val
		}
		effective, err := route.Compile(name, parent.template+v.Template(),
			route.WithConstraints(constraints), route.WithDefaults(defaults))
		if err != nil {
			return nil, err
		}
		return &entry{
			route:       effective,
			name:        name,
			template:    parent.template + v.Template(),
			parent:      parent,
			constraints: constraints,
			defaults:    defaults,
		}, nil

	case *route.Segment:
		constraints = mergeConstraints(constraints, v.Constraints())
		for k, val := range v.Defaults() {
			defaults[k] = val
		}
		template := parent.template + v.Template()
		effective, err := route.NewSegment(name, template,
			route.WithConstraints(constraints), route.WithDefaults(defaults))
		if err != nil {
			return nil, err
		}
		return &entry{
			route:       effective,
			name:        name,
			template:    template,
			parent:      parent,
			constraints: constraints,
			defaults:    defaults,
		}, nil

	case *route.Regex:
		// A regex child only nests under a purely literal prefix; there is
		// no sound way to splice an expression into a templated one.
		if route.HasPattern(parent.template) {
			return nil, &route.PatternError{
				Template: v.Expr(),
				Pos:      -1,
				Reason:   fmt.Sprintf("regex route cannot nest under parameterized route %q", parent.name),
			}
		}
		for k, val := range v.Defaults() {
			defaults[k] = val
		}
		prefix := literalPrefix(parent.template)
		opts := []route.Option{route.WithDefaults(defaults)}
		if v.ReverseTemplate() != "" {
			opts = append(opts, route.WithReverse(parent.template+v.ReverseTemplate()))
		}
		effective, err := route.NewRegex(name, regexp.QuoteMeta(prefix)+v.Expr(), opts...)
		if err != nil {
			return nil, err
		}
		return &entry{
			route:    effective,
			name:     name,
			regex:    true,
			parent:   parent,
			defaults: defaults,
		}, nil

	default:
		return nil, fmt.Errorf("router: cannot nest route of type %T", rt)
	}
}

// literalPrefix resolves a pattern-free template to the path text it
// matches.
func literalPrefix(template string) string {
	return route.NewLiteral("", template).Path()
}

func mergeConstraints(parent, child map[string]string) map[string]string {
	out := make(map[string]string, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

// Match resolves a request path. Candidates are tried linearly in
// registration order; the first route to match wins. A miss returns
// (nil, false) — it is an expected outcome, not an error.
func (r *Router) Match(path string) (*Match, bool) {
	for _, e := range r.order {
		if params, ok := e.route.Match(path); ok {
			return &Match{Route: e.route, Params: params}, true
		}
	}
	return nil, false
}

// Assemble builds a path for the named route. The name is looked up in the
// flattened mapping, so child routes assemble their full ancestor-prefixed
// path directly.
func (r *Router) Assemble(name string, params route.Params) (string, error) {
	e, ok := r.byName[name]
	if !ok {
		return "", &RouteNotFoundError{Name: name}
	}
	return e.route.Assemble(params)
}

// Lookup returns the effective route registered under name.
func (r *Router) Lookup(name string) (route.Route, bool) {
	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return e.route, true
}

// Len returns the number of registered routes, descendants included.
func (r *Router) Len() int {
	return len(r.order)
}

// RouteInfo describes one registered route for inspection surfaces.
type RouteInfo struct {
	// Name is the route's flat lookup name.
	Name string `json:"name"`

	// Kind is "literal", "segment", or "regex".
	Kind string `json:"kind"`

	// Pattern is the effective template, or the expression source for a
	// regex route.
	Pattern string `json:"pattern"`

	// Parent is the parent route's name, or "" at top level.
	Parent string `json:"parent,omitempty"`
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []RouteInfo {
	infos := make([]RouteInfo, 0, len(r.order))
	for _, e := range r.order {
		info := RouteInfo{Name: e.name, Pattern: e.template}
		switch v := e.route.(type) {
		case *route.Literal:
			info.Kind = "literal"
		case *route.Segment:
			info.Kind = "segment"
		case *route.Regex:
			info.Kind = "regex"
			info.Pattern = v.Expr()
		default:
			info.Kind = "custom"
		}
		if e.parent != nil {
			info.Parent = e.parent.name
		}
		infos = append(infos, info)
	}
	return infos
}
