package route

import (
	"regexp"
)

// Params holds parameter values extracted by matching or supplied for
// assembly. Values are raw path text; no URL decoding is applied.
type Params map[string]string

// Clone returns a copy of the parameter map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Get returns the value for name, or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// merge overlays params over defaults; the caller's values win.
func merge(defaults, params Params) Params {
	if len(defaults) == 0 {
		return params
	}
	out := defaults.Clone()
	for k, v := range params {
		out[k] = v
	}
	return out
}

// Route is the shared contract of the three route variants.
//
// Match reports whether path belongs to the route and, on success, the
// extracted parameters. A failed match is an expected outcome, not an
// error. Assemble builds a concrete path from a parameter set; it returns
// an *AssemblyError when the parameters cannot produce one.
//
// Routes are immutable once constructed and safe for concurrent use.
type Route interface {
	// Name is the route's lookup key for reverse routing.
	Name() string

	// Template is the original path template, or "" for pure Regex routes.
	Template() string

	// Match tests path against the route.
	Match(path string) (Params, bool)

	// Assemble builds a path from the parameters.
	Assemble(params Params) (string, error)
}

// Option configures route construction.
type Option func(*options)

type options struct {
	constraints map[string]string
	defaults    Params
	reverse     string
}

// WithConstraint restricts a parameter to a regular expression instead of
// the default one-segment match.
func WithConstraint(param, expr string) Option {
	return func(o *options) {
		if o.constraints == nil {
			o.constraints = make(map[string]string)
		}
		o.constraints[param] = expr
	}
}

// WithConstraints sets several parameter constraints at once.
func WithConstraints(constraints map[string]string) Option {
	return func(o *options) {
		for param, expr := range constraints {
			WithConstraint(param, expr)(o)
		}
	}
}

// WithDefaults sets fallback parameter values. Defaults fill match results
// for parameters absent from the path and stand in for omitted parameters
// during assembly.
func WithDefaults(defaults Params) Option {
	return func(o *options) {
		if o.defaults == nil {
			o.defaults = make(Params, len(defaults))
		}
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithReverse supplies a reverse template for a Regex route, making it
// assemblable. The template uses the Segment syntax.
func WithReverse(template string) Option {
	return func(o *options) {
		o.reverse = template
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compile constructs a route from a template, choosing the variant the way
// the tree builder does: templates containing an unescaped ":" or "[" become
// Segment routes, everything else a Literal.
func Compile(name, template string, opts ...Option) (Route, error) {
	if HasPattern(template) {
		return NewSegment(name, template, opts...)
	}
	return NewLiteral(name, template, opts...), nil
}

// Literal is a route over a fixed path. Matching is a string comparison;
// no regular expression is involved.
type Literal struct {
	name     string
	template string
	path     string
	defaults Params
}

// NewLiteral creates a Literal route for the exact path. The path is taken
// verbatim; template metacharacters in it are treated as literal text.
func NewLiteral(name, path string, opts ...Option) *Literal {
	o := buildOptions(opts)
	return &Literal{
		name:     name,
		template: path,
		path:     unescapeTemplate(path),
		defaults: o.defaults,
	}
}

// Name returns the route name.
func (l *Literal) Name() string { return l.name }

// Template returns the original template text.
func (l *Literal) Template() string { return l.template }

// Path returns the literal path the route matches.
func (l *Literal) Path() string { return l.path }

// Defaults returns a copy of the route's default parameters.
func (l *Literal) Defaults() Params { return l.defaults.Clone() }

// Match succeeds iff path equals the route's path exactly. The parameter
// map carries only defaults; a literal path extracts nothing.
func (l *Literal) Match(path string) (Params, bool) {
	if path != l.path {
		return nil, false
	}
	return l.defaults.Clone(), true
}

// Assemble returns the fixed path. Supplied parameters are ignored.
func (l *Literal) Assemble(Params) (string, error) {
	return l.path, nil
}

// Segment is a route over a templated path with required parameters and
// optional groups. The matcher and the assembly template are compiled from
// the same parse, so the two cannot drift apart.
type Segment struct {
	name        string
	template    string
	segs        []segment
	re          *regexp.Regexp
	constraints map[string]string
	defaults    Params
}

// NewSegment compiles template into a Segment route. A malformed template
// returns a *PatternError; nothing is deferred to match time.
func NewSegment(name, template string, opts ...Option) (*Segment, error) {
	o := buildOptions(opts)
	segs, re, err := compileTemplate(template, o.constraints)
	if err != nil {
		return nil, err
	}
	return &Segment{
		name:        name,
		template:    template,
		segs:        segs,
		re:          re,
		constraints: o.constraints,
		defaults:    o.defaults,
	}, nil
}

// Name returns the route name.
func (s *Segment) Name() string { return s.name }

// Template returns the path template.
func (s *Segment) Template() string { return s.template }

// Constraints returns a copy of the per-parameter constraints.
func (s *Segment) Constraints() map[string]string {
	out := make(map[string]string, len(s.constraints))
	for k, v := range s.constraints {
		out[k] = v
	}
	return out
}

// Defaults returns a copy of the route's default parameters.
func (s *Segment) Defaults() Params { return s.defaults.Clone() }

// ParamNames returns the template's parameter names, outermost first.
func (s *Segment) ParamNames() []string { return paramNames(s.segs) }

// Match runs the compiled matcher. Captures from unmatched optional groups
// are omitted; defaults fill parameters the path did not provide.
func (s *Segment) Match(path string) (Params, bool) {
	m := s.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := s.defaults.Clone()
	for i, name := range s.re.SubexpNames() {
		if i == 0 || name == "" || m[i] == "" {
			continue
		}
		params[name] = m[i]
	}
	return params, true
}

// Assemble renders the template with the parameters, falling back to the
// route's defaults for omitted ones. An optional group is emitted iff at
// least one parameter inside it is supplied; a nested group cannot force
// its enclosing group in when the enclosing group's own parameter is
// absent (KindInvalidOptionalNesting).
func (s *Segment) Assemble(params Params) (string, error) {
	return assembleSegments(s.segs, merge(s.defaults, params), s.name)
}

// Regex is a route over a caller-supplied regular expression. No assembly
// template can be derived from an arbitrary expression, so Assemble fails
// with KindNotAssemblable unless a reverse template was supplied via
// WithReverse.
type Regex struct {
	name        string
	expr        string
	re          *regexp.Regexp
	reverse     []segment
	reverseTmpl string
	defaults    Params
}

// NewRegex compiles expr into a Regex route. The expression is anchored at
// both ends; named capture groups become match parameters.
func NewRegex(name, expr string, opts ...Option) (*Regex, error) {
	o := buildOptions(opts)
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, &PatternError{Template: expr, Pos: -1, Reason: "expression does not compile", Err: err}
	}
	r := &Regex{
		name:     name,
		expr:     expr,
		re:       re,
		defaults: o.defaults,
	}
	if o.reverse != "" {
		segs, perr := parseTemplate(o.reverse)
		if perr != nil {
			return nil, perr
		}
		r.reverse = segs
		r.reverseTmpl = o.reverse
	}
	return r, nil
}

// Name returns the route name.
func (r *Regex) Name() string { return r.name }

// Template returns "" — a pure expression has no path template.
func (r *Regex) Template() string { return "" }

// Expr returns the expression source as supplied by the caller.
func (r *Regex) Expr() string { return r.expr }

// ReverseTemplate returns the reverse template, or "" when the route is
// not assemblable.
func (r *Regex) ReverseTemplate() string { return r.reverseTmpl }

// Defaults returns a copy of the route's default parameters.
func (r *Regex) Defaults() Params { return r.defaults.Clone() }

// Match runs the expression against the whole path and returns the named
// captures.
func (r *Regex) Match(path string) (Params, bool) {
	m := r.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := r.defaults.Clone()
	for i, name := range r.re.SubexpNames() {
		if i == 0 || name == "" || m[i] == "" {
			continue
		}
		params[name] = m[i]
	}
	return params, true
}

// Assemble renders the reverse template, if one was supplied.
func (r *Regex) Assemble(params Params) (string, error) {
	if r.reverse == nil {
		return "", &AssemblyError{Route: r.name, Kind: KindNotAssemblable}
	}
	return assembleSegments(r.reverse, merge(r.defaults, params), r.name)
}
