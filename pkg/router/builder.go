package router

import (
	"sort"

	"github.com/pathway-dev/pathway/pkg/definition"
	"github.com/pathway-dev/pathway/pkg/route"
)

// Build constructs a router from an ordered list of declarative
// definitions, walking the tree depth-first: each node becomes a Regex,
// Segment, or Literal route by the same classification the variants use,
// and children attach under their parent before the walk moves on.
//
// Build adds no error kinds of its own; it surfaces the PatternError and
// DuplicateRouteNameError conditions of the layers below at startup
// instead of at first request. Any error aborts the build — a partially
// built router is never returned.
func Build(defs definition.Definitions, opts ...Option) (*Router, error) {
	if err := defs.Validate(); err != nil {
		return nil, err
	}
	r := New(opts...)
	for i := range defs {
		if err := r.addDefinition("", &defs[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// BuildMap constructs a router from name-keyed definitions. Maps carry no
// order, so nodes register in sorted name order at every level; use Build
// with the list form when registration order must break pattern overlaps.
func BuildMap(defs map[string]definition.Definition, opts ...Option) (*Router, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make(definition.Definitions, 0, len(defs))
	for _, name := range names {
		d := defs[name]
		d.Name = name
		list = append(list, d)
	}
	return Build(list, opts...)
}

// AddDefinition registers one definition (and its children) on an existing
// router, top-level when parentName is "".
func (r *Router) AddDefinition(parentName string, def definition.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	return r.addDefinition(parentName, &def)
}

func (r *Router) addDefinition(parentName string, def *definition.Definition) error {
	rt, err := routeFromDefinition(def)
	if err != nil {
		return err
	}

	if parentName == "" {
		err = r.Add(rt)
	} else {
		err = r.AddTo(parentName, rt)
	}
	if err != nil {
		return err
	}

	for i := range def.Children {
		if err := r.addDefinition(def.Name, &def.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// routeFromDefinition picks the variant for a definition node: regex when
// an expression is given, otherwise Segment or Literal by template
// content. A node with neither path nor regex routes "/" + name.
func routeFromDefinition(def *definition.Definition) (route.Route, error) {
	var opts []route.Option
	if len(def.Defaults) > 0 {
		opts = append(opts, route.WithDefaults(route.Params(def.Defaults)))
	}
	if len(def.Constraints) > 0 {
		opts = append(opts, route.WithConstraints(def.Constraints))
	}

	if def.Regex != "" {
		if def.Reverse != "" {
			opts = append(opts, route.WithReverse(def.Reverse))
		}
		return route.NewRegex(def.Name, def.Regex, opts...)
	}

	path := def.Path
	if path == "" {
		path = "/" + def.Name
	}
	return route.Compile(def.Name, path, opts...)
}
