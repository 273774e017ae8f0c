package route

import (
	"fmt"
	"regexp"
	"strings"
)

// segKind identifies the kind of a parsed template segment.
type segKind int

const (
	segStatic segKind = iota
	segParam
	segGroup
)

// segment is one node of a parsed path template. Static segments carry
// text, parameter segments carry the parameter name, and group segments
// carry the nested segments of an optional group.
type segment struct {
	kind     segKind
	value    string
	children []segment
}

// isNameByte reports whether c may appear in a parameter name.
func isNameByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// parseTemplate parses a path template into its segment tree.
//
// The grammar: literal text is matched verbatim, ":name" introduces a
// required parameter, "[...]" delimits an optional group (groups nest),
// and a backslash escapes the following character.
func parseTemplate(template string) ([]segment, error) {
	type frame struct {
		segs []segment
		pos  int // offset of the opening bracket
	}

	frames := []frame{{pos: -1}}
	seen := make(map[string]bool)
	var static strings.Builder

	flush := func() {
		if static.Len() > 0 {
			top := &frames[len(frames)-1]
			top.segs = append(top.segs, segment{kind: segStatic, value: static.String()})
			static.Reset()
		}
	}

	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '\\':
			if i+1 >= len(template) {
				return nil, &PatternError{Template: template, Pos: i, Reason: "trailing escape"}
			}
			i++
			static.WriteByte(template[i])

		case ':':
			j := i + 1
			for j < len(template) && isNameByte(template[j]) {
				j++
			}
			if j == i+1 {
				return nil, &PatternError{Template: template, Pos: i, Reason: "parameter marker without a name"}
			}
			name := template[i+1 : j]
			if seen[name] {
				return nil, &PatternError{
					Template: template,
					Pos:      i,
					Reason:   fmt.Sprintf("duplicate parameter %q", name),
				}
			}
			seen[name] = true
			flush()
			top := &frames[len(frames)-1]
			top.segs = append(top.segs, segment{kind: segParam, value: name})
			i = j - 1

		case '[':
			flush()
			frames = append(frames, frame{pos: i})

		case ']':
			if len(frames) == 1 {
				return nil, &PatternError{Template: template, Pos: i, Reason: "unbalanced closing bracket"}
			}
			flush()
			group := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			top := &frames[len(frames)-1]
			top.segs = append(top.segs, segment{kind: segGroup, children: group.segs})

		default:
			static.WriteByte(c)
		}
	}

	if len(frames) > 1 {
		return nil, &PatternError{
			Template: template,
			Pos:      frames[len(frames)-1].pos,
			Reason:   "unbalanced opening bracket",
		}
	}
	flush()
	return frames[0].segs, nil
}

// defaultParamExpr is the expression for an unconstrained parameter: one or
// more non-separator characters, exactly one path segment's worth.
const defaultParamExpr = `[^/]+`

// regexSource converts a segment tree into regular expression source.
// Parameters become named capturing groups, optional groups become
// non-capturing optional groups, and static text is quoted.
func regexSource(segs []segment, constraints map[string]string) string {
	var b strings.Builder
	writeRegex(&b, segs, constraints)
	return b.String()
}

func writeRegex(b *strings.Builder, segs []segment, constraints map[string]string) {
	for _, s := range segs {
		switch s.kind {
		case segStatic:
			b.WriteString(regexp.QuoteMeta(s.value))
		case segParam:
			expr := constraints[s.value]
			if expr == "" {
				expr = defaultParamExpr
			}
			fmt.Fprintf(b, "(?P<%s>%s)", s.value, expr)
		case segGroup:
			b.WriteString("(?:")
			writeRegex(b, s.children, constraints)
			b.WriteString(")?")
		}
	}
}

// compileTemplate parses a template and compiles it into an anchored
// matcher. Compilation failures are fatal at construction time.
func compileTemplate(template string, constraints map[string]string) ([]segment, *regexp.Regexp, error) {
	segs, err := parseTemplate(template)
	if err != nil {
		return nil, nil, err
	}
	re, err := regexp.Compile("^" + regexSource(segs, constraints) + "$")
	if err != nil {
		return nil, nil, &PatternError{
			Template: template,
			Pos:      -1,
			Reason:   "constraint does not compile",
			Err:      err,
		}
	}
	return segs, re, nil
}

// assembleSegments renders a segment tree using the supplied parameters.
// Required parameters outside any optional group must be present.
func assembleSegments(segs []segment, params Params, routeName string) (string, error) {
	var b strings.Builder
	for _, s := range segs {
		switch s.kind {
		case segStatic:
			b.WriteString(s.value)
		case segParam:
			v, ok := params[s.value]
			if !ok || v == "" {
				return "", &AssemblyError{Route: routeName, Param: s.value, Kind: KindMissingParameter}
			}
			b.WriteString(v)
		case segGroup:
			text, include, err := assembleGroup(s.children, params, routeName)
			if err != nil {
				return "", err
			}
			if include {
				b.WriteString(text)
			}
		}
	}
	return b.String(), nil
}

// assembleGroup renders one optional group. The group is included iff at
// least one parameter in its subtree is supplied; inclusion cascades
// outward through nesting. A group forced in by a nested parameter while
// its own parameter is absent is an invalid nesting.
func assembleGroup(segs []segment, params Params, routeName string) (string, bool, error) {
	var (
		b        strings.Builder
		supplied bool
		nested   bool
		missing  string
	)
	for _, s := range segs {
		switch s.kind {
		case segStatic:
			b.WriteString(s.value)
		case segParam:
			if v, ok := params[s.value]; ok && v != "" {
				b.WriteString(v)
				supplied = true
			} else if missing == "" {
				missing = s.value
			}
		case segGroup:
			text, include, err := assembleGroup(s.children, params, routeName)
			if err != nil {
				return "", false, err
			}
			if include {
				b.WriteString(text)
				nested = true
			}
		}
	}

	include := supplied || nested
	if include && missing != "" {
		kind := KindMissingParameter
		if !supplied {
			kind = KindInvalidOptionalNesting
		}
		return "", false, &AssemblyError{Route: routeName, Param: missing, Kind: kind}
	}
	return b.String(), include, nil
}

// paramNames collects every parameter name in the tree, outermost first.
func paramNames(segs []segment) []string {
	var names []string
	for _, s := range segs {
		switch s.kind {
		case segParam:
			names = append(names, s.value)
		case segGroup:
			names = append(names, paramNames(s.children)...)
		}
	}
	return names
}

// HasPattern reports whether template contains an unescaped parameter
// marker or optional-group bracket. Templates without either compile to
// Literal routes.
func HasPattern(template string) bool {
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '\\':
			i++
		case ':', '[':
			return true
		}
	}
	return false
}

// EscapeTemplate escapes template metacharacters in s so it can be embedded
// in a template as literal text.
func EscapeTemplate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ':', '[', ']', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescapeTemplate resolves escape sequences, producing the literal text a
// pattern-free template stands for.
func unescapeTemplate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
