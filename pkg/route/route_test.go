package route

import (
	"errors"
	"testing"
)

func TestLiteralMatch(t *testing.T) {
	rt := NewLiteral("home", "/")

	params, ok := rt.Match("/")
	if !ok {
		t.Fatal("expected match for /")
	}
	if len(params) != 0 {
		t.Errorf("params = %v, want empty", params)
	}

	for _, path := range []string{"", "/home", "/ ", "//"} {
		if _, ok := rt.Match(path); ok {
			t.Errorf("Match(%q) = true, want false", path)
		}
	}
}

func TestLiteralAssembleIgnoresParams(t *testing.T) {
	rt := NewLiteral("about", "/about")

	got, err := rt.Assemble(Params{"anything": "x"})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "/about" {
		t.Errorf("Assemble = %q, want %q", got, "/about")
	}
}

func TestLiteralEscapedTemplate(t *testing.T) {
	rt := NewLiteral("odd", `/a\:b`)

	if _, ok := rt.Match("/a:b"); !ok {
		t.Error("expected match for /a:b")
	}
	if got, _ := rt.Assemble(nil); got != "/a:b" {
		t.Errorf("Assemble = %q, want %q", got, "/a:b")
	}
}

func TestSegmentMatch(t *testing.T) {
	rt, err := NewSegment("post", "/blog[/:category[/:post]]")
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	tests := []struct {
		path  string
		ok    bool
		want  Params
	}{
		{"/blog", true, Params{}},
		{"/blog/python", true, Params{"category": "python"}},
		{"/blog/python/watson", true, Params{"category": "python", "post": "watson"}},
		{"/blog/python/extra/segments", false, nil},
		{"/blog/", false, nil},
		{"/other", false, nil},
	}

	for _, tt := range tests {
		params, ok := rt.Match(tt.path)
		if ok != tt.ok {
			t.Errorf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if len(params) != len(tt.want) {
			t.Errorf("Match(%q) params = %v, want %v", tt.path, params, tt.want)
			continue
		}
		for k, v := range tt.want {
			if params[k] != v {
				t.Errorf("Match(%q) params[%q] = %q, want %q", tt.path, k, params[k], v)
			}
		}
	}
}

func TestSegmentAssembleCascade(t *testing.T) {
	rt, err := NewSegment("post", "/blog[/:category[/:post]]")
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	tests := []struct {
		name    string
		params  Params
		want    string
		wantErr error
	}{
		{"no params", nil, "/blog", nil},
		{"outer only", Params{"category": "python"}, "/blog/python", nil},
		{"both", Params{"category": "python", "post": "watson"}, "/blog/python/watson", nil},
		{"inner without outer", Params{"post": "watson"}, "", ErrInvalidOptionalNesting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rt.Assemble(tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Assemble err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Assemble: %v", err)
			}
			if got != tt.want {
				t.Errorf("Assemble = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegmentAssembleMissingRequired(t *testing.T) {
	rt, err := NewSegment("search", "/search/:keyword")
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	_, err = rt.Assemble(nil)
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("Assemble err = %v, want ErrMissingParameter", err)
	}
	var aerr *AssemblyError
	if !errors.As(err, &aerr) {
		t.Fatalf("error type = %T, want *AssemblyError", err)
	}
	if aerr.Param != "keyword" {
		t.Errorf("AssemblyError.Param = %q, want %q", aerr.Param, "keyword")
	}
}

func TestSegmentAssemblePartialGroup(t *testing.T) {
	// Two parameters at the same optional depth: supplying one forces the
	// group in and the other becomes a missing required parameter.
	rt, err := NewSegment("pair", "/x[/:a/:b]")
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	if _, err := rt.Assemble(Params{"a": "1"}); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("Assemble err = %v, want ErrMissingParameter", err)
	}
	got, err := rt.Assemble(Params{"a": "1", "b": "2"})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "/x/1/2" {
		t.Errorf("Assemble = %q, want %q", got, "/x/1/2")
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	rt, err := NewSegment("post", "/blog[/:category[/:post]]")
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	inputs := []Params{
		{},
		{"category": "python"},
		{"category": "python", "post": "watson"},
	}

	for _, params := range inputs {
		path, err := rt.Assemble(params)
		if err != nil {
			t.Fatalf("Assemble(%v): %v", params, err)
		}
		back, ok := rt.Match(path)
		if !ok {
			t.Fatalf("Match(%q) failed after Assemble(%v)", path, params)
		}
		if len(back) != len(params) {
			t.Errorf("round trip of %v via %q produced %v", params, path, back)
		}
		for k, v := range params {
			if back[k] != v {
				t.Errorf("round trip params[%q] = %q, want %q", k, back[k], v)
			}
		}
	}
}

func TestSegmentConstraints(t *testing.T) {
	rt, err := NewSegment("show", "/posts/:id", WithConstraint("id", `\d+`))
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	if _, ok := rt.Match("/posts/42"); !ok {
		t.Error("expected match for /posts/42")
	}
	if _, ok := rt.Match("/posts/abc"); ok {
		t.Error("constraint should reject /posts/abc")
	}
}

func TestSegmentInvalidConstraint(t *testing.T) {
	_, err := NewSegment("bad", "/posts/:id", WithConstraint("id", `(`))
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PatternError", err)
	}
}

func TestSegmentDefaults(t *testing.T) {
	rt, err := NewSegment("blog", "/blog[/:category]", WithDefaults(Params{"category": "all"}))
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}

	params, ok := rt.Match("/blog")
	if !ok {
		t.Fatal("expected match for /blog")
	}
	if params["category"] != "all" {
		t.Errorf("params[category] = %q, want default %q", params["category"], "all")
	}

	params, ok = rt.Match("/blog/python")
	if !ok {
		t.Fatal("expected match for /blog/python")
	}
	if params["category"] != "python" {
		t.Errorf("params[category] = %q, want %q", params["category"], "python")
	}

	// The default also feeds assembly.
	got, err := rt.Assemble(nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "/blog/all" {
		t.Errorf("Assemble = %q, want %q", got, "/blog/all")
	}
}

func TestRegexMatch(t *testing.T) {
	rt, err := NewRegex("asset", `/static/(?P<file>[a-z0-9._-]+)`)
	if err != nil {
		t.Fatalf("NewRegex: %v", err)
	}

	params, ok := rt.Match("/static/app.css")
	if !ok {
		t.Fatal("expected match for /static/app.css")
	}
	if params["file"] != "app.css" {
		t.Errorf("params[file] = %q, want %q", params["file"], "app.css")
	}

	// The expression is anchored at both ends.
	if _, ok := rt.Match("/static/app.css/extra"); ok {
		t.Error("should not match a longer path")
	}
	if _, ok := rt.Match("/prefix/static/app.css"); ok {
		t.Error("should not match an offset path")
	}
}

func TestRegexNotAssemblable(t *testing.T) {
	rt, err := NewRegex("asset", `/static/(?P<file>.+)`)
	if err != nil {
		t.Fatalf("NewRegex: %v", err)
	}

	_, err = rt.Assemble(Params{"file": "app.css"})
	if !errors.Is(err, ErrNotAssemblable) {
		t.Fatalf("Assemble err = %v, want ErrNotAssemblable", err)
	}
}

func TestRegexReverseTemplate(t *testing.T) {
	rt, err := NewRegex("asset", `/static/(?P<file>.+)`, WithReverse("/static/:file"))
	if err != nil {
		t.Fatalf("NewRegex: %v", err)
	}

	got, err := rt.Assemble(Params{"file": "app.css"})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "/static/app.css" {
		t.Errorf("Assemble = %q, want %q", got, "/static/app.css")
	}

	if _, err := rt.Assemble(nil); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("Assemble err = %v, want ErrMissingParameter", err)
	}
}

func TestRegexInvalidExpression(t *testing.T) {
	_, err := NewRegex("bad", `(unclosed`)
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PatternError", err)
	}
}

func TestCompileClassification(t *testing.T) {
	tests := []struct {
		template string
		literal  bool
	}{
		{"/blog", true},
		{"/blog/categories", true},
		{"/blog/:category", false},
		{"/blog[/x]", false},
		{`/escaped\:colon`, true},
	}

	for _, tt := range tests {
		rt, err := Compile("r", tt.template)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.template, err)
		}
		_, isLiteral := rt.(*Literal)
		if isLiteral != tt.literal {
			t.Errorf("Compile(%q) literal = %v, want %v", tt.template, isLiteral, tt.literal)
		}
	}
}
