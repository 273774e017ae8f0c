package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/pathway-dev/pathway/pkg/route"
	"github.com/pathway-dev/pathway/pkg/router"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "pattern error",
			code:    "E002",
			wantMsg: "Unbalanced optional group",
			wantCat: CategoryPattern,
		},
		{
			name:    "registration error",
			code:    "E020",
			wantMsg: "Duplicate route name",
			wantCat: CategoryRegistration,
		},
		{
			name:    "assembly error",
			code:    "E040",
			wantMsg: "Missing route parameter",
			wantCat: CategoryAssembly,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "source %q not found", "routes.yaml")
	if err.Message != `source "routes.yaml" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestErrorString(t *testing.T) {
	withCode := New("E040")
	if got := withCode.Error(); got != "E040: Missing route parameter" {
		t.Errorf("Error() = %q", got)
	}
	withoutCode := Newf(CategoryCLI, "plain")
	if got := withoutCode.Error(); got != "plain" {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := New("E061").Wrap(inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestFromRoutingPatternError(t *testing.T) {
	_, err := route.NewSegment("bad", "/blog[/:category")
	if err == nil {
		t.Fatal("expected pattern error")
	}

	pe := FromRouting(err)
	if pe.Code != "E001" {
		t.Errorf("Code = %q, want E001", pe.Code)
	}
	if pe.Category != CategoryPattern {
		t.Errorf("Category = %q, want %q", pe.Category, CategoryPattern)
	}
	if pe.Location == nil || pe.Location.Template != "/blog[/:category" {
		t.Errorf("Location = %+v", pe.Location)
	}
	if !errors.Is(pe, err) {
		t.Error("original error should remain reachable via errors.Is")
	}
}

func TestFromRoutingAssemblyError(t *testing.T) {
	rt, err := route.NewSegment("post", "/posts/:id")
	if err != nil {
		t.Fatal(err)
	}
	_, aerr := rt.Assemble(nil)
	if aerr == nil {
		t.Fatal("expected assembly error")
	}

	pe := FromRouting(aerr)
	if pe.Code != "E040" {
		t.Errorf("Code = %q, want E040", pe.Code)
	}
	if !strings.Contains(pe.Suggestion, `"id"`) {
		t.Errorf("Suggestion = %q, want mention of the parameter", pe.Suggestion)
	}
}

func TestFromRoutingNotAssemblable(t *testing.T) {
	rt, err := route.NewRegex("raw", `/raw/.+`)
	if err != nil {
		t.Fatal(err)
	}
	_, aerr := rt.Assemble(nil)
	pe := FromRouting(aerr)
	if pe.Code != "E042" {
		t.Errorf("Code = %q, want E042", pe.Code)
	}
}

func TestFromRoutingRouterErrors(t *testing.T) {
	r := router.New()
	if err := r.Add(route.NewLiteral("home", "/")); err != nil {
		t.Fatal(err)
	}

	dup := r.Add(route.NewLiteral("home", "/again"))
	if pe := FromRouting(dup); pe.Code != "E020" {
		t.Errorf("duplicate Code = %q, want E020", pe.Code)
	}

	_, nf := r.Assemble("ghost", nil)
	if pe := FromRouting(nf); pe.Code != "E021" {
		t.Errorf("not-found Code = %q, want E021", pe.Code)
	}
}

func TestFormatCaret(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E002").WithLocation("/blog[/:category", 5)
	out := err.Format()
	if !strings.Contains(out, "/blog[/:category") {
		t.Error("Format should include the template")
	}
	lines := strings.Split(out, "\n")
	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
			break
		}
	}
	if caretLine == "" {
		t.Fatal("Format should include a caret line")
	}
	if got := strings.Index(caretLine, "^"); got != 2+5 {
		t.Errorf("caret at column %d, want %d", got, 2+5)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E040").WithLocation("/posts/:id", -1)
	got := err.FormatCompact()
	if !strings.Contains(got, "E040") || !strings.Contains(got, "Missing route parameter") {
		t.Errorf("FormatCompact = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E001").WithLocation("/x[", 2)
	out := err.FormatJSON()
	for _, want := range []string{`"code":"E001"`, `"category":"pattern"`, `"template":"/x["`, `"pos":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatJSON missing %s in %s", want, out)
		}
	}
}

func TestRegister(t *testing.T) {
	Register("E900", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Test error",
	})
	err := New("E900")
	if err.Message != "Test error" {
		t.Errorf("Message = %q", err.Message)
	}
	if _, ok := GetTemplate("E900"); !ok {
		t.Error("GetTemplate should find registered code")
	}
}
