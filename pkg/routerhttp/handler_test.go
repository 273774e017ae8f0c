package routerhttp

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pathway-dev/pathway/pkg/route"
	"github.com/pathway-dev/pathway/pkg/router"
)

func testRouter(t *testing.T) *router.Router {
	t.Helper()
	r := router.New()
	if err := r.Add(route.NewLiteral("home", "/")); err != nil {
		t.Fatal(err)
	}
	post, err := route.NewSegment("post", "/posts/:id")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Add(post); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestHandlerDispatch(t *testing.T) {
	h := NewHandler(testRouter(t))
	h.HandleFunc("post", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintf(w, "post %s via %s", Param(req, "id"), RouteNameFromContext(req.Context()))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got, want := rec.Body.String(), "post 42 via post"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandlerNoMatch(t *testing.T) {
	h := NewHandler(testRouter(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandlerMatchedRouteWithoutHandler(t *testing.T) {
	// A pattern match without a registered handler still 404s.
	h := NewHandler(testRouter(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/42", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandlerCustomNotFound(t *testing.T) {
	h := NewHandler(testRouter(t))
	h.NotFound(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusGone {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGone)
	}
}

func TestHandlerMiddlewareOrder(t *testing.T) {
	h := NewHandler(testRouter(t))
	h.HandleFunc("home", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("h"))
	})

	mark := func(s string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Write([]byte(s))
				next.ServeHTTP(w, req)
			})
		}
	}
	h.Use(mark("a"), mark("b"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got, want := rec.Body.String(), "abh"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandlerMiddlewareSeesRouteName(t *testing.T) {
	h := NewHandler(testRouter(t))
	h.HandleFunc("home", func(w http.ResponseWriter, req *http.Request) {})

	var seen []string
	h.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			seen = append(seen, RouteNameFromContext(req.Context()))
			next.ServeHTTP(w, req)
		})
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if len(seen) != 2 || seen[0] != "home" || seen[1] != "" {
		t.Errorf("seen = %q, want [home \"\"]", seen)
	}
}

func TestParamsOutsideDispatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := Param(req, "id"); got != "" {
		t.Errorf("Param outside dispatch = %q, want empty", got)
	}
	if got := RouteNameFromContext(req.Context()); got != "" {
		t.Errorf("RouteNameFromContext outside dispatch = %q, want empty", got)
	}
}
