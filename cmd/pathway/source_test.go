package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pathway-dev/pathway/pkg/definition"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"category=python", "post=routing"})
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if params["category"] != "python" || params["post"] != "routing" {
		t.Errorf("params = %v", params)
	}

	for _, bad := range []string{"noequals", "=value"} {
		if _, err := parseParams([]string{bad}); err == nil {
			t.Errorf("parseParams(%q) should fail", bad)
		}
	}
}

func TestSourceFromArg(t *testing.T) {
	src, err := sourceFromArg("routes.yaml", "us-east-1")
	if err != nil {
		t.Fatalf("sourceFromArg: %v", err)
	}
	if _, ok := src.(definition.FileSource); !ok {
		t.Errorf("source = %T, want FileSource", src)
	}

	src, err = sourceFromArg("s3://configs/routes.yaml", "us-east-1")
	if err != nil {
		t.Fatalf("sourceFromArg: %v", err)
	}
	s3src, ok := src.(definition.S3Source)
	if !ok {
		t.Fatalf("source = %T, want S3Source", src)
	}
	if s3src.Bucket != "configs" || s3src.Key != "routes.yaml" {
		t.Errorf("s3 source = %+v", s3src)
	}

	if _, err := sourceFromArg("s3://onlybucket", "us-east-1"); err == nil {
		t.Error("expected error for s3 URL without key")
	}
}

func TestLoadRouter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "routes.yaml")
	doc := "blog:\n  path: /blog\n  children:\n    categories:\n      path: /categories\n"
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := loadRouter(context.Background(), p, "")
	if err != nil {
		t.Fatalf("loadRouter: %v", err)
	}
	got, err := r.Assemble("categories", nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got != "/blog/categories" {
		t.Errorf("Assemble = %q, want /blog/categories", got)
	}
}
