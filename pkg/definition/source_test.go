package definition

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "routes.yaml")
	doc := "blog:\n  path: /blog\n"
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	defs, err := Load(context.Background(), FileSource{Path: p})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(defs) != 1 || defs[0].Name != "blog" || defs[0].Path != "/blog" {
		t.Errorf("defs = %+v", defs)
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, _, err := FileSource{Path: filepath.Join(t.TempDir(), "absent.yaml")}.Load(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := FileSource{Path: "routes.yaml"}.Load(ctx)
	if err == nil {
		t.Error("expected context error")
	}
}

func TestParseS3URL(t *testing.T) {
	cases := []struct {
		raw     string
		bucket  string
		key     string
		wantErr bool
	}{
		{"s3://configs/routes.yaml", "configs", "routes.yaml", false},
		{"s3://configs/env/prod/routes.json", "configs", "env/prod/routes.json", false},
		{"s3://configs", "", "", true},
		{"s3://", "", "", true},
		{"https://configs/routes.yaml", "", "", true},
	}
	for _, tc := range cases {
		bucket, key, err := ParseS3URL(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseS3URL(%q) err = %v, wantErr %v", tc.raw, err, tc.wantErr)
			continue
		}
		if bucket != tc.bucket || key != tc.key {
			t.Errorf("ParseS3URL(%q) = %q, %q, want %q, %q", tc.raw, bucket, key, tc.bucket, tc.key)
		}
	}
}
