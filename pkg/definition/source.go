package definition

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source loads a raw definition document. The returned name (a file name
// or object key) selects the decoder.
type Source interface {
	Load(ctx context.Context) (data []byte, name string, err error)
}

// FileSource loads a definition document from the local filesystem.
type FileSource struct {
	Path string
}

// Load reads the file.
func (s FileSource) Load(ctx context.Context) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, "", fmt.Errorf("definition: reading %s: %w", s.Path, err)
	}
	return data, path.Base(s.Path), nil
}

// S3Source loads a definition document from an S3 object. Construct the
// client with whatever credentials the deployment uses; the source only
// issues GetObject.
type S3Source struct {
	Client *s3.Client
	Bucket string
	Key    string
}

// Load fetches the object.
func (s S3Source) Load(ctx context.Context) ([]byte, string, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("definition: fetching s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("definition: reading s3://%s/%s: %w", s.Bucket, s.Key, err)
	}
	return data, path.Base(s.Key), nil
}

// Load fetches and decodes a definition document from a source.
func Load(ctx context.Context, src Source) (Definitions, error) {
	data, name, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data, name)
}

// ParseS3URL splits an s3://bucket/key URL into its bucket and key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(raw, "s3://")
	if !ok {
		return "", "", fmt.Errorf("definition: %q is not an s3:// URL", raw)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("definition: %q must name a bucket and key", raw)
	}
	return bucket, key, nil
}
