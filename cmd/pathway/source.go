package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pathway-dev/pathway/internal/errors"
	"github.com/pathway-dev/pathway/pkg/definition"
	"github.com/pathway-dev/pathway/pkg/route"
	"github.com/pathway-dev/pathway/pkg/router"
)

// sourceFromArg resolves a routes argument to a definition source: an
// s3://bucket/key URL fetches from S3, anything else is a local path.
func sourceFromArg(raw, region string) (definition.Source, error) {
	if strings.HasPrefix(raw, "s3://") {
		bucket, key, err := definition.ParseS3URL(raw)
		if err != nil {
			return nil, errors.FromError(err, "E080")
		}
		client := s3.New(s3.Options{
			Region:      region,
			Credentials: aws.AnonymousCredentials{},
		})
		return definition.S3Source{Client: client, Bucket: bucket, Key: key}, nil
	}
	return definition.FileSource{Path: raw}, nil
}

// loadRouter loads and builds a route table from a routes argument.
func loadRouter(ctx context.Context, raw, region string) (*router.Router, error) {
	src, err := sourceFromArg(raw, region)
	if err != nil {
		return nil, err
	}
	defs, err := definition.Load(ctx, src)
	if err != nil {
		return nil, errors.FromError(err, "E061")
	}
	r, err := router.Build(defs)
	if err != nil {
		return nil, errors.FromRouting(err)
	}
	return r, nil
}

// parseParams parses name=value arguments into route parameters.
func parseParams(args []string) (route.Params, error) {
	params := make(route.Params, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, errors.New("E081").WithDetail(fmt.Sprintf("got %q", arg))
		}
		params[name] = value
	}
	return params, nil
}
