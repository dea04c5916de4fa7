// Package refdata loads the canonical reference data the bootstrap
// sequencer converges the configuration store to. The set comes from the
// built-in default, a local JSON file or an S3 object.
package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

// S3Options configures access to an S3-compatible object store.
type S3Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (io.ReadCloser, error) {
		out, err := c.GetObject(ctx, in)
		if err != nil {
			return nil, err
		}
		return out.Body, nil
	}
)

// ErrInvalid is wrapped by every validation failure of a loaded set.
var ErrInvalid = errors.New("invalid reference data")

// Load resolves source to a reference data set:
//
//	""                built-in Default()
//	"s3://bucket/key" JSON object in S3
//	anything else     path of a local JSON file
func Load(ctx context.Context, source string, opts S3Options) (*models.ReferenceData, error) {
	if source == "" {
		return Default(), nil
	}

	var (
		raw []byte
		err error
	)
	if bucket, key, ok := parseS3URI(source); ok {
		raw, err = readS3(ctx, bucket, key, opts)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read reference data %s: %w", source, err)
	}

	return Parse(raw)
}

// Parse decodes and validates a JSON reference data document.
func Parse(raw []byte) (*models.ReferenceData, error) {
	rd := &models.ReferenceData{}
	if err := json.Unmarshal(raw, rd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := Validate(rd); err != nil {
		return nil, err
	}
	return rd, nil
}

// Validate checks names are present and unique per kind.
func Validate(rd *models.ReferenceData) error {
	seen := map[string]struct{}{}
	check := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s with empty name", ErrInvalid, kind)
		}
		k := kind + "/" + name
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate %s %q", ErrInvalid, kind, name)
		}
		seen[k] = struct{}{}
		return nil
	}

	for _, c := range rd.Clients {
		if err := check("client", c.ClientID); err != nil {
			return err
		}
	}
	for _, r := range rd.IdentityResources {
		if err := check("identity resource", r.Name); err != nil {
			return err
		}
	}
	for _, s := range rd.APIScopes {
		if err := check("api scope", s.Name); err != nil {
			return err
		}
	}
	for _, r := range rd.APIResources {
		if err := check("api resource", r.Name); err != nil {
			return err
		}
	}
	return nil
}

func parseS3URI(source string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(source, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

func readS3(ctx context.Context, bucket, key string, opts S3Options) ([]byte, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	body, err := getObject(client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(body)
}
