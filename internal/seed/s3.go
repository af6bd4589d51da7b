package seed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/thenoetrevino/tablero/internal/models"
)

const s3FetchTimeout = 10 * time.Second

// ErrSeedNotFound is returned when the seed object does not exist
var ErrSeedNotFound = errors.New("seed object not found")

// S3Config points the S3 source at a bucket host.
// Empty fields fall back to the default AWS configuration chain, so plain
// AWS works without any of them; MinIO and friends need Endpoint and usually
// UsePathStyle.
type S3Config struct {
	Endpoint     string `yaml:"endpoint"`
	Region       string `yaml:"region"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client builds an S3 client from cfg. It works against any
// S3-compatible service.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	if cfg.Endpoint != "" {
		if _, err := url.Parse(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("invalid S3 endpoint: %w", err)
		}
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// parseS3URL splits s3://bucket/key
func parseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 url: %w", err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("invalid S3 url %q: want s3://bucket/key", raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("invalid S3 url %q: missing object key", raw)
	}
	return u.Host, key, nil
}

func (l *Loader) loadS3(ctx context.Context, source string) ([]models.Column, error) {
	bucket, key, err := parseS3URL(source)
	if err != nil {
		return nil, err
	}

	// the object body is always YAML or JSON; sqlite seeds must be local
	format := FormatOf(path.Base(key))
	if format != FormatYAML && format != FormatJSON {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}

	if l.objects == nil {
		client, err := NewS3Client(ctx, l.S3)
		if err != nil {
			return nil, err
		}
		l.objects = client
	}

	ctx, cancel := context.WithTimeout(ctx, s3FetchTimeout)
	defer cancel()

	resp, err := l.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
			return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, source)
		}
		return nil, fmt.Errorf("error loading seed from S3: %w", err)
	}
	defer resp.Body.Close()

	return Decode(resp.Body, format)
}
