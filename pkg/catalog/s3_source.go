package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Source.
type S3Client interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config contains configuration for reading catalogs from S3.
type S3Config struct {
	Bucket         string
	Prefix         string // Object key prefix of the catalog root, without the bucket
	Region         string `env:"LOCGEN_S3_REGION"`
	AccessKeyID    string `env:"LOCGEN_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"LOCGEN_S3_SECRET_KEY"`
	Endpoint       string `env:"LOCGEN_S3_ENDPOINT"`         // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"LOCGEN_S3_FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
}

// S3Option configures an S3Source.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// S3Source reads catalogs stored under a bucket prefix. Language
// "directories" are the common prefixes one level below the root.
type S3Source struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3Source creates a new S3 catalog source.
func NewS3Source(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Source, error) {
	if cfg.Bucket == "" {
		return nil, ErrInvalidS3Config
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	if client == nil {
		var awsOptions []func(*config.LoadOptions) error
		if cfg.Region != "" {
			awsOptions = append(awsOptions, config.WithRegion(cfg.Region))
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &S3Source{
		client: client,
		bucket: cfg.Bucket,
		prefix: prefix,
	}, nil
}

func (s *S3Source) String() string {
	return S3Scheme + s.bucket + "/" + s.prefix
}

// Languages implements Source.
func (s *S3Source) Languages(ctx context.Context) ([]string, error) {
	var (
		langs []string
		token *string
	)

	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(s.prefix),
			Delimiter:         aws.String("/"),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, errors.Join(ErrFailedToReadRoot, classifyS3Error(err, "list languages"))
		}

		for _, cp := range out.CommonPrefixes {
			name := strings.TrimPrefix(aws.ToString(cp.Prefix), s.prefix)
			name = strings.TrimSuffix(name, "/")
			if name != "" {
				langs = append(langs, name)
			}
		}

		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		token = out.NextContinuationToken
	}

	slices.Sort(langs)
	return langs, nil
}

// ReadFile implements Source.
func (s *S3Source) ReadFile(ctx context.Context, lang, name string) ([]byte, error) {
	key := s.prefix + path.Join(lang, name)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "read catalog")
	}
	defer func() { _ = out.Body.Close() }()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	return content, nil
}

// classifyS3Error converts S3 errors to package errors.
func classifyS3Error(err error, operation string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrLoadingCancelled, err)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrCatalogNotFound, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrCatalogNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		case "AccessDenied":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
