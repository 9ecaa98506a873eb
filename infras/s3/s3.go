package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "s3.key"
	otelAttrBucket = "s3.bucket"
	otelAttrSize   = "s3.size"
)

// Object is a file published under the public domain.
type Object struct {
	Key         string
	ContentType string
	// FileName sets an attachment disposition so browsers download the file.
	FileName string
	Body     []byte
}

// S3 stores public objects in an S3 compatible bucket. An empty bucket
// means the configured default.
type S3 interface {
	Put(ctx context.Context, bucket string, object Object) (url string, err error)
	Delete(ctx context.Context, bucket, key string) error
}

type s3Impl struct {
	client        *s3.Client
	defaultBucket string
	publicDomain  string
	otel          otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	s3Config := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Config.AccessKeyID, s3Config.SecretAccessKey, "")),
		awsConfig.WithRegion("auto"),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Config.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Config.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:        client,
		defaultBucket: s3Config.BucketName,
		publicDomain:  strings.TrimSuffix(s3Config.PublicDomain, "/"),
		otel:          otel,
	}
}

func (svc *s3Impl) bucket(name string) string {
	if name == "" {
		return svc.defaultBucket
	}

	return name
}

// PublicURL joins the public domain and key, escaping each path segment.
func PublicURL(domain, key string) string {
	segments := strings.Split(strings.TrimPrefix(key, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.TrimSuffix(domain, "/") + "/" + strings.Join(segments, "/")
}

func (svc *s3Impl) Put(ctx context.Context, bucket string, object Object) (location string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket = svc.bucket(bucket)

	scope.SetAttributes(map[string]any{
		otelAttrKey:    object.Key,
		otelAttrBucket: bucket,
		otelAttrSize:   len(object.Body),
	})

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(object.Key),
		Body:          bytes.NewReader(object.Body),
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(int64(len(object.Body))),
	}

	if object.FileName != "" {
		input.ContentDisposition = aws.String(fmt.Sprintf("attachment; filename=%q", object.FileName))
	}

	if _, err = svc.client.PutObject(ctx, input); err != nil {
		log.Error().Err(err).Str("bucket", bucket).Str("key", object.Key).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to put object %s: %w", object.Key, err)
	}

	return PublicURL(svc.publicDomain, object.Key), nil
}

func (svc *s3Impl) Delete(ctx context.Context, bucket, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket = svc.bucket(bucket)

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	return nil
}
