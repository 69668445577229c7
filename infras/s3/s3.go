package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"hms/config"
	"hms/infras/otel"
	"hms/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

// Object is an uploaded file body.
type Object struct {
	Directory   string
	Name        string
	ContentType string
	Data        []byte
}

func (o Object) Key() string {
	return path.Join(o.Directory, o.Name)
}

type S3 interface {
	// Upload stores obj in the configured bucket and returns its public URL.
	Upload(ctx context.Context, obj Object) (url string, err error)
	Delete(ctx context.Context, objectKey string) error
	// ObjectKeyFromURL returns "" when url does not point into the bucket.
	ObjectKeyFromURL(url string) string
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) S3 {
	provider := credentials.NewStaticCredentialsProvider(
		cfg.External.S3.AccessKeyID,
		cfg.External.S3.SecretAccessKey,
		constant.Empty,
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithCredentialsProvider(provider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.External.S3.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(cfg.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:       client,
		bucket:       cfg.External.S3.BucketName,
		publicDomain: strings.TrimSuffix(cfg.External.S3.PublicDomain, "/"),
		apiEndpoint:  strings.TrimSuffix(cfg.External.S3.APIEndpoint, "/"),
		otel:         ot,
	}
}

func (svc *s3Impl) Upload(ctx context.Context, obj Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := obj.Key()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(obj.Data),
		ContentType:   aws.String(obj.ContentType),
		ContentLength: aws.Int64(int64(len(obj.Data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", svc.publicDomain, key), nil
}

func (svc *s3Impl) Delete(ctx context.Context, objectKey string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) ObjectKeyFromURL(url string) string {
	prefixes := []string{
		svc.publicDomain + "/",
		fmt.Sprintf("%s/%s/", svc.apiEndpoint, svc.bucket),
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && prefix != "/" && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
