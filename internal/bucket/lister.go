// Package bucket перечисляет объекты бакета S3 постранично.
package bucket

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const DefaultPageSize int32 = 10

var ErrMissingContinuationToken = errors.New("truncated page without continuation token")

// ListObjectsV2API - часть клиента S3, нужная для перечисления.
type ListObjectsV2API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type Lister struct {
	api      ListObjectsV2API
	pageSize int32
	log      *zap.Logger
}

type Option func(*Lister)

func WithPageSize(n int32) Option {
	return func(l *Lister) {
		if n > 0 {
			l.pageSize = n
		}
	}
}

func NewLister(api ListObjectsV2API, log *zap.Logger, opts ...Option) *Lister {
	l := &Lister{
		api:      api,
		pageSize: DefaultPageSize,
		log:      log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewS3Client создаёт клиента S3 из стандартной цепочки конфигурации AWS.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// ListObjects возвращает ключи всех объектов бакета в порядке выдачи S3.
func (l *Lister) ListObjects(ctx context.Context, bucket string) ([]string, error) {
	return l.listObjects(ctx, bucket, nil)
}

// listObjects запрашивает одну страницу и рекурсивно дочитывает остальные,
// пока S3 помечает ответ как усечённый.
func (l *Lister) listObjects(ctx context.Context, bucket string, continuationToken *string) ([]string, error) {
	params := &s3.ListObjectsV2Input{
		Bucket:            aws.String(bucket),
		MaxKeys:           aws.Int32(l.pageSize),
		ContinuationToken: continuationToken,
	}

	resp, err := l.api.ListObjectsV2(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list objects in %s: %w", bucket, err)
	}

	files := make([]string, 0, len(resp.Contents))
	for _, object := range resp.Contents {
		files = append(files, aws.ToString(object.Key))
	}

	l.log.Debug("listed page",
		zap.String("bucket", bucket),
		zap.Int("keys", len(files)),
		zap.Bool("truncated", aws.ToBool(resp.IsTruncated)),
	)

	if !aws.ToBool(resp.IsTruncated) {
		return files, nil
	}

	if aws.ToString(resp.NextContinuationToken) == "" {
		return nil, fmt.Errorf("list objects in %s: %w", bucket, ErrMissingContinuationToken)
	}

	rest, err := l.listObjects(ctx, bucket, resp.NextContinuationToken)
	if err != nil {
		return nil, err
	}
	return append(files, rest...), nil
}
