package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3 struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

type S3Config struct {
	Region string
	Bucket string
	Prefix string
}

func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	return &S3{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: cfg.Bucket,
		Prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func (s *S3) Save(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	contentType := "application/pdf"

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	return err
}

func (s *S3) Load(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &key,
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *S3) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return s.Prefix + "/" + name
}

func (s *S3) String() string { return fmt.Sprintf("s3(%s/%s)", s.Bucket, s.Prefix) }
