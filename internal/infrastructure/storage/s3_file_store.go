package storage

import (
	"context"
	"io"
	"log"
	"os"

	"conecta_tool/internal/infrastructure/database"
	"conecta_tool/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultQuotationFilesBucket = "conecta-quotation-files"

// S3FileStore keeps client quotation files in S3 (or an S3-compatible
// local endpoint via S3_ENDPOINT).
type S3FileStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IFileStore = (*S3FileStore)(nil)

// ConnectS3 builds the file store from the shared AWS environment
// config. Bucket name comes from QUOTATION_FILES_BUCKET.
func ConnectS3() *S3FileStore {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return &S3FileStore{
		client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			// Path-style addressing keeps localstack/minio endpoints working.
			o.UsePathStyle = os.Getenv("S3_ENDPOINT") != ""
		}),
		bucket: getenvDefault("QUOTATION_FILES_BUCKET", defaultQuotationFilesBucket),
	}
}

func (s *S3FileStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	_, err := s.client.PutObject(ctx, in)
	return err
}

func (s *S3FileStore) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", err
	}
	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
