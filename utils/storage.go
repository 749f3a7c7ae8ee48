package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader is the file-storage collaborator: it turns uploaded files into
// durable, publicly retrievable URLs backed by S3.
type Uploader struct {
	uploader *manager.Uploader
	bucket   string
}

func NewUploader(ctx context.Context) (*Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}

	client := s3.NewFromConfig(cfg)
	return &Uploader{uploader: manager.NewUploader(client), bucket: bucket}, nil
}

// Upload stores one uploaded file and returns its URL. The key carries a
// timestamp so repeated uploads of the same filename never overwrite.
func (u *Uploader) Upload(ctx context.Context, file *multipart.FileHeader, keyPrefix string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file %s: %w", file.Filename, err)
	}
	defer f.Close()

	key := fmt.Sprintf("%s/%s-%s", keyPrefix, time.Now().Format("20060102150405"), file.Filename)
	result, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file %s: %w", file.Filename, err)
	}
	return result.Location, nil
}
