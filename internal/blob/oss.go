package blob

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStorage stores gallery images in an Aliyun OSS bucket.
type OSSStorage struct {
	bucket   *oss.Bucket
	endpoint string
}

func NewOSSStorage(endpoint, bucketName, accessKeyID, accessKeySecret string) (*OSSStorage, error) {
	client, err := oss.New(endpoint, accessKeyID, accessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", bucketName, err)
	}
	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return &OSSStorage{bucket: bucket, endpoint: host}, nil
}

func (s *OSSStorage) Store(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if err := s.bucket.PutObject(key, body, oss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket.BucketName, s.endpoint, key), nil
}

func (s *OSSStorage) Delete(ctx context.Context, blobURL string) error {
	u, err := url.Parse(blobURL)
	if err != nil {
		return fmt.Errorf("parse blob url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if err := s.bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("oss delete %s: %w", key, err)
	}
	return nil
}
