package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type AvatarUploader interface {
	Upload(ctx context.Context, userID, dataURI string) (string, error)
}

// S3API is the slice of the S3 client the uploader calls.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3AvatarStorage struct {
	client    S3API
	bucket    string
	publicURL string
	Now       func() time.Time
}

func NewS3AvatarStorage(client S3API, bucket, publicURL string) *S3AvatarStorage {
	return &S3AvatarStorage{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/"), Now: time.Now}
}

func NewS3AvatarStorageFromConfig(cfg aws.Config, bucket, publicURL string) *S3AvatarStorage {
	return NewS3AvatarStorage(s3.NewFromConfig(cfg), bucket, publicURL)
}

// DecodeDataURI splits "data:<mime>;base64,<data>" into its content type and bytes.
func DecodeDataURI(dataURI string) (string, []byte, error) {
	meta, data, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return "", nil, errors.New("invalid base64 image")
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return contentType, raw, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}

func (s *S3AvatarStorage) Upload(ctx context.Context, userID, dataURI string) (string, error) {
	contentType, imageData, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profile-pictures/%s-%d%s", userID, s.Now().UnixNano(), extensionFor(contentType))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
