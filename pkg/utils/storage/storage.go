package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	imageutil "portfolio_backend/pkg/utils/image"
	"portfolio_backend/pkg/utils/validation"
)

func getS3Client() (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("R2_ACCESS_KEY"),
			os.Getenv("R2_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", os.Getenv("R2_ACCOUNT_ID")))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return client, nil
}

func cdnBase() string {
	if base := os.Getenv("CDN_BASE_URL"); base != "" {
		return strings.TrimSuffix(base, "/")
	}
	return "https://cdn.sajjadrasool.com"
}

type UploadConfig struct {
	File   *multipart.FileHeader
	Folder string // e.g. "media", "avatars", "covers"
}

type UploadResult struct {
	URL         string
	Filename    string
	ContentType string
	Size        int64
}

// Upload validates the file, re-encodes images at web quality, and puts the
// object into the R2 bucket under folder/uniqueFilename.
func Upload(cfg UploadConfig) (UploadResult, error) {
	if err := validation.ValidateUpload(cfg.File); err != nil {
		return UploadResult{}, err
	}

	ext := filepath.Ext(strings.ToLower(cfg.File.Filename))
	uniqueID := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.New().String())
	uniqueFilename := uniqueID + ext

	folder := slug.Make(cfg.Folder)
	if folder == "" {
		folder = "media"
	}
	objectKey := filepath.Join(folder, uniqueFilename)

	var body *bytes.Reader
	contentType := cfg.File.Header.Get("Content-Type")
	size := cfg.File.Size

	if validation.IsImage(cfg.File) {
		buf, ct, err := imageutil.ProcessImage(cfg.File)
		if err != nil {
			return UploadResult{}, err
		}
		body = bytes.NewReader(buf.Bytes())
		contentType = ct
		size = int64(buf.Len())
	} else {
		src, err := cfg.File.Open()
		if err != nil {
			return UploadResult{}, fmt.Errorf("could not open file: %v", err)
		}
		defer src.Close()

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(src); err != nil {
			return UploadResult{}, fmt.Errorf("could not read file: %v", err)
		}
		body = bytes.NewReader(buf.Bytes())
		size = int64(buf.Len())
	}

	client, err := getS3Client()
	if err != nil {
		return UploadResult{}, err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("R2_BUCKET_NAME")),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	}

	if _, err := client.PutObject(context.TODO(), input); err != nil {
		return UploadResult{}, fmt.Errorf("could not upload file to R2: %v", err)
	}

	return UploadResult{
		URL:         fmt.Sprintf("%s/%s", cdnBase(), objectKey),
		Filename:    uniqueFilename,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// Delete removes the object behind a CDN URL from the bucket.
func Delete(fullURL string) error {
	objectKey := getObjectKeyFromURL(fullURL)

	client, err := getS3Client()
	if err != nil {
		return err
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(os.Getenv("R2_BUCKET_NAME")),
		Key:    aws.String(objectKey),
	}

	if _, err := client.DeleteObject(context.TODO(), input); err != nil {
		return fmt.Errorf("could not delete file from R2: %v", err)
	}

	return nil
}

func getObjectKeyFromURL(url string) string {
	return strings.TrimPrefix(strings.TrimPrefix(url, cdnBase()), "/")
}
