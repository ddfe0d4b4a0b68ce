package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/plumehq/plume/config"
)

const (
	// MaxFileSize limits post image uploads to 5 MB
	MaxFileSize      = 5 * 1024 * 1024
	AllowedMimeTypes = "image/jpeg,image/png,image/gif"

	feedImageSize  = 1080
	thumbnailWidth = 161
)

// MediaService handles post image processing and storage
type MediaService interface {
	UploadPostImage(fileHeader *multipart.FileHeader, userID uint) (imageURL string, thumbnailURL string, err error)
}

type mediaService struct {
	Config *config.Config
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(conf *config.Config) MediaService {
	return &mediaService{Config: conf}
}

// ValidateImageFile checks an upload's size and MIME type
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf("file size exceeds limit of %d bytes", MaxFileSize)
	}

	mimeType := file.Header.Get("Content-Type")
	if !isValidMimeType(mimeType) {
		return fmt.Errorf("invalid file type: %s", mimeType)
	}

	return nil
}

func isValidMimeType(mimeType string) bool {
	for _, allowedType := range strings.Split(AllowedMimeTypes, ",") {
		if mimeType == allowedType {
			return true
		}
	}
	return false
}

// UploadPostImage validates the upload, renders a feed-sized image and
// a thumbnail, and stores both on S3.
func (s *mediaService) UploadPostImage(fileHeader *multipart.FileHeader, userID uint) (string, string, error) {
	if err := ValidateImageFile(fileHeader); err != nil {
		return "", "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening media file: %v", err)
		return "", "", fmt.Errorf("error opening media file: %v", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		log.Printf("Error decoding image: %v", err)
		return "", "", fmt.Errorf("error decoding image: %v", err)
	}

	feedImg := imaging.Fill(img, feedImageSize, feedImageSize, imaging.Center, imaging.Lanczos)
	thumbnailImg := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	client, err := s.createS3Client()
	if err != nil {
		return "", "", err
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("posts/%d_%s%s", userID, uuid.New().String(), ext)
	thumbKey := fmt.Sprintf("posts/thumbnails/%d_%s%s", userID, uuid.New().String(), ext)

	imageURL, err := s.uploadJPEGToS3(client, feedImg, key)
	if err != nil {
		return "", "", err
	}
	thumbnailURL, err := s.uploadJPEGToS3(client, thumbnailImg, thumbKey)
	if err != nil {
		return "", "", err
	}

	return imageURL, thumbnailURL, nil
}

func (s *mediaService) createS3Client() (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.Config.AwsRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	return s3.NewFromConfig(cfg), nil
}

func (s *mediaService) uploadJPEGToS3(client *s3.Client, img image.Image, key string) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		log.Printf("Error encoding image to JPEG: %v", err)
		return "", fmt.Errorf("error encoding image to JPEG: %v", err)
	}

	bucketName := s.Config.AwsBucket
	if bucketName == "" {
		return "", fmt.Errorf("S3 bucket name is not configured")
	}

	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	fileURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, s.Config.AwsRegion, key)
	return fileURL, nil
}
