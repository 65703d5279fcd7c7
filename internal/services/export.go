package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

var (
	uploader  *s3manager.Uploader
	useS3     bool
	exportDir string
)

// InitExport initializes snapshot storage: S3 when AWS credentials are
// configured, a local directory otherwise.
func InitExport() error {
	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(
				awsAccessKey,
				awsSecretKey,
				"",
			),
		})
		if err != nil {
			return fmt.Errorf("failed to create AWS session: %v", err)
		}

		uploader = s3manager.NewUploader(sess)
		useS3 = true

		fmt.Println("✅ AWS S3 export storage initialized successfully")
		return nil
	}

	useS3 = false
	exportDir = os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "./exports"
	}

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %v", err)
	}

	fmt.Println("⚠️  AWS S3 not configured. Database exports will be written locally")
	return nil
}

// ExportSnapshot stores a JSON snapshot of the database and returns its
// location (S3 key or local path).
func ExportSnapshot(data []byte) (string, error) {
	name := fmt.Sprintf("snapshots/%s-%s.json",
		time.Now().Format("20060102-150405"), uuid.NewString()[:8])

	if useS3 {
		return uploadSnapshot(name, data)
	}
	return writeSnapshotLocally(name, data)
}

func uploadSnapshot(name string, data []byte) (string, error) {
	bucketName := os.Getenv("AWS_S3_BUCKET")
	if bucketName == "" {
		return "", fmt.Errorf("S3 bucket name not configured")
	}

	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	awsRegion := os.Getenv("AWS_REGION")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, awsRegion, name), nil
}

func writeSnapshotLocally(name string, data []byte) (string, error) {
	path := filepath.Join(exportDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %v", err)
	}
	return path, nil
}

// IsUsingS3 returns true if snapshots go to S3.
func IsUsingS3() bool {
	return useS3
}
