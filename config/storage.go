package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	minioClient *minio.Client
	minioBucket string
	minioOnce   sync.Once
)

// ConnectMinIO initializes a singleton MinIO client for patient document
// storage. Returns the client (or nil) and the bucket name; uploads are
// disabled when the client is nil.
func ConnectMinIO() (*minio.Client, string, error) {
	var err error
	minioOnce.Do(func() {
		cfg := LoadConfig()
		if cfg != nil && cfg.AppEnv == "test" {
			// Skip connecting MinIO in test environment.
			return
		}

		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			endpoint = "localhost:9000"
		}
		accessKey := os.Getenv("MINIO_ACCESS_KEY")
		secretKey := os.Getenv("MINIO_SECRET_KEY")
		useSSL := os.Getenv("MINIO_USE_SSL") == "true"

		bucket := os.Getenv("MINIO_BUCKET")
		if bucket == "" {
			bucket = "patient-files"
		}

		var client *minio.Client
		client, err = minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: useSSL,
		})
		if err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		exists, existsErr := client.BucketExists(ctx, bucket)
		if existsErr != nil {
			err = existsErr
			return
		}
		if !exists {
			if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return
			}
		}

		minioClient = client
		minioBucket = bucket
		log.Printf("Connected to MinIO at %s (bucket %s)", endpoint, bucket)
	})
	return minioClient, minioBucket, err
}

// GetMinIOClient returns the initialized MinIO client and bucket (client may be nil).
func GetMinIOClient() (*minio.Client, string) {
	return minioClient, minioBucket
}
