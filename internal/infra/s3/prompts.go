package infra_s3

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/picparty/core/internal/model"
)

// PromptStore resolves prompt-image IDs to presigned GET URLs.
// Objects are keyed <prefix>prompt_<id>.jpg inside a single bucket.
type PromptStore struct {
	client *s3.Client

	prefix     string
	bucketName string
	presignTTL time.Duration
}

func New(bucketName string, client *s3.Client, prefix string, presignTTL time.Duration) (*PromptStore, error) {
	storage := PromptStore{
		bucketName: bucketName,
		client:     client,
		prefix:     prefix,
		presignTTL: presignTTL,
	}

	_, err := storage.client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) {
			switch apiError.(type) {
			case *types.NotFound:
				log.Printf("Bucket %v is available.\n", bucketName)
				err = nil
			default:
				log.Printf("Either you don't have access to bucket %v or another error occurred. "+
					"Here's what happened: %v\n", bucketName, err)
			}
		}
	} else {
		log.Printf("Bucket %v exists and you already own it.", bucketName)
	}

	return &storage, err
}

func (s *PromptStore) buildKey(id model.PromptID) string {
	return fmt.Sprintf("%sprompt_%d.jpg", s.prefix, int(id))
}

// ResolveAsset returns a time-limited URL the display layer can fetch
// the prompt image from.
func (s *PromptStore) ResolveAsset(ctx context.Context, id model.PromptID) (string, error) {
	presignClient := s3.NewPresignClient(s.client)

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.buildKey(id)),
	}, s3.WithPresignExpires(s.presignTTL))

	if err != nil {
		return "", fmt.Errorf("failed to presign prompt %d: %w", int(id), err)
	}

	return req.URL, nil
}
