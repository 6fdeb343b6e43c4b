package aws

import (
	"context"
	stderrors "errors"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

type S3 struct {
	client *s3.Client
}

// BucketExists reports whether the bucket exists and the caller may read it.
func (c *S3) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: awssdk.String(bucket),
	})
	if isBucketNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}

func isBucketNotFound(err error) bool {
	if err == nil {
		return false
	}

	var notFound *s3types.NotFound
	if stderrors.As(err, &notFound) {
		return true
	}

	var noSuchBucket *s3types.NoSuchBucket
	if stderrors.As(err, &noSuchBucket) {
		return true
	}

	return HasErrorCode(err, ErrNotFound, ErrNoSuchBucket)
}
