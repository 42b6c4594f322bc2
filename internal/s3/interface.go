package s3

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetBucketAcl(ctx context.Context, params *s3.GetBucketAclInput, optFns ...func(*s3.Options)) (*s3.GetBucketAclOutput, error)
}

type S3AdapterInterface interface {
	ListBuckets(ctx context.Context) ([]models.S3Bucket, error)
	ListObjects(ctx context.Context, bucket string) ([]models.S3Object, error)
	BucketACL(ctx context.Context, bucket string) ([]models.S3Grant, error)
}

type AdapterFactory func(cfg aws.Config) S3AdapterInterface

type S3ServiceInterface interface {
	Buckets(ctx context.Context) (*report.Table, error)
	Objects(ctx context.Context) (*report.Table, error)
	ACLs(ctx context.Context) (*report.Table, error)
}
