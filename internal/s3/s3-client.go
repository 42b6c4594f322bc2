package s3

import (
	"context"
	"fmt"
	"sort"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const (
	DefaultBucketRegion = "us-east-1"
	legacyEURegion      = "eu-west-1"
	Undefined           = "undefined"
)

type AwsS3Adapter struct {
	Client S3API
	Region string
}

var _ S3AdapterInterface = (*AwsS3Adapter)(nil)

func NewS3Client(cfg aws.Config) *AwsS3Adapter {
	return &AwsS3Adapter{
		Client: s3.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

func NewAdapter(cfg aws.Config) S3AdapterInterface {
	return NewS3Client(cfg)
}

// ListBuckets lists every bucket the caller owns and resolves its region.
func (c *AwsS3Adapter) ListBuckets(ctx context.Context) ([]models.S3Bucket, error) {
	var buckets []models.S3Bucket

	paginator := s3.NewListBucketsPaginator(c.Client, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "listing buckets")
		}
		for _, b := range page.Buckets {
			bucket := models.S3Bucket{
				Name:         aws.ToString(b.Name),
				Region:       aws.ToString(b.BucketRegion),
				CreationDate: aws.ToTime(b.CreationDate),
			}
			if bucket.Region == "" {
				region, err := c.bucketRegion(ctx, bucket.Name)
				if err != nil {
					return nil, err
				}
				bucket.Region = region
			}
			buckets = append(buckets, bucket)
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Region == buckets[j].Region {
			return buckets[i].Name < buckets[j].Name
		}
		return buckets[i].Region < buckets[j].Region
	})

	return buckets, nil
}

func (c *AwsS3Adapter) bucketRegion(ctx context.Context, bucket string) (string, error) {
	out, err := c.Client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(bucket)})
	if err != nil {
		return "", awserr.Wrap(err, fmt.Sprintf("locating bucket %s", bucket))
	}
	return NormalizeLocation(out.LocationConstraint), nil
}

// NormalizeLocation maps a location constraint to a region name. Buckets in
// us-east-1 report an empty constraint and old eu-west-1 buckets report "EU".
func NormalizeLocation(loc types.BucketLocationConstraint) string {
	switch loc {
	case "":
		return DefaultBucketRegion
	case types.BucketLocationConstraintEu:
		return legacyEURegion
	default:
		return string(loc)
	}
}

func (c *AwsS3Adapter) ListObjects(ctx context.Context, bucket string) ([]models.S3Object, error) {
	var objects []models.S3Object

	paginator := s3.NewListObjectsV2Paginator(c.Client, &s3.ListObjectsV2Input{Bucket: aws.String(bucket)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, fmt.Sprintf("listing objects in %s", bucket))
		}
		for _, obj := range page.Contents {
			objects = append(objects, models.S3Object{
				Bucket:       bucket,
				Key:          aws.ToString(obj.Key),
				LastModified: aws.ToTime(obj.LastModified),
				Size:         aws.ToInt64(obj.Size),
			})
		}
	}

	return objects, nil
}

func (c *AwsS3Adapter) BucketACL(ctx context.Context, bucket string) ([]models.S3Grant, error) {
	out, err := c.Client.GetBucketAcl(ctx, &s3.GetBucketAclInput{Bucket: aws.String(bucket)})
	if err != nil {
		return nil, awserr.Wrap(err, fmt.Sprintf("reading ACL of %s", bucket))
	}

	grants := make([]models.S3Grant, 0, len(out.Grants))
	for _, g := range out.Grants {
		grants = append(grants, models.S3Grant{
			Bucket:     bucket,
			Grantee:    GranteeName(g.Grantee),
			Permission: string(g.Permission),
		})
	}
	return grants, nil
}

// GranteeName prefers the display name, then the group URI.
func GranteeName(g *types.Grantee) string {
	if g == nil {
		return Undefined
	}
	if name := aws.ToString(g.DisplayName); name != "" {
		return name
	}
	if uri := aws.ToString(g.URI); uri != "" {
		return uri
	}
	return Undefined
}
