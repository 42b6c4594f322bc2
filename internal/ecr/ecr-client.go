package ecr

import (
	"context"
	"fmt"
	"sort"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

type AwsECRAdapter struct {
	Client ECRAPI
	Region string
}

var _ ECRAdapterInterface = (*AwsECRAdapter)(nil)

func NewECRClient(cfg aws.Config) *AwsECRAdapter {
	return &AwsECRAdapter{
		Client: ecr.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

func NewAdapter(cfg aws.Config) ECRAdapterInterface {
	return NewECRClient(cfg)
}

func (c *AwsECRAdapter) ListRepositories(ctx context.Context) ([]models.ECRRepository, error) {
	var repos []models.ECRRepository

	paginator := ecr.NewDescribeRepositoriesPaginator(c.Client, &ecr.DescribeRepositoriesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing ECR repositories")
		}

		for _, r := range page.Repositories {
			repo := models.ECRRepository{
				Name:      aws.ToString(r.RepositoryName),
				Region:    c.Region,
				URI:       aws.ToString(r.RepositoryUri),
				CreatedAt: aws.ToTime(r.CreatedAt),
			}
			if err := c.countImages(ctx, &repo); err != nil {
				return nil, err
			}
			repos = append(repos, repo)
		}
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})

	return repos, nil
}

func (c *AwsECRAdapter) countImages(ctx context.Context, repo *models.ECRRepository) error {
	paginator := ecr.NewDescribeImagesPaginator(c.Client, &ecr.DescribeImagesInput{
		RepositoryName: aws.String(repo.Name),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return awserr.Wrap(err, fmt.Sprintf("describing images in %s", repo.Name))
		}
		for _, img := range page.ImageDetails {
			repo.ImageCount++
			repo.SizeBytes += aws.ToInt64(img.ImageSizeInBytes)
		}
	}
	return nil
}
