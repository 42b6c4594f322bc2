package ecr

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

type ECRAPI interface {
	DescribeRepositories(ctx context.Context, params *ecr.DescribeRepositoriesInput, optFns ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
	DescribeImages(ctx context.Context, params *ecr.DescribeImagesInput, optFns ...func(*ecr.Options)) (*ecr.DescribeImagesOutput, error)
}

type ECRAdapterInterface interface {
	ListRepositories(ctx context.Context) ([]models.ECRRepository, error)
}

type ECRServiceInterface interface {
	Repositories(ctx context.Context) (*report.Table, error)
}

type AdapterFactory func(cfg aws.Config) ECRAdapterInterface
