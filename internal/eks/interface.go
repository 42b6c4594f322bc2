package eks

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
)

type EKSServiceInterface interface {
	Clusters(ctx context.Context) (*report.Table, error)
}

type EKSAPI interface {
	ListClusters(ctx context.Context, input *eks.ListClustersInput, opts ...func(*eks.Options)) (*eks.ListClustersOutput, error)
	DescribeCluster(ctx context.Context, input *eks.DescribeClusterInput, opts ...func(*eks.Options)) (*eks.DescribeClusterOutput, error)
}

type EKSAdapterInterface interface {
	ListEKSClusters(ctx context.Context) ([]models.EKSCluster, error)
	GetClusterDetails(ctx context.Context, clusterName string) (*models.EKSCluster, error)
}

type AdapterFactory func(cfg aws.Config) EKSAdapterInterface
