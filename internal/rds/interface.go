package rds

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

type RDSServiceInterface interface {
	Instances(ctx context.Context) (*report.Table, error)
	Clusters(ctx context.Context) (*report.Table, error)
	Snapshots(ctx context.Context) (*report.Table, error)
	CostReport(ctx context.Context) (*report.Table, error)
}

type RDSAPI interface {
	DescribeDBInstances(ctx context.Context, input *rds.DescribeDBInstancesInput, opts ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
	DescribeDBClusters(ctx context.Context, input *rds.DescribeDBClustersInput, opts ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error)
	DescribeDBSnapshots(ctx context.Context, input *rds.DescribeDBSnapshotsInput, opts ...func(*rds.Options)) (*rds.DescribeDBSnapshotsOutput, error)
}

type RDSAdapterInterface interface {
	ListDBInstances(ctx context.Context) ([]models.RDSInstance, error)
	ListDBClusters(ctx context.Context) ([]models.RDSCluster, error)
	ListDBSnapshots(ctx context.Context) ([]models.RDSSnapshot, error)
}

type AdapterFactory func(cfg aws.Config) RDSAdapterInterface
