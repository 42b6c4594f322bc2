package ec2

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/filter"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
}

type EC2AdapterInterface interface {
	ListInstances(ctx context.Context, states ...string) ([]models.EC2Instance, error)
	ListVolumes(ctx context.Context) ([]models.EBSVolume, error)
	ListSecurityGroups(ctx context.Context) ([]models.SecurityGroup, error)
}

// AdapterFactory builds a regional adapter from a region-pinned config.
type AdapterFactory func(cfg aws.Config) EC2AdapterInterface

// InstanceQuery narrows an instance listing. Empty States means every state.
type InstanceQuery struct {
	States []string
	Filter *filter.InstanceFilter
}

type EC2ServiceInterface interface {
	Instances(ctx context.Context, q InstanceQuery) (*report.Table, error)
	Volumes(ctx context.Context) (*report.Table, error)
	CostReport(ctx context.Context, q InstanceQuery) (*report.Table, error)
	PriceReport(ctx context.Context, q InstanceQuery) (*report.Table, error)
}
