package rds_test

import (
	"context"
	"testing"
	"time"

	"github.com/BerryBytes/awsaudit/internal/rds"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsrds "github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRDSAPI struct {
	mock.Mock
}

func (m *MockRDSAPI) DescribeDBInstances(ctx context.Context, input *awsrds.DescribeDBInstancesInput, opts ...func(*awsrds.Options)) (*awsrds.DescribeDBInstancesOutput, error) {
	args := m.Called(ctx, input, opts)
	out, _ := args.Get(0).(*awsrds.DescribeDBInstancesOutput)
	return out, args.Error(1)
}

func (m *MockRDSAPI) DescribeDBClusters(ctx context.Context, input *awsrds.DescribeDBClustersInput, opts ...func(*awsrds.Options)) (*awsrds.DescribeDBClustersOutput, error) {
	args := m.Called(ctx, input, opts)
	out, _ := args.Get(0).(*awsrds.DescribeDBClustersOutput)
	return out, args.Error(1)
}

func (m *MockRDSAPI) DescribeDBSnapshots(ctx context.Context, input *awsrds.DescribeDBSnapshotsInput, opts ...func(*awsrds.Options)) (*awsrds.DescribeDBSnapshotsOutput, error) {
	args := m.Called(ctx, input, opts)
	out, _ := args.Get(0).(*awsrds.DescribeDBSnapshotsOutput)
	return out, args.Error(1)
}

func TestListDBInstances(t *testing.T) {
	mockAPI := &MockRDSAPI{}
	adapter := &rds.AwsRDSAdapter{Client: mockAPI, Region: "eu-west-1"}

	created := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	mockAPI.On("DescribeDBInstances", mock.Anything, mock.MatchedBy(func(in *awsrds.DescribeDBInstancesInput) bool {
		return in.Marker == nil
	}), mock.Anything).Return(&awsrds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{{
			DBInstanceIdentifier: aws.String("orders"),
			DBName:               aws.String("orders"),
			Engine:               aws.String("postgres"),
			DBInstanceClass:      aws.String("db.t3.medium"),
			DBInstanceStatus:     aws.String("available"),
			MultiAZ:              aws.Bool(true),
			InstanceCreateTime:   aws.Time(created),
			Endpoint:             &types.Endpoint{Address: aws.String("orders.example.com")},
		}},
		Marker: aws.String("next"),
	}, nil).Once()
	mockAPI.On("DescribeDBInstances", mock.Anything, mock.MatchedBy(func(in *awsrds.DescribeDBInstancesInput) bool {
		return aws.ToString(in.Marker) == "next"
	}), mock.Anything).Return(&awsrds.DescribeDBInstancesOutput{
		DBInstances: []types.DBInstance{{
			DBInstanceIdentifier: aws.String("billing"),
			Engine:               aws.String("mysql"),
			Endpoint:             &types.Endpoint{Address: aws.String("billing.example.com"), Port: aws.Int32(3307)},
		}},
	}, nil).Once()

	instances, err := adapter.ListDBInstances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 2)

	assert.Equal(t, "billing", instances[0].DBInstanceIdentifier)
	assert.Equal(t, "billing.example.com:3307", instances[0].Endpoint)
	assert.Equal(t, "orders.example.com:5432", instances[1].Endpoint)
	assert.True(t, instances[1].MultiAZ)
	assert.Equal(t, created, instances[1].CreateTime)
	assert.Equal(t, "eu-west-1", instances[1].Region)
	mockAPI.AssertExpectations(t)
}

func TestListDBInstances_Error(t *testing.T) {
	mockAPI := &MockRDSAPI{}
	adapter := &rds.AwsRDSAdapter{Client: mockAPI}

	mockAPI.On("DescribeDBInstances", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "AuthFailure", Message: "bad"})

	_, err := adapter.ListDBInstances(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AWS authentication failed during describing RDS instances")
}

func TestListDBClusters(t *testing.T) {
	mockAPI := &MockRDSAPI{}
	adapter := &rds.AwsRDSAdapter{Client: mockAPI, Region: "us-east-1"}

	mockAPI.On("DescribeDBClusters", mock.Anything, mock.Anything, mock.Anything).Return(&awsrds.DescribeDBClustersOutput{
		DBClusters: []types.DBCluster{{
			DBClusterIdentifier: aws.String("aurora-main"),
			Engine:              aws.String("aurora-mysql"),
			EngineVersion:       aws.String("8.0"),
			Status:              aws.String("available"),
			Endpoint:            aws.String("aurora.example.com"),
			DBClusterMembers: []types.DBClusterMember{
				{DBInstanceIdentifier: aws.String("aurora-1")},
				{DBInstanceIdentifier: aws.String("aurora-2")},
			},
		}},
	}, nil)

	clusters, err := adapter.ListDBClusters(context.Background())
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, "aurora.example.com:3306", clusters[0].Endpoint)
	assert.Equal(t, []string{"aurora-1", "aurora-2"}, clusters[0].Members)
}

func TestListDBSnapshots_NewestFirst(t *testing.T) {
	mockAPI := &MockRDSAPI{}
	adapter := &rds.AwsRDSAdapter{Client: mockAPI, Region: "us-east-1"}

	mockAPI.On("DescribeDBSnapshots", mock.Anything, mock.Anything, mock.Anything).Return(&awsrds.DescribeDBSnapshotsOutput{
		DBSnapshots: []types.DBSnapshot{
			{DBSnapshotIdentifier: aws.String("old"), SnapshotCreateTime: aws.Time(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
			{DBSnapshotIdentifier: aws.String("new"), SnapshotCreateTime: aws.Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), AllocatedStorage: aws.Int32(20)},
		},
	}, nil)

	snapshots, err := adapter.ListDBSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "new", snapshots[0].SnapshotIdentifier)
	assert.Equal(t, int32(20), snapshots[0].AllocatedStorageGiB)
}

func TestGetDefaultPort(t *testing.T) {
	tests := []struct {
		engine string
		want   int32
	}{
		{"postgres", 5432},
		{"aurora-postgresql", 5432},
		{"mysql", 3306},
		{"mariadb", 3306},
		{"sqlserver-ex", 1433},
		{"oracle-ee", 1521},
		{"unknown", 3306},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			assert.Equal(t, tt.want, rds.GetDefaultPort(tt.engine))
		})
	}
}
