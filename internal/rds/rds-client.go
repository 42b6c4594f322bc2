package rds

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
)

type AwsRDSAdapter struct {
	Client RDSAPI
	Region string
}

var _ RDSAdapterInterface = (*AwsRDSAdapter)(nil)

func NewRDSClient(cfg aws.Config) *AwsRDSAdapter {
	return &AwsRDSAdapter{
		Client: rds.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

func NewAdapter(cfg aws.Config) RDSAdapterInterface {
	return NewRDSClient(cfg)
}

func (c *AwsRDSAdapter) ListDBInstances(ctx context.Context) ([]models.RDSInstance, error) {
	var instances []models.RDSInstance

	paginator := rds.NewDescribeDBInstancesPaginator(c.Client, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing RDS instances")
		}
		for _, db := range page.DBInstances {
			instances = append(instances, models.RDSInstance{
				DBInstanceIdentifier: aws.ToString(db.DBInstanceIdentifier),
				DBName:               aws.ToString(db.DBName),
				Region:               c.Region,
				Engine:               aws.ToString(db.Engine),
				InstanceClass:        aws.ToString(db.DBInstanceClass),
				Status:               aws.ToString(db.DBInstanceStatus),
				MultiAZ:              aws.ToBool(db.MultiAZ),
				Endpoint:             instanceEndpoint(db),
				CreateTime:           aws.ToTime(db.InstanceCreateTime),
			})
		}
	}

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].DBInstanceIdentifier < instances[j].DBInstanceIdentifier
	})

	return instances, nil
}

func instanceEndpoint(db types.DBInstance) string {
	if db.Endpoint == nil || db.Endpoint.Address == nil {
		return ""
	}
	port := db.Endpoint.Port
	if port == nil {
		port = aws.Int32(GetDefaultPort(aws.ToString(db.Engine)))
	}
	return fmt.Sprintf("%s:%d", aws.ToString(db.Endpoint.Address), *port)
}

func (c *AwsRDSAdapter) ListDBClusters(ctx context.Context) ([]models.RDSCluster, error) {
	var clusters []models.RDSCluster

	paginator := rds.NewDescribeDBClustersPaginator(c.Client, &rds.DescribeDBClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing RDS clusters")
		}
		for _, cl := range page.DBClusters {
			cluster := models.RDSCluster{
				DBClusterIdentifier: aws.ToString(cl.DBClusterIdentifier),
				Region:              c.Region,
				Engine:              aws.ToString(cl.Engine),
				EngineVersion:       aws.ToString(cl.EngineVersion),
				Status:              aws.ToString(cl.Status),
			}
			if cl.Endpoint != nil {
				port := cl.Port
				if port == nil {
					port = aws.Int32(GetDefaultPort(cluster.Engine))
				}
				cluster.Endpoint = fmt.Sprintf("%s:%d", aws.ToString(cl.Endpoint), *port)
			}
			for _, m := range cl.DBClusterMembers {
				cluster.Members = append(cluster.Members, aws.ToString(m.DBInstanceIdentifier))
			}
			clusters = append(clusters, cluster)
		}
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].DBClusterIdentifier < clusters[j].DBClusterIdentifier
	})

	return clusters, nil
}

func (c *AwsRDSAdapter) ListDBSnapshots(ctx context.Context) ([]models.RDSSnapshot, error) {
	var snapshots []models.RDSSnapshot

	paginator := rds.NewDescribeDBSnapshotsPaginator(c.Client, &rds.DescribeDBSnapshotsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing RDS snapshots")
		}
		for _, s := range page.DBSnapshots {
			snapshots = append(snapshots, models.RDSSnapshot{
				SnapshotIdentifier:   aws.ToString(s.DBSnapshotIdentifier),
				DBInstanceIdentifier: aws.ToString(s.DBInstanceIdentifier),
				Region:               c.Region,
				Engine:               aws.ToString(s.Engine),
				SnapshotType:         aws.ToString(s.SnapshotType),
				Status:               aws.ToString(s.Status),
				CreateTime:           aws.ToTime(s.SnapshotCreateTime),
				AllocatedStorageGiB:  aws.ToInt32(s.AllocatedStorage),
			})
		}
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].CreateTime.After(snapshots[j].CreateTime)
	})

	return snapshots, nil
}

func GetDefaultPort(engine string) int32 {
	switch {
	case strings.Contains(engine, "postgres"):
		return 5432
	case strings.Contains(engine, "mysql"):
		return 3306
	case strings.Contains(engine, "mariadb"):
		return 3306
	case strings.Contains(engine, "sqlserver"):
		return 1433
	case strings.Contains(engine, "oracle"):
		return 1521
	default:
		return 3306
	}
}
