package eks

import (
	"context"
	"fmt"
	"sort"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/rs/zerolog/log"
)

type AwsEKSAdapter struct {
	Client EKSAPI
	Region string
}

var _ EKSAdapterInterface = (*AwsEKSAdapter)(nil)

func NewEKSClient(cfg aws.Config) *AwsEKSAdapter {
	return &AwsEKSAdapter{
		Client: eks.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

func NewAdapter(cfg aws.Config) EKSAdapterInterface {
	return NewEKSClient(cfg)
}

// ListEKSClusters describes every cluster in the region. A cluster that
// disappears between list and describe is skipped.
func (c *AwsEKSAdapter) ListEKSClusters(ctx context.Context) ([]models.EKSCluster, error) {
	var clusters []models.EKSCluster

	paginator := eks.NewListClustersPaginator(c.Client, &eks.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "listing EKS clusters")
		}

		for _, clusterName := range page.Clusters {
			details, err := c.GetClusterDetails(ctx, clusterName)
			if err != nil {
				if awserr.Code(err) == "ResourceNotFoundException" {
					log.Debug().Err(err).Str("cluster", clusterName).Msg("cluster vanished while listing")
					continue
				}
				return nil, err
			}
			clusters = append(clusters, *details)
		}
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Name < clusters[j].Name
	})

	return clusters, nil
}

func (c *AwsEKSAdapter) GetClusterDetails(ctx context.Context, clusterName string) (*models.EKSCluster, error) {
	output, err := c.Client.DescribeCluster(ctx, &eks.DescribeClusterInput{
		Name: aws.String(clusterName),
	})
	if err != nil {
		return nil, awserr.Wrap(err, fmt.Sprintf("describing EKS cluster %s", clusterName))
	}

	cluster := output.Cluster
	if cluster == nil {
		return nil, fmt.Errorf("invalid cluster data for %s", clusterName)
	}

	return &models.EKSCluster{
		Name:      clusterName,
		Region:    c.Region,
		Version:   aws.ToString(cluster.Version),
		Status:    string(cluster.Status),
		Endpoint:  aws.ToString(cluster.Endpoint),
		CreatedAt: aws.ToTime(cluster.CreatedAt),
	}, nil
}
