package eks

import (
	"context"
	"fmt"
	"time"

	"github.com/BerryBytes/awsaudit/internal/regions"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/BerryBytes/awsaudit/models"
)

type EKSService struct {
	Session    session.Provider
	Regions    regions.ListerInterface
	NewAdapter AdapterFactory
}

var _ EKSServiceInterface = (*EKSService)(nil)

func NewEKSService(p session.Provider, opts ...func(*EKSService)) *EKSService {
	service := &EKSService{
		Session:    p,
		Regions:    regions.NewLister(p),
		NewAdapter: NewAdapter,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *EKSService) Clusters(ctx context.Context) (*report.Table, error) {
	names, err := s.Regions.List(ctx)
	if err != nil {
		return nil, err
	}

	clusters, err := regions.Collect(ctx, regions.OptionsFrom(s.Session), names, func(ctx context.Context, region string) ([]models.EKSCluster, error) {
		cfg, err := s.Session.ForRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		return s.NewAdapter(cfg).ListEKSClusters(ctx)
	})
	if err != nil {
		return nil, err
	}

	table := report.NewTable("EKS", "Region", "Cluster", "Version", "Status", "Endpoint", "Created")
	table.Caption = fmt.Sprintf("EKS: %d clusters", len(clusters))
	for _, c := range clusters {
		created := "-"
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.UTC().Format(time.DateTime)
		}
		table.AddRow(c.Region, c.Name, c.Version, c.Status, c.Endpoint, created)
	}
	return table, nil
}
