package ecr

import (
	"context"
	"fmt"
	"time"

	"github.com/BerryBytes/awsaudit/internal/regions"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/dustin/go-humanize"
)

type ECRService struct {
	Session    session.Provider
	Regions    regions.ListerInterface
	NewAdapter AdapterFactory
}

var _ ECRServiceInterface = (*ECRService)(nil)

func NewECRService(p session.Provider, opts ...func(*ECRService)) *ECRService {
	service := &ECRService{
		Session:    p,
		Regions:    regions.NewLister(p),
		NewAdapter: NewAdapter,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *ECRService) Repositories(ctx context.Context) (*report.Table, error) {
	names, err := s.Regions.List(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := regions.Collect(ctx, regions.OptionsFrom(s.Session), names, func(ctx context.Context, region string) ([]models.ECRRepository, error) {
		cfg, err := s.Session.ForRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		return s.NewAdapter(cfg).ListRepositories(ctx)
	})
	if err != nil {
		return nil, err
	}

	var total int64
	table := report.NewTable("ECR", "Region", "Repository", "URI", "Images", "Size", "Created")
	table.Caption = fmt.Sprintf("ECR: %d repositories", len(repos))
	for _, r := range repos {
		total += r.SizeBytes
		created := "-"
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.DateTime)
		}
		table.AddRow(r.Region, r.Name, r.URI, fmt.Sprintf("%d", r.ImageCount), humanize.IBytes(uint64(r.SizeBytes)), created)
	}
	table.AddSummary("Total image storage: %s", humanize.IBytes(uint64(total)))
	return table, nil
}
