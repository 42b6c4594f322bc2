package rds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BerryBytes/awsaudit/internal/cost"
	"github.com/BerryBytes/awsaudit/internal/pricing"
	"github.com/BerryBytes/awsaudit/internal/regions"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/rs/zerolog/log"
)

const (
	ServiceName     = "RDS"
	Undefined       = "undefined"
	AvailableStatus = "available"
)

type RDSService struct {
	Session    session.Provider
	Regions    regions.ListerInterface
	Pricer     pricing.PricerInterface
	NewAdapter AdapterFactory
	Now        func() time.Time
}

var _ RDSServiceInterface = (*RDSService)(nil)

func NewRDSService(p session.Provider, opts ...func(*RDSService)) *RDSService {
	service := &RDSService{
		Session:    p,
		Regions:    regions.NewLister(p),
		Pricer:     pricing.NewPricer(p),
		NewAdapter: NewAdapter,
		Now:        time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// collect runs list against every region's adapter.
func collect[T any](ctx context.Context, s *RDSService, list func(RDSAdapterInterface, context.Context) ([]T, error)) ([]T, error) {
	names, err := s.Regions.List(ctx)
	if err != nil {
		return nil, err
	}

	return regions.Collect(ctx, regions.OptionsFrom(s.Session), names, func(ctx context.Context, region string) ([]T, error) {
		cfg, err := s.Session.ForRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		return list(s.NewAdapter(cfg), ctx)
	})
}

func (s *RDSService) ListDBInstances(ctx context.Context) ([]models.RDSInstance, error) {
	return collect(ctx, s, RDSAdapterInterface.ListDBInstances)
}

func (s *RDSService) Instances(ctx context.Context) (*report.Table, error) {
	instances, err := s.ListDBInstances(ctx)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "Region", "DB Identifier", "DB Name", "Engine", "Class", "Status", "Multi-AZ", "Endpoint", "Created")
	table.Caption = fmt.Sprintf("%s: %d instances", ServiceName, len(instances))
	for _, db := range instances {
		table.AddRow(
			db.Region,
			db.DBInstanceIdentifier,
			db.DBName,
			db.Engine,
			db.InstanceClass,
			db.Status,
			fmt.Sprintf("%t", db.MultiAZ),
			db.Endpoint,
			formatTime(db.CreateTime),
		)
	}
	return table, nil
}

func (s *RDSService) Clusters(ctx context.Context) (*report.Table, error) {
	clusters, err := collect(ctx, s, RDSAdapterInterface.ListDBClusters)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "Region", "Cluster", "Engine", "Version", "Status", "Members", "Endpoint")
	table.Caption = fmt.Sprintf("%s: %d clusters", ServiceName, len(clusters))
	for _, cl := range clusters {
		table.AddRow(
			cl.Region,
			cl.DBClusterIdentifier,
			cl.Engine,
			cl.EngineVersion,
			cl.Status,
			strings.Join(cl.Members, ", "),
			cl.Endpoint,
		)
	}
	return table, nil
}

func (s *RDSService) Snapshots(ctx context.Context) (*report.Table, error) {
	snapshots, err := collect(ctx, s, RDSAdapterInterface.ListDBSnapshots)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "Region", "Snapshot", "Instance", "Engine", "Type", "Status", "Created", "Size")
	table.Caption = fmt.Sprintf("%s: %d snapshots", ServiceName, len(snapshots))
	for _, snap := range snapshots {
		table.AddRow(
			snap.Region,
			snap.SnapshotIdentifier,
			snap.DBInstanceIdentifier,
			snap.Engine,
			snap.SnapshotType,
			snap.Status,
			formatTime(snap.CreateTime),
			fmt.Sprintf("%d GiB", snap.AllocatedStorageGiB),
		)
	}
	return table, nil
}

// CostReport prices every available DB instance from its creation time. A
// failed price lookup is logged and counted as zero.
func (s *RDSService) CostReport(ctx context.Context) (*report.Table, error) {
	all, err := s.ListDBInstances(ctx)
	if err != nil {
		return nil, err
	}

	var instances []models.RDSInstance
	for _, db := range all {
		if db.Status == AvailableStatus {
			instances = append(instances, db)
		}
	}

	table := report.NewTable(ServiceName,
		"Region",
		"Name",
		"DB Identifier",
		"DB Type",
		"State",
		"Life Time",
		"Monthly price (USD)",
		"Total price (USD)",
		"Price Date",
	)

	now := s.Now()
	var monthly, total float64
	for _, db := range instances {
		price, err := s.Pricer.RDSPrice(ctx, db.InstanceClass, db.MultiAZ, db.Engine, db.Region)
		if err != nil {
			log.Warn().Err(err).Str("db", db.DBInstanceIdentifier).Msg("price lookup failed")
			price = models.Price{}
		}
		estimate := cost.Estimated(price.USDPerHour, db.CreateTime, now)

		table.AddRow(
			strings.ToUpper(db.Region),
			orUndefined(db.DBName),
			fmt.Sprintf("%s(%s)", db.DBInstanceIdentifier, db.Engine),
			strings.ToUpper(orUndefined(db.InstanceClass)),
			strings.ToUpper(orUndefined(db.Status)),
			lifeTime(db.CreateTime, estimate),
			cost.FormatUSD(estimate.Monthly),
			cost.FormatUSD(estimate.Total),
			pricing.FormatDate(price),
		)
		monthly += estimate.Monthly
		total += estimate.Total
	}

	table.Caption = fmt.Sprintf("%s: %d running instances", ServiceName, table.NumRows())
	table.AddSummary("** Total monthly price for all instances in USD: %s", cost.FormatUSD(monthly))
	table.AddSummary("** Total accumulated price for all instances in USD: %s", cost.FormatUSD(total))
	return table, nil
}

func lifeTime(created time.Time, e cost.Estimate) string {
	if created.IsZero() {
		return Undefined
	}
	return cost.FormatHours(e.LifeHours)
}

func orUndefined(s string) string {
	if s == "" {
		return Undefined
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
