package ec2

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

const ServiceName = "EC2"

type EC2Service struct {
	Session    session.Provider
	Regions    regions.ListerInterface
	Namer      regions.NamerInterface
	Pricer     pricing.PricerInterface
	NewAdapter AdapterFactory
	Now        func() time.Time
}

var _ EC2ServiceInterface = (*EC2Service)(nil)

func NewEC2Service(p session.Provider, opts ...func(*EC2Service)) *EC2Service {
	service := &EC2Service{
		Session:    p,
		Regions:    regions.NewLister(p),
		Namer:      regions.NewNamer(p),
		Pricer:     pricing.NewPricer(p),
		NewAdapter: NewAdapter,
		Now:        time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *EC2Service) adapter(ctx context.Context, region string) (EC2AdapterInterface, error) {
	cfg, err := s.Session.ForRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	return s.NewAdapter(cfg), nil
}

// ListInstances gathers instances from every region and applies q.Filter.
func (s *EC2Service) ListInstances(ctx context.Context, q InstanceQuery) ([]models.EC2Instance, error) {
	names, err := s.Regions.List(ctx)
	if err != nil {
		return nil, err
	}

	instances, err := regions.Collect(ctx, regions.OptionsFrom(s.Session), names, func(ctx context.Context, region string) ([]models.EC2Instance, error) {
		adapter, err := s.adapter(ctx, region)
		if err != nil {
			return nil, err
		}
		return adapter.ListInstances(ctx, q.States...)
	})
	if err != nil {
		return nil, err
	}

	return q.Filter.Apply(instances)
}

func (s *EC2Service) Instances(ctx context.Context, q InstanceQuery) (*report.Table, error) {
	instances, err := s.ListInstances(ctx, q)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "Region", "Name", "Instance ID", "Type", "State", "Private IP", "Public IP", "Launched")
	table.Caption = fmt.Sprintf("%s: %d instances", ServiceName, len(instances))
	for _, inst := range instances {
		table.AddRow(
			inst.Region,
			inst.Name,
			inst.InstanceID,
			inst.InstanceType,
			inst.State,
			inst.PrivateIPAddress,
			inst.PublicIPAddress,
			formatTime(inst.LaunchTime),
		)
	}
	return table, nil
}

func (s *EC2Service) Volumes(ctx context.Context) (*report.Table, error) {
	names, err := s.Regions.List(ctx)
	if err != nil {
		return nil, err
	}

	volumes, err := regions.Collect(ctx, regions.OptionsFrom(s.Session), names, func(ctx context.Context, region string) ([]models.EBSVolume, error) {
		adapter, err := s.adapter(ctx, region)
		if err != nil {
			return nil, err
		}
		return adapter.ListVolumes(ctx)
	})
	if err != nil {
		return nil, err
	}

	var totalGiB int64
	table := report.NewTable("EBS", "Region", "Volume ID", "State", "Size (GiB)", "Type", "Created", "Attached To")
	table.Caption = fmt.Sprintf("EBS: %d volumes", len(volumes))
	for _, v := range volumes {
		totalGiB += int64(v.SizeGiB)
		attached := strings.Join(v.AttachedTo, ", ")
		if attached == "" {
			attached = "-"
		}
		table.AddRow(
			v.Region,
			v.VolumeID,
			v.State,
			fmt.Sprintf("%d", v.SizeGiB),
			v.VolumeType,
			formatTime(v.CreateTime),
			attached,
		)
	}
	table.AddSummary("Total provisioned size: %d GiB", totalGiB)
	return table, nil
}

// PricedInstance is a running instance with its price and derived cost.
type PricedInstance struct {
	Instance models.EC2Instance
	Price    models.Price
	Estimate cost.Estimate
}

// PricedInstances lists running instances and prices each one. A failed
// price lookup is logged and counted as zero so the instance still shows.
func (s *EC2Service) PricedInstances(ctx context.Context, q InstanceQuery) ([]PricedInstance, error) {
	q.States = []string{RunningState}
	instances, err := s.ListInstances(ctx, q)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	priced := make([]PricedInstance, 0, len(instances))
	for _, inst := range instances {
		price, err := s.Pricer.EC2Price(ctx, inst.InstanceType, inst.Platform, inst.Region)
		if err != nil {
			log.Warn().Err(err).Str("instance", inst.InstanceID).Msg("price lookup failed")
			price = models.Price{}
		}
		priced = append(priced, PricedInstance{
			Instance: inst,
			Price:    price,
			Estimate: cost.Estimated(price.USDPerHour, inst.LaunchTime, now),
		})
	}
	return priced, nil
}

// CostReport is the running-instance table used for the emailed report.
func (s *EC2Service) CostReport(ctx context.Context, q InstanceQuery) (*report.Table, error) {
	priced, err := s.PricedInstances(ctx, q)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName,
		"Region",
		"Name",
		"Type",
		"State",
		"Public IP",
		"Life Time",
		"Owner",
		"Expiry Date",
		"Monthly Price (USD)",
		"Total Price (USD)",
		"Price Date",
	)

	var monthly, total float64
	for _, p := range priced {
		inst := p.Instance
		table.AddRow(
			strings.ToUpper(inst.Region),
			inst.Name,
			strings.ToUpper(inst.InstanceType),
			strings.ToUpper(inst.State),
			inst.PublicIPAddress,
			cost.FormatHours(p.Estimate.LifeHours),
			TagValue(inst.Tags, TagOwner),
			TagValue(inst.Tags, TagExpiry),
			cost.FormatUSD(p.Estimate.Monthly),
			cost.FormatUSD(p.Estimate.Total),
			pricing.FormatDate(p.Price),
		)
		monthly += p.Estimate.Monthly
		total += p.Estimate.Total
	}

	table.Caption = fmt.Sprintf("%s: %d running instances", ServiceName, table.NumRows())
	addTotals(table, monthly, total)
	return table, nil
}

// PriceReport lists running instances by location with their hourly rate.
func (s *EC2Service) PriceReport(ctx context.Context, q InstanceQuery) (*report.Table, error) {
	priced, err := s.PricedInstances(ctx, q)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName,
		"Location",
		"Name",
		"Type",
		"Launch Time",
		"Price (USD/hour)",
		"Price Date",
		"Total Price (USD)",
		"Monthly Price (USD)",
	)

	var monthly, total float64
	for _, p := range priced {
		inst := p.Instance
		table.AddRow(
			s.Namer.LongName(ctx, inst.Region),
			inst.Name,
			strings.ToLower(inst.InstanceType),
			formatTime(inst.LaunchTime),
			fmt.Sprintf("%.4f", p.Price.USDPerHour),
			pricing.FormatDate(p.Price),
			cost.FormatUSD(p.Estimate.Total),
			cost.FormatUSD(p.Estimate.Monthly),
		)
		monthly += p.Estimate.Monthly
		total += p.Estimate.Total
	}

	table.Caption = fmt.Sprintf("%s: %d running instances", ServiceName, table.NumRows())
	addTotals(table, monthly, total)
	return table, nil
}

func addTotals(table *report.Table, monthly, total float64) {
	table.AddSummary("** Total monthly price for all instances in USD: %s", cost.FormatUSD(monthly))
	table.AddSummary("** Total accumulated price for all instances in USD: %s", cost.FormatUSD(total))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
