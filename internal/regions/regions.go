package regions

import (
	"context"
	"fmt"
	"sort"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type DescribeRegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// ListerInterface yields the regions a command should visit.
type ListerInterface interface {
	List(ctx context.Context) ([]string, error)
}

type Lister struct {
	Session   session.Provider
	NewClient func(cfg aws.Config) DescribeRegionsAPI
}

var _ ListerInterface = (*Lister)(nil)

func NewLister(p session.Provider) *Lister {
	return &Lister{
		Session: p,
		NewClient: func(cfg aws.Config) DescribeRegionsAPI {
			return ec2.NewFromConfig(cfg)
		},
	}
}

// List returns the configured regions, or every region enabled for the
// account when none are configured. The result is sorted.
func (l *Lister) List(ctx context.Context) ([]string, error) {
	if settings := l.Session.Settings(); settings != nil && len(settings.Regions) > 0 {
		out := append([]string(nil), settings.Regions...)
		sort.Strings(out)
		return out, nil
	}

	cfg, err := l.Session.ForRegion(ctx, "")
	if err != nil {
		return nil, err
	}

	output, err := l.NewClient(cfg).DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, awserr.Wrap(err, "describing regions")
	}

	var names []string
	for _, r := range output.Regions {
		if r.RegionName != nil {
			names = append(names, aws.ToString(r.RegionName))
		}
	}
	sort.Strings(names)

	log.Debug().Strs("regions", names).Msg("resolved enabled regions")
	return names, nil
}

// Options bound the per-region fan-out.
type Options struct {
	Concurrency int
	KeepGoing   bool
}

// OptionsFrom reads fan-out options from the session settings.
func OptionsFrom(p session.Provider) Options {
	opts := Options{Concurrency: 1}
	if settings := p.Settings(); settings != nil {
		if settings.Concurrency > 0 {
			opts.Concurrency = settings.Concurrency
		}
		opts.KeepGoing = settings.KeepGoing
	}
	return opts
}

// Collect runs fn for every region with at most opts.Concurrency calls in
// flight and concatenates the results in region order. With KeepGoing a
// failing region is logged and contributes nothing; otherwise the first
// failure cancels the rest and is returned.
func Collect[T any](ctx context.Context, opts Options, regions []string, fn func(ctx context.Context, region string) ([]T, error)) ([]T, error) {
	results := make([][]T, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, region := range regions {
		g.Go(func() error {
			items, err := fn(gctx, region)
			if err != nil {
				if opts.KeepGoing && ctx.Err() == nil {
					log.Warn().Err(err).Str("region", region).Msg("skipping region")
					return nil
				}
				return fmt.Errorf("region %s: %w", region, err)
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []T
	for _, items := range results {
		out = append(out, items...)
	}
	return out, nil
}
