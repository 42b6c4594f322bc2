package s3

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BerryBytes/awsaudit/internal/regions"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const ServiceName = "S3"

type S3Service struct {
	Session    session.Provider
	NewAdapter AdapterFactory
}

var _ S3ServiceInterface = (*S3Service)(nil)

func NewS3Service(p session.Provider, opts ...func(*S3Service)) *S3Service {
	service := &S3Service{
		Session:    p,
		NewAdapter: NewAdapter,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// bucketContents is a bucket with whatever per-bucket data a report needs.
type bucketContents struct {
	Bucket  models.S3Bucket
	Objects []models.S3Object
	Grants  []models.S3Grant
}

func (b bucketContents) totalSize() int64 {
	var total int64
	for _, obj := range b.Objects {
		total += obj.Size
	}
	return total
}

// ListBuckets lists buckets once through the home region. When regions are
// configured only buckets located in them are kept.
func (s *S3Service) ListBuckets(ctx context.Context) ([]models.S3Bucket, error) {
	cfg, err := s.Session.ForRegion(ctx, "")
	if err != nil {
		return nil, err
	}

	buckets, err := s.NewAdapter(cfg).ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	settings := s.Session.Settings()
	if settings == nil || len(settings.Regions) == 0 {
		return buckets, nil
	}

	kept := buckets[:0]
	for _, b := range buckets {
		if slices.Contains(settings.Regions, b.Region) {
			kept = append(kept, b)
		}
	}
	return kept, nil
}

// visit runs fn for every bucket with an adapter pinned to the bucket's
// region, bounded and ordered like the region fan-out.
func (s *S3Service) visit(ctx context.Context, fn func(ctx context.Context, adapter S3AdapterInterface, c *bucketContents) error) ([]bucketContents, error) {
	buckets, err := s.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	opts := regions.OptionsFrom(s.Session)
	results := make([]bucketContents, len(buckets))
	skipped := make([]bool, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, bucket := range buckets {
		g.Go(func() error {
			results[i].Bucket = bucket
			cfg, err := s.Session.ForRegion(gctx, bucket.Region)
			if err == nil {
				err = fn(gctx, s.NewAdapter(cfg), &results[i])
			}
			if err != nil {
				if opts.KeepGoing && ctx.Err() == nil {
					log.Warn().Err(err).Str("bucket", bucket.Name).Msg("skipping bucket")
					skipped[i] = true
					return nil
				}
				return fmt.Errorf("bucket %s: %w", bucket.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]bucketContents, 0, len(results))
	for i, r := range results {
		if !skipped[i] {
			out = append(out, r)
		}
	}
	return out, nil
}

func listObjects(ctx context.Context, adapter S3AdapterInterface, c *bucketContents) error {
	objects, err := adapter.ListObjects(ctx, c.Bucket.Name)
	c.Objects = objects
	return err
}

// Buckets summarises each bucket's object count and total size.
func (s *S3Service) Buckets(ctx context.Context) (*report.Table, error) {
	contents, err := s.visit(ctx, listObjects)
	if err != nil {
		return nil, err
	}

	var total int64
	table := report.NewTable(ServiceName, "Region", "Bucket", "Created", "Objects", "Total Size")
	table.Caption = fmt.Sprintf("%s: %d buckets", ServiceName, len(contents))
	for _, c := range contents {
		size := c.totalSize()
		total += size
		table.AddRow(
			c.Bucket.Region,
			c.Bucket.Name,
			formatTime(c.Bucket.CreationDate),
			fmt.Sprintf("%d", len(c.Objects)),
			humanize.IBytes(uint64(size)),
		)
	}
	table.AddSummary("Total size: %s", humanize.IBytes(uint64(total)))
	return table, nil
}

// Objects lists every object, with one total line per bucket.
func (s *S3Service) Objects(ctx context.Context) (*report.Table, error) {
	contents, err := s.visit(ctx, listObjects)
	if err != nil {
		return nil, err
	}

	var count int
	table := report.NewTable(ServiceName, "Region", "Bucket", "Key", "Last Modified", "Size")
	for _, c := range contents {
		for _, obj := range c.Objects {
			table.AddRow(
				c.Bucket.Region,
				c.Bucket.Name,
				obj.Key,
				formatTime(obj.LastModified),
				humanize.IBytes(uint64(obj.Size)),
			)
		}
		count += len(c.Objects)
		table.AddSummary("%s total size: %s", c.Bucket.Name, humanize.IBytes(uint64(c.totalSize())))
	}
	table.Caption = fmt.Sprintf("%s: %d objects in %d buckets", ServiceName, count, len(contents))
	return table, nil
}

// ACLs renders each bucket's grants as grantee(permission).
func (s *S3Service) ACLs(ctx context.Context) (*report.Table, error) {
	contents, err := s.visit(ctx, func(ctx context.Context, adapter S3AdapterInterface, c *bucketContents) error {
		grants, err := adapter.BucketACL(ctx, c.Bucket.Name)
		c.Grants = grants
		return err
	})
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "Region", "Bucket", "Grants")
	table.Caption = fmt.Sprintf("%s: %d bucket ACLs", ServiceName, len(contents))
	for _, c := range contents {
		grants := make([]string, 0, len(c.Grants))
		for _, g := range c.Grants {
			grants = append(grants, fmt.Sprintf("%s(%s)", g.Grantee, g.Permission))
		}
		table.AddRow(c.Bucket.Region, c.Bucket.Name, strings.Join(grants, ", "))
	}
	return table, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateTime)
}
