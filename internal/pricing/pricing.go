package pricing

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/rs/zerolog/log"
)

const (
	ServiceCodeEC2 = "AmazonEC2"
	ServiceCodeRDS = "AmazonRDS"

	UndefinedDate = "undefined"
	maxResults    = 100
)

type PricingAPI interface {
	GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

// PricerInterface looks up on-demand hourly prices.
type PricerInterface interface {
	EC2Price(ctx context.Context, instanceType, platform, region string) (models.Price, error)
	RDSPrice(ctx context.Context, instanceClass string, multiAZ bool, engine, region string) (models.Price, error)
}

// Pricer queries the Pricing API and memoises each filter set for its
// lifetime. It is safe for concurrent use.
type Pricer struct {
	Session   session.Provider
	NewClient func(cfg aws.Config) PricingAPI

	mu     sync.Mutex
	client PricingAPI
	cache  map[string]models.Price
}

var _ PricerInterface = (*Pricer)(nil)

func NewPricer(p session.Provider) *Pricer {
	return &Pricer{
		Session: p,
		NewClient: func(cfg aws.Config) PricingAPI {
			return pricing.NewFromConfig(cfg)
		},
	}
}

func (p *Pricer) EC2Price(ctx context.Context, instanceType, platform, region string) (models.Price, error) {
	return p.lookup(ctx, ServiceCodeEC2, EC2Filters(instanceType, platform, region))
}

func (p *Pricer) RDSPrice(ctx context.Context, instanceClass string, multiAZ bool, engine, region string) (models.Price, error) {
	return p.lookup(ctx, ServiceCodeRDS, RDSFilters(instanceClass, multiAZ, engine, region))
}

// lookup holds the lock for the whole call so concurrent regions asking for
// the same product share one request.
func (p *Pricer) lookup(ctx context.Context, serviceCode string, filters []types.Filter) (models.Price, error) {
	key := cacheKey(serviceCode, filters)

	p.mu.Lock()
	defer p.mu.Unlock()

	if price, ok := p.cache[key]; ok {
		return price, nil
	}

	api, err := p.api(ctx)
	if err != nil {
		return models.Price{}, err
	}

	output, err := api.GetProducts(ctx, &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     filters,
		MaxResults:  aws.Int32(maxResults),
	})
	if err != nil {
		return models.Price{}, awserr.Wrap(err, "getting "+serviceCode+" products")
	}

	price := models.Price{PublicationDate: UndefinedDate}
	for _, doc := range output.PriceList {
		if parsed, ok := ParsePriceDocument(doc); ok {
			price = parsed
			break
		}
	}
	log.Debug().
		Str("key", key).
		Int("documents", len(output.PriceList)).
		Float64("usd_per_hour", price.USDPerHour).
		Msg("resolved on-demand price")

	if p.cache == nil {
		p.cache = make(map[string]models.Price)
	}
	p.cache[key] = price

	return price, nil
}

// api must be called with p.mu held.
func (p *Pricer) api(ctx context.Context) (PricingAPI, error) {
	if p.client != nil {
		return p.client, nil
	}

	region := ""
	if settings := p.Session.Settings(); settings != nil {
		region = settings.Pricing.Region
	}
	cfg, err := p.Session.ForRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	p.client = p.NewClient(cfg)
	return p.client, nil
}

func cacheKey(serviceCode string, filters []types.Filter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, aws.ToString(f.Field)+"="+aws.ToString(f.Value))
	}
	sort.Strings(parts)
	return serviceCode + "|" + strings.Join(parts, ",")
}

func termMatch(field, value string) types.Filter {
	return types.Filter{
		Type:  types.FilterTypeTermMatch,
		Field: aws.String(field),
		Value: aws.String(value),
	}
}

// OperatingSystem maps an EC2 platform value to the Pricing API attribute.
func OperatingSystem(platform string) string {
	if strings.EqualFold(platform, "windows") {
		return "Windows"
	}
	return "Linux"
}

func EC2Filters(instanceType, platform, region string) []types.Filter {
	return []types.Filter{
		termMatch("termType", "OnDemand"),
		termMatch("operatingSystem", OperatingSystem(platform)),
		termMatch("instanceType", instanceType),
		termMatch("regionCode", region),
		termMatch("tenancy", "Shared"),
		termMatch("preInstalledSw", "NA"),
		termMatch("capacitystatus", "Used"),
	}
}

func DeploymentOption(multiAZ bool) string {
	if multiAZ {
		return "Multi-AZ"
	}
	return "Single-AZ"
}

// DatabaseEngine maps an RDS engine identifier to the Pricing API
// databaseEngine attribute.
func DatabaseEngine(engine string) string {
	e := strings.ToLower(engine)
	switch {
	case e == "mysql":
		return "MySQL"
	case e == "postgres":
		return "PostgreSQL"
	case e == "mariadb":
		return "MariaDB"
	case e == "aurora-mysql" || e == "aurora":
		return "Aurora MySQL"
	case e == "aurora-postgresql":
		return "Aurora PostgreSQL"
	case strings.HasPrefix(e, "oracle"):
		return "Oracle"
	case strings.HasPrefix(e, "sqlserver"):
		return "SQL Server"
	default:
		return "Any"
	}
}

func RDSFilters(instanceClass string, multiAZ bool, engine, region string) []types.Filter {
	return []types.Filter{
		termMatch("termType", "OnDemand"),
		termMatch("instanceType", instanceClass),
		termMatch("deploymentOption", DeploymentOption(multiAZ)),
		termMatch("databaseEngine", DatabaseEngine(engine)),
		termMatch("regionCode", region),
	}
}

// FormatDate renders a price's publication date, or "undefined".
func FormatDate(p models.Price) string {
	if !p.Found || p.PublicationDate == "" {
		return UndefinedDate
	}
	return p.PublicationDate
}
