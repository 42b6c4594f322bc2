package regions

import (
	"context"
	"fmt"
	"sync"

	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// longNames are the display names the Pricing API uses for its location
// attribute.
var longNames = map[string]string{
	"us-east-1":      "US East (N. Virginia)",
	"us-east-2":      "US East (Ohio)",
	"us-west-1":      "US West (N. California)",
	"us-west-2":      "US West (Oregon)",
	"ca-central-1":   "Canada (Central)",
	"eu-west-1":      "EU (Ireland)",
	"eu-central-1":   "EU (Frankfurt)",
	"eu-west-2":      "EU (London)",
	"eu-west-3":      "EU (Paris)",
	"eu-north-1":     "EU (Stockholm)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
	"ap-northeast-2": "Asia Pacific (Seoul)",
	"ap-northeast-3": "Asia Pacific (Osaka)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-southeast-2": "Asia Pacific (Sydney)",
	"ap-south-1":     "Asia Pacific (Mumbai)",
	"sa-east-1":      "South America (São Paulo)",
}

const longNameParameter = "/aws/service/global-infrastructure/regions/%s/longName"

type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NamerInterface resolves a region code to its human readable name.
type NamerInterface interface {
	LongName(ctx context.Context, code string) string
}

// Namer resolves region long names from a built-in table, falling back to
// the SSM global-infrastructure public parameters. Lookups never fail: an
// unresolvable code is returned unchanged.
type Namer struct {
	Session   session.Provider
	NewClient func(cfg aws.Config) SSMAPI

	mu    sync.Mutex
	cache map[string]string
}

var _ NamerInterface = (*Namer)(nil)

func NewNamer(p session.Provider) *Namer {
	return &Namer{
		Session: p,
		NewClient: func(cfg aws.Config) SSMAPI {
			return ssm.NewFromConfig(cfg)
		},
	}
}

func (n *Namer) LongName(ctx context.Context, code string) string {
	if name, ok := longNames[code]; ok {
		return name
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if name, ok := n.cache[code]; ok {
		return name
	}

	name := n.lookup(ctx, code)
	if n.cache == nil {
		n.cache = make(map[string]string)
	}
	n.cache[code] = name
	return name
}

func (n *Namer) lookup(ctx context.Context, code string) string {
	cfg, err := n.Session.ForRegion(ctx, "")
	if err != nil {
		log.Debug().Err(err).Str("region", code).Msg("no session for region name lookup")
		return code
	}

	out, err := n.NewClient(cfg).GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(fmt.Sprintf(longNameParameter, code)),
	})
	if err != nil || out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		log.Debug().Err(err).Str("region", code).Msg("region long name not resolved")
		return code
	}
	return aws.ToString(out.Parameter.Value)
}
