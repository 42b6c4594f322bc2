// Package sessiontest provides a fixed session.Provider for tests.
package sessiontest

import (
	"context"

	appconfig "github.com/BerryBytes/awsaudit/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
)

type Provider struct {
	Values *appconfig.Config
	Err    error
}

// New returns a provider with the given regions and otherwise default
// settings.
func New(regions ...string) *Provider {
	return &Provider{Values: &appconfig.Config{
		AWS:         appconfig.AWSConfig{Region: "us-east-1"},
		Regions:     regions,
		Concurrency: 2,
		Pricing:     appconfig.PricingConfig{Region: "us-east-1"},
		Email:       appconfig.EmailConfig{Region: "us-east-1"},
		Output:      appconfig.OutputConfig{Format: "table"},
		Logging:     appconfig.LoggingConfig{Level: "info", Format: "console"},
	}}
}

func (p *Provider) Settings() *appconfig.Config { return p.Values }

func (p *Provider) ForRegion(_ context.Context, region string) (aws.Config, error) {
	if p.Err != nil {
		return aws.Config{}, p.Err
	}
	if region == "" {
		region = p.Values.AWS.Region
	}
	return aws.Config{Region: region}, nil
}
