package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	appconfig "github.com/BerryBytes/awsaudit/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

var ErrNotConfigured = errors.New("session used before configuration was loaded")

// ConfigLoader abstracts config.LoadDefaultConfig.
type ConfigLoader interface {
	LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error)
}

type DefaultConfigLoader struct{}

func (DefaultConfigLoader) LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, opts...)
}

// Provider is what inventory services need from a session.
type Provider interface {
	Settings() *appconfig.Config
	ForRegion(ctx context.Context, region string) (aws.Config, error)
}

// Session lazily loads one aws.Config from the resolved settings and hands
// out per-region copies of it.
type Session struct {
	loader ConfigLoader

	mu       sync.Mutex
	settings *appconfig.Config
	cfg      *aws.Config
}

var _ Provider = (*Session)(nil)

func New(loader ConfigLoader) *Session {
	if loader == nil {
		loader = DefaultConfigLoader{}
	}
	return &Session{loader: loader}
}

// Configure installs settings and drops any previously loaded aws.Config.
func (s *Session) Configure(settings *appconfig.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.cfg = nil
}

func (s *Session) Settings() *appconfig.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// AWSConfig returns the base aws.Config, loading it on first use.
func (s *Session) AWSConfig(ctx context.Context) (aws.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		return aws.Config{}, ErrNotConfigured
	}
	if s.cfg != nil {
		return *s.cfg, nil
	}

	cfg, err := s.loader.LoadDefaultConfig(ctx, LoadOptions(s.settings.AWS)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	s.cfg = &cfg
	return cfg, nil
}

// ForRegion returns a copy of the base config pinned to region. An empty
// region keeps the home region.
func (s *Session) ForRegion(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := s.AWSConfig(ctx)
	if err != nil {
		return aws.Config{}, err
	}
	regional := cfg.Copy()
	if region != "" {
		regional.Region = region
	}
	return regional, nil
}

// LoadOptions translates the aws section of the settings into SDK load
// options.
func LoadOptions(settings appconfig.AWSConfig) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if settings.Region != "" {
		opts = append(opts, config.WithRegion(settings.Region))
	}
	if settings.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(settings.Profile))
	}
	if settings.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, settings.SessionToken),
		))
	}
	return opts
}
