package ec2

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerryBytes/awsaudit/internal/filter"
	"github.com/BerryBytes/awsaudit/internal/session/sessiontest"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	instances []models.EC2Instance
	volumes   []models.EBSVolume
	groups    []models.SecurityGroup
	err       error
	states    []string
}

func (f *fakeAdapter) ListInstances(_ context.Context, states ...string) ([]models.EC2Instance, error) {
	f.states = states
	return f.instances, f.err
}

func (f *fakeAdapter) ListVolumes(context.Context) ([]models.EBSVolume, error) {
	return f.volumes, f.err
}

func (f *fakeAdapter) ListSecurityGroups(context.Context) ([]models.SecurityGroup, error) {
	return f.groups, f.err
}

type staticRegions []string

func (r staticRegions) List(context.Context) ([]string, error) { return r, nil }

type staticNamer map[string]string

func (n staticNamer) LongName(_ context.Context, code string) string {
	if name, ok := n[code]; ok {
		return name
	}
	return code
}

type MockPricer struct {
	mock.Mock
}

func (m *MockPricer) EC2Price(ctx context.Context, instanceType, platform, region string) (models.Price, error) {
	args := m.Called(ctx, instanceType, platform, region)
	return args.Get(0).(models.Price), args.Error(1)
}

func (m *MockPricer) RDSPrice(ctx context.Context, instanceClass string, multiAZ bool, engine, region string) (models.Price, error) {
	args := m.Called(ctx, instanceClass, multiAZ, engine, region)
	return args.Get(0).(models.Price), args.Error(1)
}

var now = time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

func newTestService(adapters map[string]*fakeAdapter, pricer *MockPricer) *EC2Service {
	regions := make(staticRegions, 0, len(adapters))
	for _, r := range []string{"eu-west-1", "us-east-1"} {
		if _, ok := adapters[r]; ok {
			regions = append(regions, r)
		}
	}

	return NewEC2Service(sessiontest.New(regions...), func(s *EC2Service) {
		s.Regions = regions
		s.Namer = staticNamer{"us-east-1": "US East (N. Virginia)"}
		s.Pricer = pricer
		s.Now = func() time.Time { return now }
		s.NewAdapter = func(cfg aws.Config) EC2AdapterInterface {
			return adapters[cfg.Region]
		}
	})
}

func TestEC2Service_Instances(t *testing.T) {
	adapters := map[string]*fakeAdapter{
		"eu-west-1": {instances: []models.EC2Instance{
			{InstanceID: "i-eu", Name: "api", Region: "eu-west-1", State: "stopped", InstanceType: "t3.small"},
		}},
		"us-east-1": {instances: []models.EC2Instance{
			{InstanceID: "i-us", Name: "web", Region: "us-east-1", State: "running", InstanceType: "t3.micro",
				PublicIPAddress: "1.2.3.4", LaunchTime: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		}},
	}
	service := newTestService(adapters, &MockPricer{})

	table, err := service.Instances(context.Background(), InstanceQuery{States: []string{"running", "stopped"}})
	require.NoError(t, err)

	assert.Equal(t, "EC2: 2 instances", table.Caption)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"eu-west-1", "api", "i-eu", "t3.small", "stopped", "", "", "-"}, table.Rows[0])
	assert.Equal(t, "2024-03-01 00:00:00", table.Rows[1][7])
	assert.Equal(t, []string{"running", "stopped"}, adapters["us-east-1"].states)
}

func TestEC2Service_InstancesFiltered(t *testing.T) {
	adapters := map[string]*fakeAdapter{
		"us-east-1": {instances: []models.EC2Instance{
			{InstanceID: "i-1", Name: "a", Tags: map[string]string{"owner": "ops"}},
			{InstanceID: "i-2", Name: "b", Tags: map[string]string{"owner": "dev"}},
		}},
	}
	service := newTestService(adapters, &MockPricer{})

	f, err := filter.CompileInstanceFilter(`Tags["owner"] == "ops"`)
	require.NoError(t, err)

	table, err := service.Instances(context.Background(), InstanceQuery{Filter: f})
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())
	assert.Equal(t, "i-1", table.Rows[0][2])
}

func TestEC2Service_RegionError(t *testing.T) {
	adapters := map[string]*fakeAdapter{
		"us-east-1": {err: errors.New("access denied")},
	}
	service := newTestService(adapters, &MockPricer{})

	_, err := service.Instances(context.Background(), InstanceQuery{})
	assert.EqualError(t, err, "region us-east-1: access denied")
}

func TestEC2Service_Volumes(t *testing.T) {
	adapters := map[string]*fakeAdapter{
		"us-east-1": {volumes: []models.EBSVolume{
			{VolumeID: "vol-1", Region: "us-east-1", State: "in-use", SizeGiB: 8, VolumeType: "gp3", AttachedTo: []string{"i-1"}},
			{VolumeID: "vol-2", Region: "us-east-1", State: "available", SizeGiB: 100, VolumeType: "gp2"},
		}},
	}
	service := newTestService(adapters, &MockPricer{})

	table, err := service.Volumes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "EBS: 2 volumes", table.Caption)
	assert.Equal(t, []string{"us-east-1", "vol-1", "in-use", "8", "gp3", "-", "i-1"}, table.Rows[0])
	assert.Equal(t, "-", table.Rows[1][6])
	assert.Equal(t, []string{"Total provisioned size: 108 GiB"}, table.Summary)
}

func TestEC2Service_CostReport(t *testing.T) {
	adapters := map[string]*fakeAdapter{
		"us-east-1": {instances: []models.EC2Instance{
			{
				InstanceID:      "i-1",
				Name:            "web",
				Region:          "us-east-1",
				State:           "running",
				InstanceType:    "t3.micro",
				PublicIPAddress: "1.2.3.4",
				LaunchTime:      time.Date(2024, 2, 11, 12, 0, 0, 0, time.UTC),
				Tags:            map[string]string{"owner": "ops"},
			},
			{
				InstanceID:   "i-2",
				Name:         "batch",
				Region:       "us-east-1",
				State:        "running",
				InstanceType: "m5.large",
				LaunchTime:   time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC),
			},
		}},
	}

	pricer := &MockPricer{}
	pricer.On("EC2Price", mock.Anything, "t3.micro", "", "us-east-1").
		Return(models.Price{USDPerHour: 0.01, PublicationDate: "2024-02-01T00:00:00Z", Found: true}, nil)
	pricer.On("EC2Price", mock.Anything, "m5.large", "", "us-east-1").
		Return(models.Price{}, errors.New("throttled"))

	service := newTestService(adapters, pricer)

	table, err := service.CostReport(context.Background(), InstanceQuery{States: []string{"stopped"}})
	require.NoError(t, err)

	assert.Equal(t, []string{RunningState}, adapters["us-east-1"].states)
	assert.Equal(t, "EC2: 2 running instances", table.Caption)
	require.Equal(t, 2, table.NumRows())

	// 29 days since launch, 10.5 days into March.
	assert.Equal(t, []string{
		"US-EAST-1", "web", "T3.MICRO", "RUNNING", "1.2.3.4", "696.00Hrs", "ops", "undefined", "2.52", "6.96", "2024-02-01T00:00:00Z",
	}, table.Rows[0])
	assert.Equal(t, []string{
		"US-EAST-1", "batch", "M5.LARGE", "RUNNING", "", "10.00Hrs", "undefined", "undefined", "0.00", "0.00", "undefined",
	}, table.Rows[1])
	assert.Equal(t, []string{
		"** Total monthly price for all instances in USD: 2.52",
		"** Total accumulated price for all instances in USD: 6.96",
	}, table.Summary)
	pricer.AssertExpectations(t)
}

func TestEC2Service_PriceReport(t *testing.T) {
	adapters := map[string]*fakeAdapter{
		"us-east-1": {instances: []models.EC2Instance{
			{InstanceID: "i-1", Name: "web", Region: "us-east-1", State: "running", InstanceType: "T3.Micro",
				Platform: "windows", LaunchTime: time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC)},
		}},
	}

	pricer := &MockPricer{}
	pricer.On("EC2Price", mock.Anything, "T3.Micro", "windows", "us-east-1").
		Return(models.Price{USDPerHour: 0.5, PublicationDate: "2024-03-01", Found: true}, nil)

	service := newTestService(adapters, pricer)

	table, err := service.PriceReport(context.Background(), InstanceQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())
	assert.Equal(t, []string{
		"US East (N. Virginia)", "web", "t3.micro", "2024-03-11 02:00:00", "0.5000", "2024-03-01", "5.00", "5.00",
	}, table.Rows[0])
	assert.Len(t, table.Summary, 2)
}
