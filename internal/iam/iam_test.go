package iam

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerryBytes/awsaudit/internal/session/sessiontest"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	users []models.IAMUser
	roles []models.IAMRole
	err   error
}

func (f fakeAdapter) ListUsers(context.Context) ([]models.IAMUser, error) { return f.users, f.err }
func (f fakeAdapter) ListRoles(context.Context) ([]models.IAMRole, error) { return f.roles, f.err }

func newTestService(adapter fakeAdapter) (*IAMService, *[]string) {
	var regions []string
	return NewIAMService(sessiontest.New(), func(s *IAMService) {
		s.NewAdapter = func(cfg aws.Config) IAMAdapterInterface {
			regions = append(regions, cfg.Region)
			return adapter
		}
	}), &regions
}

func TestIAMService_Users(t *testing.T) {
	used := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	service, regions := newTestService(fakeAdapter{users: []models.IAMUser{
		{UserName: "alice", Groups: []string{"admins", "devs"}, CreateDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), PasswordLastUsed: &used},
		{UserName: "ci"},
	}})

	table, err := service.Users(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"us-east-1"}, *regions)
	assert.Equal(t, "IAM: 2 users", table.Caption)
	assert.Equal(t, []string{"alice", "admins, devs", "2020-01-01 00:00:00", "2024-02-03 04:05:06"}, table.Rows[0])
	assert.Equal(t, []string{"ci", "-", "-", "never"}, table.Rows[1])
}

func TestIAMService_Roles(t *testing.T) {
	service, _ := newTestService(fakeAdapter{roles: []models.IAMRole{
		{RoleName: "deployer", InlinePolicies: []string{"s3-write"}},
	}})

	table, err := service.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"deployer", "s3-write", "-"}, table.Rows[0])
}

func TestIAMService_Error(t *testing.T) {
	service, _ := newTestService(fakeAdapter{err: errors.New("access denied")})

	_, err := service.Roles(context.Background())
	assert.EqualError(t, err, "access denied")
}
