package iam

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
)

const ServiceName = "IAM"

// IAMService reads the account's global IAM entities through the home region.
type IAMService struct {
	Session    session.Provider
	NewAdapter AdapterFactory
}

var _ IAMServiceInterface = (*IAMService)(nil)

func NewIAMService(p session.Provider, opts ...func(*IAMService)) *IAMService {
	service := &IAMService{
		Session:    p,
		NewAdapter: NewAdapter,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *IAMService) adapter(ctx context.Context) (IAMAdapterInterface, error) {
	cfg, err := s.Session.ForRegion(ctx, "")
	if err != nil {
		return nil, err
	}
	return s.NewAdapter(cfg), nil
}

func (s *IAMService) Users(ctx context.Context) (*report.Table, error) {
	adapter, err := s.adapter(ctx)
	if err != nil {
		return nil, err
	}
	users, err := adapter.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "User", "Groups", "Created", "Password Last Used")
	table.Caption = fmt.Sprintf("%s: %d users", ServiceName, len(users))
	for _, u := range users {
		lastUsed := "never"
		if u.PasswordLastUsed != nil {
			lastUsed = formatTime(*u.PasswordLastUsed)
		}
		table.AddRow(u.UserName, joinOrDash(u.Groups), formatTime(u.CreateDate), lastUsed)
	}
	return table, nil
}

func (s *IAMService) Roles(ctx context.Context) (*report.Table, error) {
	adapter, err := s.adapter(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := adapter.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	table := report.NewTable(ServiceName, "Role", "Inline Policies", "Created")
	table.Caption = fmt.Sprintf("%s: %d roles", ServiceName, len(roles))
	for _, r := range roles {
		table.AddRow(r.RoleName, joinOrDash(r.InlinePolicies), formatTime(r.CreateDate))
	}
	return table, nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateTime)
}
