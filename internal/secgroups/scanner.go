// Package secgroups reports which security groups are attached to
// instances and which TCP rules are open to the whole internet.
package secgroups

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/regions"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/BerryBytes/awsaudit/models"
)

const (
	StatusUsed          = "Used"
	StatusUnused        = "Unused"
	StatusSkippedUnused = "skipped unused"

	DefaultGroupName = "default"
	AnyIPv4          = "0.0.0.0/0"
	AnyIPv6          = "::/0"
	ProtocolTCP      = "tcp"
)

type ScannerInterface interface {
	Scan(ctx context.Context) (*Result, error)
	Report(ctx context.Context) ([]*report.Table, error)
}

// Membership is one instance/group attachment.
type Membership struct {
	Region    string
	Instance  string
	State     string
	KeyName   string
	GroupName string
	GroupID   string
}

// Rule is an inbound TCP permission.
type Rule struct {
	Ports   string
	Ranges  []string
	Exposed bool
}

type Group struct {
	Region    string
	GroupID   string
	GroupName string
	Status    string
	Rules     []Rule
}

func (g Group) Exposed() bool {
	for _, r := range g.Rules {
		if r.Exposed {
			return true
		}
	}
	return false
}

// Result is the outcome of a scan, in region order.
type Result struct {
	Memberships []Membership
	Groups      []Group
}

// Hazards are the groups with at least one exposed TCP rule.
func (r *Result) Hazards() []Group {
	var out []Group
	for _, g := range r.Groups {
		if g.Exposed() {
			out = append(out, g)
		}
	}
	return out
}

type Scanner struct {
	Session    session.Provider
	Regions    regions.ListerInterface
	NewAdapter ec2.AdapterFactory
}

var _ ScannerInterface = (*Scanner)(nil)

func NewScanner(p session.Provider, opts ...func(*Scanner)) *Scanner {
	scanner := &Scanner{
		Session:    p,
		Regions:    regions.NewLister(p),
		NewAdapter: ec2.NewAdapter,
	}

	for _, opt := range opts {
		opt(scanner)
	}

	return scanner
}

func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	names, err := s.Regions.List(ctx)
	if err != nil {
		return nil, err
	}

	results, err := regions.Collect(ctx, regions.OptionsFrom(s.Session), names, func(ctx context.Context, region string) ([]Result, error) {
		cfg, err := s.Session.ForRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		r, err := ScanRegion(ctx, s.NewAdapter(cfg), region)
		if err != nil {
			return nil, err
		}
		return []Result{*r}, nil
	})
	if err != nil {
		return nil, err
	}

	merged := &Result{}
	for _, r := range results {
		merged.Memberships = append(merged.Memberships, r.Memberships...)
		merged.Groups = append(merged.Groups, r.Groups...)
	}
	return merged, nil
}

// ScanRegion classifies one region's groups against that region's running
// and stopped instances.
func ScanRegion(ctx context.Context, adapter ec2.EC2AdapterInterface, region string) (*Result, error) {
	instances, err := adapter.ListInstances(ctx, ec2.RunningState, ec2.StoppedState)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	used := make(map[string]bool)
	for _, inst := range instances {
		for _, sg := range inst.SecurityGroups {
			used[sg.GroupID] = true
			result.Memberships = append(result.Memberships, Membership{
				Region:    region,
				Instance:  inst.Name,
				State:     inst.State,
				KeyName:   inst.KeyName,
				GroupName: sg.GroupName,
				GroupID:   sg.GroupID,
			})
		}
	}

	groups, err := adapter.ListSecurityGroups(ctx)
	if err != nil {
		return nil, err
	}

	for _, sg := range groups {
		group := Group{
			Region:    region,
			GroupID:   sg.GroupID,
			GroupName: sg.GroupName,
			Status:    Classify(sg.GroupName, used[sg.GroupID]),
		}
		for _, perm := range sg.Permissions {
			if perm.Protocol != ProtocolTCP {
				continue
			}
			group.Rules = append(group.Rules, NewRule(perm))
		}
		result.Groups = append(result.Groups, group)
	}

	return result, nil
}

func Classify(groupName string, used bool) string {
	switch {
	case used:
		return StatusUsed
	case groupName == DefaultGroupName:
		return StatusSkippedUnused
	default:
		return StatusUnused
	}
}

func NewRule(perm models.IPPermission) Rule {
	rule := Rule{Ports: PortRange(perm.FromPort, perm.ToPort)}
	rule.Ranges = append(rule.Ranges, perm.IPRanges...)
	rule.Ranges = append(rule.Ranges, perm.IPv6Range...)
	for _, cidr := range rule.Ranges {
		if cidr == AnyIPv4 || cidr == AnyIPv6 {
			rule.Exposed = true
		}
	}
	return rule
}

func PortRange(from, to *int32) string {
	if from == nil || to == nil {
		return "all"
	}
	return fmt.Sprintf("%d-%d", *from, *to)
}

// Report runs a scan and renders it as membership and group tables.
func (s *Scanner) Report(ctx context.Context) ([]*report.Table, error) {
	result, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return Tables(result), nil
}

func Tables(result *Result) []*report.Table {
	members := report.NewTable("SG", "Region", "Instance", "State", "Key", "Group", "Group ID")
	members.Caption = fmt.Sprintf("Security group membership: %d attachments", len(result.Memberships))
	for _, m := range result.Memberships {
		members.AddRow(m.Region, m.Instance, m.State, orDash(m.KeyName), m.GroupName, m.GroupID)
	}

	groups := report.NewTable("SG", "Region", "Group", "Group ID", "Status", "Port TCP", "Ranges", "Exposed")
	groups.Caption = fmt.Sprintf("Security groups: %d", len(result.Groups))
	for _, g := range result.Groups {
		if len(g.Rules) == 0 {
			groups.AddRow(g.Region, g.GroupName, g.GroupID, g.Status, "-", "-", "-")
			continue
		}
		for _, r := range g.Rules {
			exposed := "-"
			if r.Exposed {
				exposed = "WARNING"
			}
			groups.AddRow(g.Region, g.GroupName, g.GroupID, g.Status, r.Ports, orDash(strings.Join(r.Ranges, ", ")), exposed)
		}
	}

	hazards := result.Hazards()
	if len(hazards) == 0 {
		groups.AddSummary("No security group exposes TCP ports to %s", AnyIPv4)
	} else {
		names := make([]string, 0, len(hazards))
		for _, h := range hazards {
			names = append(names, fmt.Sprintf("%s(%s)", h.GroupName, h.GroupID))
		}
		groups.AddSummary("(!!) %d security groups expose TCP ports to the internet: %s", len(hazards), strings.Join(names, ", "))
	}

	return []*report.Table{members, groups}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
