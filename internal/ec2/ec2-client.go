package ec2

import (
	"context"
	"sort"
	"strings"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const (
	InstanceStateName = "instance-state-name"
	RunningState      = "running"
	StoppedState      = "stopped"
	TagName           = "name"
	TagOwner          = "owner"
	TagExpiry         = "expiry"
	Undefined         = "undefined"
)

type AwsEC2Adapter struct {
	Client EC2API
	Region string
}

var _ EC2AdapterInterface = (*AwsEC2Adapter)(nil)

func NewEC2Client(cfg aws.Config) *AwsEC2Adapter {
	return &AwsEC2Adapter{
		Client: ec2.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

// NewAdapter is the default AdapterFactory.
func NewAdapter(cfg aws.Config) EC2AdapterInterface {
	return NewEC2Client(cfg)
}

func (c *AwsEC2Adapter) ListInstances(ctx context.Context, states ...string) ([]models.EC2Instance, error) {
	input := &ec2.DescribeInstancesInput{}
	if len(states) > 0 {
		input.Filters = []types.Filter{
			{Name: aws.String(InstanceStateName), Values: states},
		}
	}

	var instances []models.EC2Instance
	paginator := ec2.NewDescribeInstancesPaginator(c.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing instances")
		}
		instances = append(instances, c.convertReservations(page.Reservations)...)
	}

	sort.SliceStable(instances, func(i, j int) bool {
		if instances[i].Name == instances[j].Name {
			return instances[i].InstanceID < instances[j].InstanceID
		}
		return instances[i].Name < instances[j].Name
	})

	return instances, nil
}

func (c *AwsEC2Adapter) convertReservations(reservations []types.Reservation) []models.EC2Instance {
	var instances []models.EC2Instance

	for _, reservation := range reservations {
		for _, instance := range reservation.Instances {
			if instance.InstanceId == nil {
				continue
			}

			inst := models.EC2Instance{
				InstanceID:       aws.ToString(instance.InstanceId),
				Region:           c.Region,
				PublicIPAddress:  aws.ToString(instance.PublicIpAddress),
				PrivateIPAddress: aws.ToString(instance.PrivateIpAddress),
				InstanceType:     string(instance.InstanceType),
				Platform:         string(instance.Platform),
				KeyName:          aws.ToString(instance.KeyName),
				LaunchTime:       aws.ToTime(instance.LaunchTime),
				Tags:             TagMap(instance.Tags),
			}

			if instance.State != nil {
				inst.State = string(instance.State.Name)
			}
			if instance.Placement != nil {
				inst.AZ = aws.ToString(instance.Placement.AvailabilityZone)
			}
			for _, sg := range instance.SecurityGroups {
				inst.SecurityGroups = append(inst.SecurityGroups, models.SecurityGroupRef{
					GroupID:   aws.ToString(sg.GroupId),
					GroupName: aws.ToString(sg.GroupName),
				})
			}
			inst.Name = TagValue(inst.Tags, TagName)

			instances = append(instances, inst)
		}
	}

	return instances
}

// TagMap lower-cases tag keys so lookups ignore key casing.
func TagMap(tags []types.Tag) map[string]string {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		if tag.Key == nil || tag.Value == nil {
			continue
		}
		out[strings.ToLower(aws.ToString(tag.Key))] = aws.ToString(tag.Value)
	}
	return out
}

// TagValue returns the value for key, or "undefined".
func TagValue(tags map[string]string, key string) string {
	if v, ok := tags[strings.ToLower(key)]; ok {
		return v
	}
	return Undefined
}

func (c *AwsEC2Adapter) ListVolumes(ctx context.Context) ([]models.EBSVolume, error) {
	var volumes []models.EBSVolume

	paginator := ec2.NewDescribeVolumesPaginator(c.Client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing volumes")
		}
		for _, v := range page.Volumes {
			vol := models.EBSVolume{
				VolumeID:   aws.ToString(v.VolumeId),
				Region:     c.Region,
				State:      string(v.State),
				SizeGiB:    aws.ToInt32(v.Size),
				VolumeType: string(v.VolumeType),
				CreateTime: aws.ToTime(v.CreateTime),
				Encrypted:  aws.ToBool(v.Encrypted),
			}
			for _, a := range v.Attachments {
				if a.InstanceId != nil {
					vol.AttachedTo = append(vol.AttachedTo, aws.ToString(a.InstanceId))
				}
			}
			volumes = append(volumes, vol)
		}
	}

	sort.SliceStable(volumes, func(i, j int) bool {
		return volumes[i].VolumeID < volumes[j].VolumeID
	})
	return volumes, nil
}

func (c *AwsEC2Adapter) ListSecurityGroups(ctx context.Context) ([]models.SecurityGroup, error) {
	var groups []models.SecurityGroup

	paginator := ec2.NewDescribeSecurityGroupsPaginator(c.Client, &ec2.DescribeSecurityGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "describing security groups")
		}
		for _, sg := range page.SecurityGroups {
			group := models.SecurityGroup{
				GroupID:   aws.ToString(sg.GroupId),
				GroupName: aws.ToString(sg.GroupName),
				VPCID:     aws.ToString(sg.VpcId),
				Region:    c.Region,
			}
			for _, p := range sg.IpPermissions {
				perm := models.IPPermission{
					Protocol: aws.ToString(p.IpProtocol),
					FromPort: p.FromPort,
					ToPort:   p.ToPort,
				}
				for _, r := range p.IpRanges {
					perm.IPRanges = append(perm.IPRanges, aws.ToString(r.CidrIp))
				}
				for _, r := range p.Ipv6Ranges {
					perm.IPv6Range = append(perm.IPv6Range, aws.ToString(r.CidrIpv6))
				}
				group.Permissions = append(group.Permissions, perm)
			}
			groups = append(groups, group)
		}
	}

	return groups, nil
}
