package models

import "time"

type EC2Instance struct {
	InstanceID       string
	Name             string
	Region           string
	PublicIPAddress  string
	PrivateIPAddress string
	State            string
	InstanceType     string
	Platform         string
	KeyName          string
	AZ               string
	LaunchTime       time.Time
	SecurityGroups   []SecurityGroupRef
	Tags             map[string]string
}

// SecurityGroupRef is a group attachment as reported on an instance.
type SecurityGroupRef struct {
	GroupID   string
	GroupName string
}

type EBSVolume struct {
	VolumeID    string
	Region      string
	State       string
	SizeGiB     int32
	VolumeType  string
	CreateTime  time.Time
	AttachedTo  []string
	Encrypted   bool
	Description string
}
