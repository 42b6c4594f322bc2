package models

import "time"

type EKSCluster struct {
	Name      string
	Region    string
	Version   string
	Status    string
	Endpoint  string
	CreatedAt time.Time
}

type ECRRepository struct {
	Name       string
	Region     string
	URI        string
	CreatedAt  time.Time
	ImageCount int
	SizeBytes  int64
}
