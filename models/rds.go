package models

import "time"

type RDSInstance struct {
	DBInstanceIdentifier string
	DBName               string
	Region               string
	Engine               string
	InstanceClass        string
	Status               string
	MultiAZ              bool
	Endpoint             string
	CreateTime           time.Time
}

type RDSCluster struct {
	DBClusterIdentifier string
	Region              string
	Engine              string
	EngineVersion       string
	Status              string
	Members             []string
	Endpoint            string
}

type RDSSnapshot struct {
	SnapshotIdentifier   string
	DBInstanceIdentifier string
	Region               string
	Engine               string
	SnapshotType         string
	Status               string
	CreateTime           time.Time
	AllocatedStorageGiB  int32
}
