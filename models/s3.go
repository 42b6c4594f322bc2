package models

import "time"

type S3Bucket struct {
	Name         string
	Region       string
	CreationDate time.Time
}

type S3Object struct {
	Bucket       string
	Key          string
	LastModified time.Time
	Size         int64
}

// S3Grant is one ACL entry; Grantee is already resolved to a display form.
type S3Grant struct {
	Bucket     string
	Grantee    string
	Permission string
}
