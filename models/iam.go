package models

import "time"

type IAMUser struct {
	UserName         string
	ARN              string
	CreateDate       time.Time
	PasswordLastUsed *time.Time
	Groups           []string
}

type IAMRole struct {
	RoleName       string
	ARN            string
	CreateDate     time.Time
	InlinePolicies []string
}
