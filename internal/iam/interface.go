package iam

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

type IAMAPI interface {
	ListUsers(ctx context.Context, params *iam.ListUsersInput, optFns ...func(*iam.Options)) (*iam.ListUsersOutput, error)
	ListGroupsForUser(ctx context.Context, params *iam.ListGroupsForUserInput, optFns ...func(*iam.Options)) (*iam.ListGroupsForUserOutput, error)
	ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)
	ListRolePolicies(ctx context.Context, params *iam.ListRolePoliciesInput, optFns ...func(*iam.Options)) (*iam.ListRolePoliciesOutput, error)
}

type IAMAdapterInterface interface {
	ListUsers(ctx context.Context) ([]models.IAMUser, error)
	ListRoles(ctx context.Context) ([]models.IAMRole, error)
}

type AdapterFactory func(cfg aws.Config) IAMAdapterInterface

type IAMServiceInterface interface {
	Users(ctx context.Context) (*report.Table, error)
	Roles(ctx context.Context) (*report.Table, error)
}
