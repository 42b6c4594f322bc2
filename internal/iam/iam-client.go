package iam

import (
	"context"
	"fmt"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

type AwsIAMAdapter struct {
	Client IAMAPI
}

var _ IAMAdapterInterface = (*AwsIAMAdapter)(nil)

func NewIAMClient(cfg aws.Config) *AwsIAMAdapter {
	return &AwsIAMAdapter{Client: iam.NewFromConfig(cfg)}
}

func NewAdapter(cfg aws.Config) IAMAdapterInterface {
	return NewIAMClient(cfg)
}

func (c *AwsIAMAdapter) ListUsers(ctx context.Context) ([]models.IAMUser, error) {
	var users []models.IAMUser

	paginator := iam.NewListUsersPaginator(c.Client, &iam.ListUsersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "listing IAM users")
		}
		for _, u := range page.Users {
			user := models.IAMUser{
				UserName:         aws.ToString(u.UserName),
				ARN:              aws.ToString(u.Arn),
				CreateDate:       aws.ToTime(u.CreateDate),
				PasswordLastUsed: u.PasswordLastUsed,
			}
			groups, err := c.userGroups(ctx, user.UserName)
			if err != nil {
				return nil, err
			}
			user.Groups = groups
			users = append(users, user)
		}
	}

	return users, nil
}

func (c *AwsIAMAdapter) userGroups(ctx context.Context, userName string) ([]string, error) {
	var groups []string

	paginator := iam.NewListGroupsForUserPaginator(c.Client, &iam.ListGroupsForUserInput{UserName: aws.String(userName)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, fmt.Sprintf("listing groups for %s", userName))
		}
		for _, g := range page.Groups {
			groups = append(groups, aws.ToString(g.GroupName))
		}
	}
	return groups, nil
}

func (c *AwsIAMAdapter) ListRoles(ctx context.Context) ([]models.IAMRole, error) {
	var roles []models.IAMRole

	paginator := iam.NewListRolesPaginator(c.Client, &iam.ListRolesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, "listing IAM roles")
		}
		for _, r := range page.Roles {
			role := models.IAMRole{
				RoleName:   aws.ToString(r.RoleName),
				ARN:        aws.ToString(r.Arn),
				CreateDate: aws.ToTime(r.CreateDate),
			}
			policies, err := c.rolePolicies(ctx, role.RoleName)
			if err != nil {
				return nil, err
			}
			role.InlinePolicies = policies
			roles = append(roles, role)
		}
	}

	return roles, nil
}

func (c *AwsIAMAdapter) rolePolicies(ctx context.Context, roleName string) ([]string, error) {
	var names []string

	paginator := iam.NewListRolePoliciesPaginator(c.Client, &iam.ListRolePoliciesInput{RoleName: aws.String(roleName)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, awserr.Wrap(err, fmt.Sprintf("listing inline policies for %s", roleName))
		}
		names = append(names, page.PolicyNames...)
	}
	return names, nil
}
