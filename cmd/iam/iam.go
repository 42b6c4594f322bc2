package iam

import (
	"github.com/BerryBytes/awsaudit/internal/iam"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/spf13/cobra"
)

type IAMDependencies struct {
	Service iam.IAMServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewIAMCmd(deps IAMDependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iam",
		Short: "List IAM users and roles",
		Long:  `List IAM users with their groups, or roles with their inline policies.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:          "users",
			Short:        "List IAM users with their groups",
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				table, err := deps.Service.Users(cmd.Context())
				if err != nil {
					return err
				}
				return deps.Printer.Print(deps.Output(), table)
			},
		},
		&cobra.Command{
			Use:          "roles",
			Short:        "List IAM roles with their inline policy names",
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				table, err := deps.Service.Roles(cmd.Context())
				if err != nil {
					return err
				}
				return deps.Printer.Print(deps.Output(), table)
			},
		},
	)

	return cmd
}
