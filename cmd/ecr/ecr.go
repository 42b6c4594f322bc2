package ecr

import (
	"github.com/BerryBytes/awsaudit/internal/ecr"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/spf13/cobra"
)

type ECRDependencies struct {
	Service ecr.ECRServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewECRCmd(deps ECRDependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ecr",
		Short:        "List ECR repositories in every region",
		Long:         `List ECR repositories across regions with image count and storage size.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := deps.Service.Repositories(cmd.Context())
			if err != nil {
				return err
			}
			return deps.Printer.Print(deps.Output(), table)
		},
	}

	return cmd
}
