package eks

import (
	"github.com/BerryBytes/awsaudit/internal/eks"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/spf13/cobra"
)

type EKSDependencies struct {
	Service eks.EKSServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewEKSCmd(deps EKSDependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "eks",
		Short:        "List EKS clusters in every region",
		Long:         `List EKS clusters across regions with version, status and endpoint.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := deps.Service.Clusters(cmd.Context())
			if err != nil {
				return err
			}
			return deps.Printer.Print(deps.Output(), table)
		},
	}

	return cmd
}
