package cost

import (
	"fmt"

	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/filter"
	"github.com/BerryBytes/awsaudit/internal/rds"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/spf13/cobra"
)

type CostDependencies struct {
	EC2     ec2.EC2ServiceInterface
	RDS     rds.RDSServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewCostCmd(deps CostDependencies) *cobra.Command {
	var expression string

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Show on-demand cost of running EC2 and RDS instances",
		Long: `Price every running EC2 and RDS instance with the on-demand rate for its
region and report the hourly price, the cost accumulated since launch and the
monthly cost, with totals. --filter narrows the EC2 instances priced.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.CompileInstanceFilter(expression)
			if err != nil {
				return fmt.Errorf("invalid --filter: %w", err)
			}

			instances, err := deps.EC2.PriceReport(cmd.Context(), ec2.InstanceQuery{Filter: f})
			if err != nil {
				return err
			}

			databases, err := deps.RDS.CostReport(cmd.Context())
			if err != nil {
				return err
			}

			return deps.Printer.Print(deps.Output(), instances, databases)
		},
	}

	cmd.Flags().StringVar(&expression, "filter", "", "boolean expression evaluated against each EC2 instance")

	return cmd
}
