package ec2

import (
	"fmt"

	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/filter"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/spf13/cobra"
)

type EC2Dependencies struct {
	Service ec2.EC2ServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewEC2Cmd(deps EC2Dependencies) *cobra.Command {
	var (
		states     []string
		expression string
	)

	cmd := &cobra.Command{
		Use:   "ec2",
		Short: "List EC2 instances in every region",
		Long: `List EC2 instances across regions with type, state and addresses.
Use --state to restrict instance states and --filter for an expression such as
State == "running" && Tags["owner"] == "ops".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.CompileInstanceFilter(expression)
			if err != nil {
				return fmt.Errorf("invalid --filter: %w", err)
			}

			table, err := deps.Service.Instances(cmd.Context(), ec2.InstanceQuery{States: states, Filter: f})
			if err != nil {
				return err
			}
			return deps.Printer.Print(deps.Output(), table)
		},
	}

	cmd.Flags().StringSliceVar(&states, "state", nil, "instance states to include, e.g. running,stopped")
	cmd.Flags().StringVar(&expression, "filter", "", "boolean expression evaluated against each instance")

	return cmd
}

func NewEBSCmd(deps EC2Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:          "ebs",
		Short:        "List EBS volumes in every region",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := deps.Service.Volumes(cmd.Context())
			if err != nil {
				return err
			}
			return deps.Printer.Print(deps.Output(), table)
		},
	}
}
