package rds

import (
	"context"

	"github.com/BerryBytes/awsaudit/internal/rds"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/spf13/cobra"
)

type RDSDependencies struct {
	Service rds.RDSServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewRDSCmd(deps RDSDependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rds",
		Short: "List RDS instances with their cost",
		Long: `List RDS DB instances in every region with engine, class, lifetime and
on-demand cost. Subcommands list clusters and snapshots.`,
		SilenceUsage: true,
		RunE:         deps.run(rds.RDSServiceInterface.CostReport),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:          "clusters",
			Short:        "List RDS DB clusters",
			SilenceUsage: true,
			RunE:         deps.run(rds.RDSServiceInterface.Clusters),
		},
		&cobra.Command{
			Use:          "snapshots",
			Short:        "List RDS DB snapshots",
			SilenceUsage: true,
			RunE:         deps.run(rds.RDSServiceInterface.Snapshots),
		},
	)

	return cmd
}

func (deps RDSDependencies) run(list func(rds.RDSServiceInterface, context.Context) (*report.Table, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		table, err := list(deps.Service, cmd.Context())
		if err != nil {
			return err
		}
		return deps.Printer.Print(deps.Output(), table)
	}
}
