package sg

import (
	"fmt"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/secgroups"
	"github.com/spf13/cobra"
)

type SGDependencies struct {
	Scanner secgroups.ScannerInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewSGCmd(deps SGDependencies) *cobra.Command {
	var failOnExposed bool

	cmd := &cobra.Command{
		Use:   "sg",
		Short: "Scan security groups for usage and internet exposure",
		Long: `List which instances use which security groups, classify every group as
used or unused, and flag TCP rules open to 0.0.0.0/0 or ::/0.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := deps.Scanner.Scan(cmd.Context())
			if err != nil {
				return err
			}

			if err := deps.Printer.Print(deps.Output(), secgroups.Tables(result)...); err != nil {
				return err
			}

			if hazards := result.Hazards(); failOnExposed && len(hazards) > 0 {
				return fmt.Errorf("%d security groups expose TCP ports to the internet", len(hazards))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnExposed, "fail-on-exposed", false, "exit non-zero when any group exposes TCP ports to the internet")

	return cmd
}
