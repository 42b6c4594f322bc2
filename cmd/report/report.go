package report

import (
	"fmt"

	appconfig "github.com/BerryBytes/awsaudit/internal/config"
	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/mailer"
	"github.com/BerryBytes/awsaudit/internal/rds"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type ReportDependencies struct {
	EC2     ec2.EC2ServiceInterface
	RDS     rds.RDSServiceInterface
	Mailer  mailer.MailerInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
	Email   func() appconfig.EmailConfig
}

func NewReportCmd(deps ReportDependencies) *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Email the EC2 and RDS cost report",
		Long: `Build the EC2 and RDS running-instance cost tables and send each non-empty
table as an HTML email through SES. --ascii prints the tables instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			instances, err := deps.EC2.CostReport(ctx, ec2.InstanceQuery{})
			if err != nil {
				return err
			}

			databases, err := deps.RDS.CostReport(ctx)
			if err != nil {
				return err
			}

			if ascii {
				opts := deps.Output()
				opts.Format = "table"
				return deps.Printer.Print(opts, instances, databases)
			}

			email := deps.Email()
			sent, err := mailer.Deliver(ctx, deps.Mailer, email, instances, databases)
			if err != nil {
				return fmt.Errorf("failed to send report: %w", err)
			}

			log.Info().Int("sent", sent).Strs("to", email.To).Msg("report delivered")
			if sent == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing running, no report sent")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %d report(s) to %s\n", sent, email.To)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "print the report tables instead of emailing them")

	return cmd
}
