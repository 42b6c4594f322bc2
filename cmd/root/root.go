package root

import (
	"errors"
	"fmt"

	cmdCost "github.com/BerryBytes/awsaudit/cmd/cost"
	cmdEC2 "github.com/BerryBytes/awsaudit/cmd/ec2"
	cmdECR "github.com/BerryBytes/awsaudit/cmd/ecr"
	cmdEKS "github.com/BerryBytes/awsaudit/cmd/eks"
	cmdIAM "github.com/BerryBytes/awsaudit/cmd/iam"
	cmdRDS "github.com/BerryBytes/awsaudit/cmd/rds"
	cmdReport "github.com/BerryBytes/awsaudit/cmd/report"
	cmdS3 "github.com/BerryBytes/awsaudit/cmd/s3"
	cmdSG "github.com/BerryBytes/awsaudit/cmd/sg"
	appconfig "github.com/BerryBytes/awsaudit/internal/config"
	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/ecr"
	"github.com/BerryBytes/awsaudit/internal/eks"
	"github.com/BerryBytes/awsaudit/internal/iam"
	"github.com/BerryBytes/awsaudit/internal/logging"
	"github.com/BerryBytes/awsaudit/internal/mailer"
	"github.com/BerryBytes/awsaudit/internal/rds"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/s3"
	"github.com/BerryBytes/awsaudit/internal/secgroups"
	generalutils "github.com/BerryBytes/awsaudit/utils/general"
	promptutils "github.com/BerryBytes/awsaudit/utils/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Configurer receives the settings resolved before each command runs.
type Configurer interface {
	Configure(settings *appconfig.Config)
}

type RootDependencies struct {
	Fs       afero.Fs
	Session  Configurer
	General  generalutils.GeneralUtilsInterface
	Prompter promptutils.Prompter
	Printer  report.PrinterInterface
	Mailer   mailer.MailerInterface

	EC2            ec2.EC2ServiceInterface
	RDS            rds.RDSServiceInterface
	S3             s3.S3ServiceInterface
	IAM            iam.IAMServiceInterface
	SecurityGroups secgroups.ScannerInterface
	EKS            eks.EKSServiceInterface
	ECR            ecr.ECRServiceInterface
}

type menuItem struct {
	label string
	path  []string
}

var menu = []menuItem{
	{"EC2 instances", []string{"ec2"}},
	{"EBS volumes", []string{"ebs"}},
	{"S3 buckets", []string{"s3"}},
	{"S3 bucket ACLs", []string{"s3", "acl"}},
	{"IAM users", []string{"iam", "users"}},
	{"IAM roles", []string{"iam", "roles"}},
	{"RDS instances and cost", []string{"rds"}},
	{"RDS clusters", []string{"rds", "clusters"}},
	{"RDS snapshots", []string{"rds", "snapshots"}},
	{"Security group scan", []string{"sg"}},
	{"EKS clusters", []string{"eks"}},
	{"ECR repositories", []string{"ecr"}},
	{"Running instance cost", []string{"cost"}},
	{"Email cost report", []string{"report"}},
}

func NewRootCmd(deps RootDependencies) *cobra.Command {
	var (
		configPath string
		settings   *appconfig.Config
	)

	output := func() report.Options {
		if settings == nil {
			return report.Options{Format: "table"}
		}
		return report.Options{Format: settings.Output.Format, File: settings.Output.File}
	}

	email := func() appconfig.EmailConfig {
		if settings == nil {
			return appconfig.EmailConfig{}
		}
		return settings.Email
	}

	rootCmd := &cobra.Command{
		Use:   "awsaudit",
		Short: "AWS resource inventory and cost reports",
		Long: `Enumerate EC2, EBS, S3, IAM, RDS, EKS, ECR and security group resources
across regions, estimate on-demand cost of running instances, and print the
results or email them as an HTML report.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load(deps.Fs, configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logging.Setup(cfg.Logging)
			deps.Session.Configure(cfg)
			settings = cfg

			log.Debug().Str("command", cmd.CommandPath()).Strs("regions", cfg.Regions).Msg("configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !deps.General.IsInteractive() {
				return cmd.Help()
			}

			err := runSelected(cmd, deps.Prompter)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./awsaudit.yaml or $HOME/.awsaudit/awsaudit.yaml)")
	flags.String("profile", "", "AWS shared config profile")
	flags.String("region", "", "home region for global API calls")
	flags.StringSlice("regions", nil, "regions to inventory (default: every enabled region)")
	flags.StringP("output", "o", "", "output format: table, html, json or yaml")
	flags.String("out-file", "", "write the rendered output to this file")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("keep-going", false, "skip regions whose API calls fail instead of aborting")

	ec2Deps := cmdEC2.EC2Dependencies{Service: deps.EC2, Printer: deps.Printer, Output: output}

	rootCmd.AddCommand(
		cmdEC2.NewEC2Cmd(ec2Deps),
		cmdEC2.NewEBSCmd(ec2Deps),
		cmdS3.NewS3Cmd(cmdS3.S3Dependencies{Service: deps.S3, Printer: deps.Printer, Output: output}),
		cmdIAM.NewIAMCmd(cmdIAM.IAMDependencies{Service: deps.IAM, Printer: deps.Printer, Output: output}),
		cmdRDS.NewRDSCmd(cmdRDS.RDSDependencies{Service: deps.RDS, Printer: deps.Printer, Output: output}),
		cmdSG.NewSGCmd(cmdSG.SGDependencies{Scanner: deps.SecurityGroups, Printer: deps.Printer, Output: output}),
		cmdEKS.NewEKSCmd(cmdEKS.EKSDependencies{Service: deps.EKS, Printer: deps.Printer, Output: output}),
		cmdECR.NewECRCmd(cmdECR.ECRDependencies{Service: deps.ECR, Printer: deps.Printer, Output: output}),
		cmdCost.NewCostCmd(cmdCost.CostDependencies{EC2: deps.EC2, RDS: deps.RDS, Printer: deps.Printer, Output: output}),
		cmdReport.NewReportCmd(cmdReport.ReportDependencies{
			EC2:     deps.EC2,
			RDS:     deps.RDS,
			Mailer:  deps.Mailer,
			Printer: deps.Printer,
			Output:  output,
			Email:   email,
		}),
	)

	return rootCmd
}

// runSelected asks which report to produce and runs that subcommand with its
// default flags.
func runSelected(cmd *cobra.Command, prompter promptutils.Prompter) error {
	labels := make([]string, 0, len(menu))
	for _, item := range menu {
		labels = append(labels, item.label)
	}

	selected, err := prompter.PromptForSelection("Select a report", labels)
	if err != nil {
		return err
	}

	for _, item := range menu {
		if item.label != selected {
			continue
		}
		target, _, err := cmd.Find(item.path)
		if err != nil {
			return err
		}
		target.SetContext(cmd.Context())
		return target.RunE(target, nil)
	}

	return fmt.Errorf("unknown selection: %s", selected)
}
