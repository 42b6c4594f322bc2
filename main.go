package main

import (
	"os"

	"github.com/BerryBytes/awsaudit/cmd/root"
	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/ecr"
	"github.com/BerryBytes/awsaudit/internal/eks"
	"github.com/BerryBytes/awsaudit/internal/iam"
	"github.com/BerryBytes/awsaudit/internal/mailer"
	"github.com/BerryBytes/awsaudit/internal/pricing"
	"github.com/BerryBytes/awsaudit/internal/rds"
	"github.com/BerryBytes/awsaudit/internal/regions"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/s3"
	"github.com/BerryBytes/awsaudit/internal/secgroups"
	"github.com/BerryBytes/awsaudit/internal/session"
	generalutils "github.com/BerryBytes/awsaudit/utils/general"
	promptutils "github.com/BerryBytes/awsaudit/utils/prompt"
	"github.com/spf13/afero"
)

func main() {
	generalManager := generalutils.NewGeneralUtilsManager()
	ctx := generalManager.HandleSignals()

	fs := afero.NewOsFs()
	sess := session.New(session.DefaultConfigLoader{})

	lister := regions.NewLister(sess)
	pricer := pricing.NewPricer(sess)

	rootCmd := root.NewRootCmd(root.RootDependencies{
		Fs:       fs,
		Session:  sess,
		General:  generalManager,
		Prompter: promptutils.NewPrompt(),
		Printer:  report.NewPrinter(fs, os.Stdout),
		Mailer:   mailer.NewSESMailer(sess),
		EC2: ec2.NewEC2Service(sess, func(s *ec2.EC2Service) {
			s.Regions = lister
			s.Pricer = pricer
		}),
		RDS: rds.NewRDSService(sess, func(s *rds.RDSService) {
			s.Regions = lister
			s.Pricer = pricer
		}),
		S3:  s3.NewS3Service(sess),
		IAM: iam.NewIAMService(sess),
		SecurityGroups: secgroups.NewScanner(sess, func(s *secgroups.Scanner) {
			s.Regions = lister
		}),
		EKS: eks.NewEKSService(sess, func(s *eks.EKSService) { s.Regions = lister }),
		ECR: ecr.NewECRService(sess, func(s *ecr.ECRService) { s.Regions = lister }),
	})

	// cobra has already printed the error.
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
