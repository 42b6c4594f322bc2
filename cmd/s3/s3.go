package s3

import (
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/s3"
	"github.com/spf13/cobra"
)

type S3Dependencies struct {
	Service s3.S3ServiceInterface
	Printer report.PrinterInterface
	Output  report.OutputFunc
}

func NewS3Cmd(deps S3Dependencies) *cobra.Command {
	var objects bool

	cmd := &cobra.Command{
		Use:   "s3",
		Short: "List S3 buckets grouped by region",
		Long: `List S3 buckets with their region, creation date, object count and total size.
With --objects every object is listed along with a per-bucket total.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := deps.Service.Buckets
			if objects {
				list = deps.Service.Objects
			}

			table, err := list(cmd.Context())
			if err != nil {
				return err
			}
			return deps.Printer.Print(deps.Output(), table)
		},
	}

	cmd.Flags().BoolVar(&objects, "objects", false, "list every object instead of bucket totals")

	cmd.AddCommand(&cobra.Command{
		Use:          "acl",
		Short:        "List each bucket's ACL grants",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := deps.Service.ACLs(cmd.Context())
			if err != nil {
				return err
			}
			return deps.Printer.Print(deps.Output(), table)
		},
	})

	return cmd
}
