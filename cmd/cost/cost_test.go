package cost_test

import (
	"errors"
	"testing"

	"github.com/BerryBytes/awsaudit/cmd/cost"
	"github.com/BerryBytes/awsaudit/internal/ec2"
	"github.com/BerryBytes/awsaudit/internal/report"
	mock_awsaudit "github.com/BerryBytes/awsaudit/tests/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	ec2     *mock_awsaudit.MockEC2ServiceInterface
	rds     *mock_awsaudit.MockRDSServiceInterface
	printer *mock_awsaudit.MockPrinterInterface
}

func TestNewCostCmd(t *testing.T) {
	opts := report.Options{Format: "html", File: "cost.html"}
	instances := report.NewTable("EC2", "Location")
	databases := report.NewTable("RDS", "Region")

	tests := []struct {
		name        string
		args        []string
		setup       func(m mocks)
		expectedErr string
	}{
		{
			name: "prints both tables",
			args: []string{},
			setup: func(m mocks) {
				m.ec2.EXPECT().PriceReport(gomock.Any(), ec2.InstanceQuery{}).Return(instances, nil)
				m.rds.EXPECT().CostReport(gomock.Any()).Return(databases, nil)
				m.printer.EXPECT().Print(opts, instances, databases).Return(nil)
			},
		},
		{
			name: "filter passed to ec2",
			args: []string{"--filter", `Tags["team"] == "data"`},
			setup: func(m mocks) {
				m.ec2.EXPECT().PriceReport(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, q ec2.InstanceQuery) (*report.Table, error) {
						require.NotNil(t, q.Filter)
						return instances, nil
					})
				m.rds.EXPECT().CostReport(gomock.Any()).Return(databases, nil)
				m.printer.EXPECT().Print(opts, instances, databases).Return(nil)
			},
		},
		{
			name:        "bad filter",
			args:        []string{"--filter", "Tags["},
			setup:       func(mocks) {},
			expectedErr: "invalid --filter",
		},
		{
			name: "ec2 error stops before rds",
			args: []string{},
			setup: func(m mocks) {
				m.ec2.EXPECT().PriceReport(gomock.Any(), gomock.Any()).Return(nil, errors.New("pricing unavailable"))
			},
			expectedErr: "pricing unavailable",
		},
		{
			name: "rds error",
			args: []string{},
			setup: func(m mocks) {
				m.ec2.EXPECT().PriceReport(gomock.Any(), gomock.Any()).Return(instances, nil)
				m.rds.EXPECT().CostReport(gomock.Any()).Return(nil, errors.New("region us-west-2: opt-in required"))
			},
			expectedErr: "opt-in required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				ec2:     mock_awsaudit.NewMockEC2ServiceInterface(ctrl),
				rds:     mock_awsaudit.NewMockRDSServiceInterface(ctrl),
				printer: mock_awsaudit.NewMockPrinterInterface(ctrl),
			}
			tt.setup(m)

			cmd := cost.NewCostCmd(cost.CostDependencies{
				EC2:     m.ec2,
				RDS:     m.rds,
				Printer: m.printer,
				Output:  report.Fixed(opts),
			})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
