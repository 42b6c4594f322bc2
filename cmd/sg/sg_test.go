package sg_test

import (
	"errors"
	"testing"

	"github.com/BerryBytes/awsaudit/cmd/sg"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/secgroups"
	mock_awsaudit "github.com/BerryBytes/awsaudit/tests/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exposedResult() *secgroups.Result {
	return &secgroups.Result{
		Groups: []secgroups.Group{
			{
				Region:    "us-east-1",
				GroupID:   "sg-1",
				GroupName: "web",
				Status:    secgroups.StatusUsed,
				Rules:     []secgroups.Rule{{Ports: "22", Ranges: []string{"0.0.0.0/0"}, Exposed: true}},
			},
		},
	}
}

func TestNewSGCmd(t *testing.T) {
	opts := report.Options{Format: "table"}

	tests := []struct {
		name        string
		args        []string
		result      *secgroups.Result
		scanErr     error
		expectPrint bool
		expectedErr string
	}{
		{
			name:        "clean scan",
			args:        []string{},
			result:      &secgroups.Result{},
			expectPrint: true,
		},
		{
			name:        "exposed groups are reported without failing",
			args:        []string{},
			result:      exposedResult(),
			expectPrint: true,
		},
		{
			name:        "fail on exposed",
			args:        []string{"--fail-on-exposed"},
			result:      exposedResult(),
			expectPrint: true,
			expectedErr: "1 security groups expose TCP ports to the internet",
		},
		{
			name:        "fail on exposed with clean scan",
			args:        []string{"--fail-on-exposed"},
			result:      &secgroups.Result{},
			expectPrint: true,
		},
		{
			name:        "scan error",
			args:        []string{},
			scanErr:     errors.New("region eu-west-1: auth failure"),
			expectedErr: "region eu-west-1: auth failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scanner := mock_awsaudit.NewMockScannerInterface(ctrl)
			printer := mock_awsaudit.NewMockPrinterInterface(ctrl)

			scanner.EXPECT().Scan(gomock.Any()).Return(tt.result, tt.scanErr)
			if tt.expectPrint {
				printer.EXPECT().Print(opts, gomock.Any(), gomock.Any()).Return(nil)
			}

			cmd := sg.NewSGCmd(sg.SGDependencies{Scanner: scanner, Printer: printer, Output: report.Fixed(opts)})
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
