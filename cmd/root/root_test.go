package root

import (
	"bytes"
	"errors"
	"testing"

	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/BerryBytes/awsaudit/internal/session"
	mock_awsaudit "github.com/BerryBytes/awsaudit/tests/mock"
	promptutils "github.com/BerryBytes/awsaudit/utils/prompt"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootMocks struct {
	general  *mock_awsaudit.MockGeneralUtilsInterface
	prompter *mock_awsaudit.MockPrompter
	printer  *mock_awsaudit.MockPrinterInterface
	eks      *mock_awsaudit.MockEKSServiceInterface
	ec2      *mock_awsaudit.MockEC2ServiceInterface
	session  *session.Session
}

func newTestRoot(t *testing.T, fs afero.Fs) (*rootMocks, RootDependencies) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &rootMocks{
		general:  mock_awsaudit.NewMockGeneralUtilsInterface(ctrl),
		prompter: mock_awsaudit.NewMockPrompter(ctrl),
		printer:  mock_awsaudit.NewMockPrinterInterface(ctrl),
		eks:      mock_awsaudit.NewMockEKSServiceInterface(ctrl),
		ec2:      mock_awsaudit.NewMockEC2ServiceInterface(ctrl),
		session:  session.New(nil),
	}

	if fs == nil {
		fs = afero.NewMemMapFs()
	}

	return m, RootDependencies{
		Fs:             fs,
		Session:        m.session,
		General:        m.general,
		Prompter:       m.prompter,
		Printer:        m.printer,
		Mailer:         mock_awsaudit.NewMockMailerInterface(ctrl),
		EC2:            m.ec2,
		RDS:            mock_awsaudit.NewMockRDSServiceInterface(ctrl),
		S3:             mock_awsaudit.NewMockS3ServiceInterface(ctrl),
		IAM:            mock_awsaudit.NewMockIAMServiceInterface(ctrl),
		SecurityGroups: mock_awsaudit.NewMockScannerInterface(ctrl),
		EKS:            m.eks,
		ECR:            mock_awsaudit.NewMockECRServiceInterface(ctrl),
	}
}

func TestNewRootCmd(t *testing.T) {
	_, deps := newTestRoot(t, nil)
	rootCmd := NewRootCmd(deps)

	assert.Equal(t, "awsaudit", rootCmd.Use)
	assert.Equal(t, "AWS resource inventory and cost reports", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "Enumerate EC2, EBS, S3, IAM, RDS")

	for _, name := range []string{"config", "profile", "region", "regions", "output", "out-file", "log-level", "keep-going"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "o", rootCmd.PersistentFlags().Lookup("output").Shorthand)
}

func TestRootCommandStructure(t *testing.T) {
	_, deps := newTestRoot(t, nil)
	rootCmd := NewRootCmd(deps)

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"ec2", "ebs", "s3", "iam", "rds", "sg", "eks", "ecr", "cost", "report"} {
		assert.Contains(t, names, want)
	}

	for _, item := range menu {
		target, _, err := rootCmd.Find(item.path)
		require.NoError(t, err, item.label)
		assert.NotNil(t, target.RunE, item.label)
	}
}

func TestRootCmd_Execution(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		interactive    bool
		expectedOutput string
		expectedErr    error
	}{
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage:",
		},
		{
			name:           "no args shows help when not interactive",
			args:           []string{},
			interactive:    false,
			expectedOutput: "Usage:",
		},
		{
			name:           "invalid command",
			args:           []string{"invalid"},
			expectedOutput: "unknown command",
			expectedErr:    errors.New("unknown command"),
		},
		{
			name:        "invalid log level",
			args:        []string{"eks", "--log-level", "loud"},
			expectedErr: errors.New("invalid logging level"),
		},
		{
			name:        "invalid region",
			args:        []string{"eks", "--regions", "mars-1"},
			expectedErr: errors.New(`invalid region: "mars-1"`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, deps := newTestRoot(t, nil)
			if len(tt.args) == 0 {
				m.general.EXPECT().IsInteractive().Return(tt.interactive)
			}

			rootCmd := NewRootCmd(deps)

			var outBuf bytes.Buffer
			rootCmd.SetOut(&outBuf)
			rootCmd.SetErr(&outBuf)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				require.NoError(t, err)
			}

			if tt.expectedOutput != "" {
				assert.Contains(t, outBuf.String(), tt.expectedOutput)
			}
		})
	}
}

func TestRootCmd_SubcommandUsesResolvedConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/awsaudit.yaml", []byte("regions:\n  - eu-west-1\noutput:\n  format: yaml\n"), 0o644))

	m, deps := newTestRoot(t, fs)
	table := report.NewTable("EKS", "Region")
	m.eks.EXPECT().Clusters(gomock.Any()).Return(table, nil)
	m.printer.EXPECT().Print(report.Options{Format: "json", File: "/tmp/eks.json"}, table).Return(nil)

	rootCmd := NewRootCmd(deps)
	rootCmd.SetArgs([]string{"eks", "--config", "/etc/awsaudit.yaml", "-o", "json", "--out-file", "/tmp/eks.json"})

	require.NoError(t, rootCmd.Execute())

	settings := m.session.Settings()
	require.NotNil(t, settings)
	assert.Equal(t, []string{"eu-west-1"}, settings.Regions)
	assert.Equal(t, "json", settings.Output.Format)
}

func TestRootCmd_InteractivePicker(t *testing.T) {
	t.Run("runs the selected report", func(t *testing.T) {
		m, deps := newTestRoot(t, nil)
		table := report.NewTable("EKS", "Region")

		m.general.EXPECT().IsInteractive().Return(true)
		m.prompter.EXPECT().PromptForSelection("Select a report", gomock.Any()).Return("EKS clusters", nil)
		m.eks.EXPECT().Clusters(gomock.Any()).Return(table, nil)
		m.printer.EXPECT().Print(report.Options{Format: "table"}, table).Return(nil)

		rootCmd := NewRootCmd(deps)
		rootCmd.SetArgs([]string{})
		assert.NoError(t, rootCmd.Execute())
	})

	t.Run("selection runs with default flags", func(t *testing.T) {
		m, deps := newTestRoot(t, nil)
		table := report.NewTable("EBS", "Region")

		m.general.EXPECT().IsInteractive().Return(true)
		m.prompter.EXPECT().PromptForSelection(gomock.Any(), gomock.Any()).Return("EBS volumes", nil)
		m.ec2.EXPECT().Volumes(gomock.Any()).Return(table, nil)
		m.printer.EXPECT().Print(gomock.Any(), table).Return(nil)

		rootCmd := NewRootCmd(deps)
		rootCmd.SetArgs([]string{})
		assert.NoError(t, rootCmd.Execute())
	})

	t.Run("interrupt exits cleanly", func(t *testing.T) {
		m, deps := newTestRoot(t, nil)

		m.general.EXPECT().IsInteractive().Return(true)
		m.prompter.EXPECT().PromptForSelection(gomock.Any(), gomock.Any()).Return("", promptutils.ErrInterrupted)

		rootCmd := NewRootCmd(deps)
		rootCmd.SetArgs([]string{})
		assert.NoError(t, rootCmd.Execute())
	})

	t.Run("prompt failure", func(t *testing.T) {
		m, deps := newTestRoot(t, nil)

		m.general.EXPECT().IsInteractive().Return(true)
		m.prompter.EXPECT().PromptForSelection(gomock.Any(), gomock.Any()).Return("", errors.New("failed to select an option: tty"))

		rootCmd := NewRootCmd(deps)
		rootCmd.SetArgs([]string{})
		assert.EqualError(t, rootCmd.Execute(), "failed to select an option: tty")
	})
}
