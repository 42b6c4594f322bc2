package mailer

import (
	"context"
	"testing"

	"github.com/BerryBytes/awsaudit/internal/session/sessiontest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSESAPI struct {
	mock.Mock
}

func (m *MockSESAPI) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

func TestSESMailer_Send(t *testing.T) {
	api := &MockSESAPI{}
	api.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return aws.ToString(in.Source) == "reports@example.com" &&
			assert.ObjectsAreEqual([]string{"ops@example.com"}, in.Destination.ToAddresses) &&
			aws.ToString(in.Message.Subject.Data) == "EC2 Instances Report - 2 instances running" &&
			aws.ToString(in.Message.Body.Html.Data) == "<html><body></body></html>"
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil)

	provider := sessiontest.New()
	provider.Values.Email.Region = "eu-west-1"

	var clientRegion string
	m := &SESMailer{
		Session: provider,
		NewClient: func(cfg aws.Config) SESAPI {
			clientRegion = cfg.Region
			return api
		},
	}

	id, err := m.Send(context.Background(), Message{
		From:    "reports@example.com",
		To:      []string{"ops@example.com"},
		Subject: "EC2 Instances Report - 2 instances running",
		HTML:    "<html><body></body></html>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Equal(t, "eu-west-1", clientRegion)
	api.AssertExpectations(t)
}

func TestSESMailer_Validation(t *testing.T) {
	m := &SESMailer{Session: sessiontest.New(), NewClient: func(aws.Config) SESAPI {
		t.Fatal("no client expected")
		return nil
	}}

	_, err := m.Send(context.Background(), Message{To: []string{"a@example.com"}})
	assert.EqualError(t, err, "email sender address is required")

	_, err = m.Send(context.Background(), Message{From: "a@example.com"})
	assert.EqualError(t, err, "at least one email recipient is required")
}

func TestSESMailer_APIError(t *testing.T) {
	api := &MockSESAPI{}
	api.On("SendEmail", mock.Anything, mock.Anything).Return(
		(*ses.SendEmailOutput)(nil),
		&smithy.GenericAPIError{Code: "AccessDenied", Message: "not verified"},
	)
	m := &SESMailer{Session: sessiontest.New(), NewClient: func(aws.Config) SESAPI { return api }}

	_, err := m.Send(context.Background(), Message{From: "a@example.com", To: []string{"b@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied during sending report email")
}
