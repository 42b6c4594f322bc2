package awserr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/smithy-go"
)

const (
	CodeRequestExpired     = "RequestExpired"
	CodeAuthFailure        = "AuthFailure"
	CodeUnauthorized       = "UnauthorizedOperation"
	CodeOptInRequired      = "OptInRequired"
	CodeAccessDenied       = "AccessDenied"
	CodeAccessDeniedEx     = "AccessDeniedException"
	CodeDBInstanceNotFound = "DBInstanceNotFound"
	CodeDBClusterNotFound  = "DBClusterNotFoundFault"
	CodeNoSuchBucket       = "NoSuchBucket"
	CodeNoSuchEntity       = "NoSuchEntity"
)

const (
	ErrRequestExpired      = "AWS request expired during %s (likely due to clock skew or expired credentials). Current system time: %s: %w"
	ErrAuthFailure         = "AWS authentication failed during %s. Please verify your credentials and IAM permissions: %w"
	ErrAccessDenied        = "access denied during %s. The caller lacks the required read permission: %w"
	ErrRegionNotEnabled    = "AWS region is not enabled during %s. Please opt-in for this region in your AWS account: %w"
	ErrNotFound            = "resource not found during %s: %w"
	ErrMaxAttemptsExceeded = "AWS request failed after multiple retries during %s: %w"
	ErrOperationFailed     = "failed during %s: %w"
)

// Wrap classifies an AWS SDK error into an actionable message naming the
// operation that failed. The original error stays reachable via errors.As.
func Wrap(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case CodeRequestExpired:
			return fmt.Errorf(ErrRequestExpired, operation, time.Now().Format(time.RFC3339), err)
		case CodeAuthFailure, CodeUnauthorized:
			return fmt.Errorf(ErrAuthFailure, operation, err)
		case CodeAccessDenied, CodeAccessDeniedEx:
			return fmt.Errorf(ErrAccessDenied, operation, err)
		case CodeOptInRequired:
			return fmt.Errorf(ErrRegionNotEnabled, operation, err)
		case CodeDBInstanceNotFound, CodeDBClusterNotFound, CodeNoSuchBucket, CodeNoSuchEntity:
			return fmt.Errorf(ErrNotFound, operation, err)
		}
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) && strings.Contains(err.Error(), "exceeded maximum number of attempts") {
		return fmt.Errorf(ErrMaxAttemptsExceeded, operation, err)
	}

	return fmt.Errorf(ErrOperationFailed, operation, err)
}

// Code returns the API error code carried by err, or "".
func Code(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
