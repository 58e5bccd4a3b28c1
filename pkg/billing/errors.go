package billing

import "errors"

var (
	ErrBillingUnavailable = errors.New("billing provider request failed")
	ErrInvariantViolation = errors.New("billing state violates data model invariant")
	ErrMalformedResponse  = errors.New("malformed billing provider response")

	ErrMissingAPIKey         = errors.New("billing provider API key is required")
	ErrMissingSubscriptionID = errors.New("subscription ID is required")
	ErrMissingRateCardID     = errors.New("rate card ID is required")
	ErrMissingSubjectID      = errors.New("subject ID is required")
)
