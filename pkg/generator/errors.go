package generator

import "errors"

var (
	// ErrInvalidCompanyURL indicates the input does not match the YC company
	// URL shape. Caught before any network call; the user edits and retries.
	ErrInvalidCompanyURL = errors.New("invalid YC company URL")

	// ErrActionFailed wraps a non-success response from the generation API
	// with the server-supplied detail message when one is available.
	ErrActionFailed = errors.New("character generation failed")

	// ErrGenerationInFlight indicates a generation is already outstanding on
	// this controller. One invocation at a time.
	ErrGenerationInFlight = errors.New("a generation is already in progress")
)

// Category is the coarse error classification the presentation layer uses to
// pick a retry affordance.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryOther      Category = "other"
)

// Classify maps any workflow error to its presentation category.
func Classify(err error) Category {
	if errors.Is(err, ErrInvalidCompanyURL) {
		return CategoryValidation
	}
	return CategoryOther
}
