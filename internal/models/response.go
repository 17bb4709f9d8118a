package models

// FailureKind classifies why an operation did not succeed
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureDuplicateName
	FailureDuplicateEmail
	FailurePastStartDate
	FailureInvalidDateRange
	FailureNotFound
	FailureWriteFailed
	FailureNoRecords
	FailureInvalidInput
	FailureUnauthorized
)

var failureKindNames = map[FailureKind]string{
	FailureNone:             "none",
	FailureDuplicateName:    "duplicate_name",
	FailureDuplicateEmail:   "duplicate_email",
	FailurePastStartDate:    "past_start_date",
	FailureInvalidDateRange: "invalid_date_range",
	FailureNotFound:         "not_found",
	FailureWriteFailed:      "write_failed",
	FailureNoRecords:        "no_records",
	FailureInvalidInput:     "invalid_input",
	FailureUnauthorized:     "unauthorized",
}

func (k FailureKind) String() string {
	if name, ok := failureKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ServiceResponse is the envelope every service operation returns.
// Data is nil whenever Success is false.
type ServiceResponse[T any] struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *T          `json:"data"`
	Kind    FailureKind `json:"-"`
}
