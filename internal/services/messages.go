package services

import "github.com/benchtrack/allocation-backend/internal/models"

// Message identifies an outcome reported in a service envelope. Callers switch on
// the Message or its Kind; the text is only for display.
type Message int

const (
	MsgNone Message = iota

	// create validation
	MsgEmployeeNameExists
	MsgEmailExists
	MsgBenchStartPast
	MsgBenchEndBeforeStart

	// create
	MsgEmployeeAdded
	MsgAddEmployeeFailed
	MsgAddEmployeeInvalid

	// allocation
	MsgAllocatedToProject
	MsgSetOnBench
	MsgAllocationFailed
	MsgAllocationInvalidDateRange
	MsgAllocationInvalidTarget
	MsgAllocationInvalid

	// update / modify
	MsgEmployeeUpdated
	MsgUpdateFailed
	MsgUpdateInvalid
	MsgModifyNameExists
	MsgModifyEmailExists

	// delete
	MsgEmployeeDeleted
	MsgDeleteFailed

	// queries
	MsgNoRecords
	MsgEmployeeNotFound
	MsgAllocationNotFound
	MsgInvalidAllocationType
	MsgReportInvalidDateRange

	// auth
	MsgUserRegistered
	MsgUserExists
	MsgWeakPassword
	MsgRegisterFailed
	MsgLoginSuccess
	MsgInvalidCredentials
	MsgInvalidRefreshToken
	MsgPasswordReset
	MsgInvalidSecurityAnswer
	MsgResetFailed
)

type messageEntry struct {
	text string
	kind models.FailureKind
}

var messages = map[Message]messageEntry{
	MsgNone: {"", models.FailureNone},

	MsgEmployeeNameExists:  {"Employee name already exists", models.FailureDuplicateName},
	MsgEmailExists:         {"Email address already exists", models.FailureDuplicateEmail},
	MsgBenchStartPast:      {"Bench start date cannot be past date.", models.FailurePastStartDate},
	MsgBenchEndBeforeStart: {"Bench end date cannot be less that bench start date.", models.FailureInvalidDateRange},

	MsgEmployeeAdded:      {"Employee Added Successfully", models.FailureNone},
	MsgAddEmployeeFailed:  {"Something went wrong. Please try later", models.FailureWriteFailed},
	MsgAddEmployeeInvalid: {"Something went wrong. Please try later", models.FailureInvalidInput},

	MsgAllocatedToProject:         {"Employee allocated to project successfully", models.FailureNone},
	MsgSetOnBench:                 {"Employee set on bench successfully", models.FailureNone},
	MsgAllocationFailed:           {"Something went wrong. Please try later", models.FailureWriteFailed},
	MsgAllocationInvalidDateRange: {"Something went wrong. Please try later", models.FailureInvalidDateRange},
	MsgAllocationInvalidTarget:    {"Something went wrong. Please try later", models.FailureInvalidInput},
	MsgAllocationInvalid:          {"Something went wrong. Please try later", models.FailureInvalidInput},

	MsgEmployeeUpdated:   {"Employee updated successfully.", models.FailureNone},
	MsgUpdateFailed:      {"Something went wrong. Please try after sometime.", models.FailureWriteFailed},
	MsgUpdateInvalid:     {"Something went wrong. Please try after sometime.", models.FailureInvalidInput},
	MsgModifyNameExists:  {"Employee name already exists.", models.FailureDuplicateName},
	MsgModifyEmailExists: {"Email address already exists.", models.FailureDuplicateEmail},

	MsgEmployeeDeleted: {"Employee deleted successfully", models.FailureNone},
	MsgDeleteFailed:    {"Something went wrong", models.FailureWriteFailed},

	MsgNoRecords:              {"No records found", models.FailureNoRecords},
	MsgEmployeeNotFound:       {"Employee not found.", models.FailureNotFound},
	MsgAllocationNotFound:     {"Allocation not found.", models.FailureNotFound},
	MsgInvalidAllocationType:  {"Invalid allocation type.", models.FailureInvalidInput},
	MsgReportInvalidDateRange: {"End date cannot be less than start date.", models.FailureInvalidDateRange},

	MsgUserRegistered:        {"User registered successfully.", models.FailureNone},
	MsgUserExists:            {"User already exists.", models.FailureInvalidInput},
	MsgWeakPassword:          {"Password must be at least 8 characters long and contain upper case, lower case, numeric and special characters.", models.FailureInvalidInput},
	MsgRegisterFailed:        {"Something went wrong. Please try later", models.FailureWriteFailed},
	MsgLoginSuccess:          {"Login successful.", models.FailureNone},
	MsgInvalidCredentials:    {"Invalid login id or password.", models.FailureUnauthorized},
	MsgInvalidRefreshToken:   {"Invalid or expired refresh token.", models.FailureUnauthorized},
	MsgPasswordReset:         {"Password reset successfully.", models.FailureNone},
	MsgInvalidSecurityAnswer: {"Security question or answer is incorrect.", models.FailureInvalidInput},
	MsgResetFailed:           {"Something went wrong. Please try after sometime.", models.FailureWriteFailed},
}

// Text returns the literal shown to clients
func (m Message) Text() string {
	return messages[m].text
}

// Kind returns the failure kind carried by the message
func (m Message) Kind() models.FailureKind {
	return messages[m].kind
}

func (m Message) String() string {
	return m.Text()
}
