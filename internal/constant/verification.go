package constant

// VerificationStatus is the outcome of a public certificate lookup.
type VerificationStatus string

const (
	VerificationValid        VerificationStatus = "valid"
	VerificationInactive     VerificationStatus = "inactive"
	VerificationNotFound     VerificationStatus = "not_found"
	VerificationInvalidInput VerificationStatus = "invalid_input"
	VerificationError        VerificationStatus = "error"
)
