package analyzer

import "fmt"

// Accepted resume text length bounds in characters. Callers validate
// before invoking Analyze; the core itself tolerates boundary-length
// input without failing.
const (
	MinResumeLength = 100
	MaxResumeLength = 50000
)

// InputLengthError reports resume text outside the accepted bounds.
type InputLengthError struct {
	Length int
}

func (e *InputLengthError) Error() string {
	if e.Length < MinResumeLength {
		return fmt.Sprintf("resume text too short: %d characters (minimum %d)", e.Length, MinResumeLength)
	}
	return fmt.Sprintf("resume text too long: %d characters (maximum %d)", e.Length, MaxResumeLength)
}

// ReferenceDataError reports missing required reference data. A silently
// wrong alignment score is worse than an explicit failure, so this is
// fatal to the call rather than degrading.
type ReferenceDataError struct {
	Missing string
}

func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("reference data unavailable: %s", e.Missing)
}

// ValidateLength checks resume text against the accepted bounds.
func ValidateLength(resumeText string) error {
	if len(resumeText) < MinResumeLength || len(resumeText) > MaxResumeLength {
		return &InputLengthError{Length: len(resumeText)}
	}
	return nil
}
