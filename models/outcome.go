package models

// Outcome is the result of reading and classifying a conftest results file.
type Outcome struct {
	Violations    []Violation
	ErrorOccurred bool
	ErrorMessage  string
}

func (o Outcome) ViolationsCount() int {
	return len(o.Violations)
}

func (o Outcome) Passed() bool {
	return len(o.Violations) == 0 && !o.ErrorOccurred
}
