package models

type ViolationKind string

const (
	ViolationKindError   ViolationKind = "error"
	ViolationKindWarning ViolationKind = "warning"
)

// Violation is one failure or warning reported by conftest for the
// required tags policy.
type Violation struct {
	Message string
	Kind    ViolationKind
}

func (v Violation) IsWarning() bool {
	return v.Kind == ViolationKindWarning
}
