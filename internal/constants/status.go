package constants

type Status string

const (
	StatusOpen           Status = "OPEN"
	StatusInProgress     Status = "IN_PROGRESS"
	StatusReadyForReview Status = "READY_FOR_REVIEW"
	StatusDone           Status = "DONE"
)

// Statuses is the closed set of task statuses. Templates constrain movement
// between these values but can never introduce new ones.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusReadyForReview, StatusDone}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
