package appointment

import "github.com/devansh21640/Kanoonwise-sub002/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// LiveStatuses are the statuses that hold a slot against new bookings.
var LiveStatuses = []string{string(StatusPending), string(StatusAccepted)}

// transitions is the full set of lawyer-driven edges. Everything not listed
// is terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}
