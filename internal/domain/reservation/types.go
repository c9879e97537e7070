package reservation

type Status string

const (
	StatusPending   Status = "Pendiente"
	StatusApproved  Status = "Aprobada"
	StatusRejected  Status = "Rechazada"
	StatusCompleted Status = "Completada"
)

// allowed status transitions; completion is a manual admin action.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCompleted},
	StatusApproved: {StatusCompleted},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
