package user

type Status string

const (
	StatusActive   Status = "Activo"
	StatusInactive Status = "Inactivo"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// DefaultRole is given to residents registered without an explicit role.
const DefaultRole = "Propietario"
