package adoptions

import "time"

// Status define el estado de una solicitud de adopción.
// @Enum pending, approved, rejected, completed
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var allStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}

// AllStatuses devuelve una copia del enum.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Adoption vincula un usuario con una mascota.
// Invariante: el par (UserID, PetID) es único en el store.
type Adoption struct {
	ID string

	UserID string
	PetID  string

	Status Status

	// Solo tiene valor cuando Status == completed.
	AdoptionDate *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PairKey identifica el par (usuario, mascota).
func (a Adoption) PairKey() string {
	return a.UserID + "|" + a.PetID
}
