package users

import "time"

// Role define el rol del usuario.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User representa a un usuario (adoptante o administrador del refugio).
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string // único
	Password  string // hash bcrypt, nunca se serializa
	Role      Role

	// IDs de mascotas de las que es dueño.
	Pets []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
