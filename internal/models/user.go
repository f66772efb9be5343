package models

// Role distinguishes the four kinds of canteen accounts. It gates which
// endpoints a caller is expected to use; there is no cryptographic
// enforcement behind it.
type Role string

const (
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleCook    Role = "cook"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleCook, RoleAdmin:
		return true
	}
	return false
}

// User is an account stored in the users table. Students may carry a
// parent_id pointing at a user with role=parent; the invariant is enforced
// by the services, not the schema.
type User struct {
	ID          int64   `db:"id" json:"id"`
	Email       string  `db:"email" json:"email"`
	Password    string  `db:"password" json:"-"`
	Role        Role    `db:"role" json:"role"`
	Surname     *string `db:"surname" json:"surname"`
	Name        *string `db:"name" json:"name"`
	Patronymic  *string `db:"patronymic" json:"patronymic"`
	Birthdate   *string `db:"birthdate" json:"birthdate"`
	ClassNumber *int64  `db:"class_number" json:"class_number"`
	ClassLetter *string `db:"class_letter" json:"class_letter"`
	ParentID    *int64  `db:"parent_id" json:"parent_id"`
}

// UserSummary is the admin projection of a user. The password and
// birthdate never leave the server through this view.
type UserSummary struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Role        Role    `json:"role"`
	Surname     *string `json:"surname"`
	Name        *string `json:"name"`
	Patronymic  *string `json:"patronymic"`
	ClassNumber *int64  `json:"class_number"`
	ClassLetter *string `json:"class_letter"`
	ParentID    *int64  `json:"parent_id"`
}

// ChildSummary is the projection returned to a parent listing their
// linked children.
type ChildSummary struct {
	ID          int64   `json:"id"`
	Surname     *string `json:"surname"`
	Name        *string `json:"name"`
	Patronymic  *string `json:"patronymic"`
	ClassNumber *int64  `json:"class_number"`
	ClassLetter *string `json:"class_letter"`
	Email       string  `json:"email"`
}

// Summary converts a full user record into the admin projection.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		Surname:     u.Surname,
		Name:        u.Name,
		Patronymic:  u.Patronymic,
		ClassNumber: u.ClassNumber,
		ClassLetter: u.ClassLetter,
		ParentID:    u.ParentID,
	}
}

// Child converts a student record into the parent-facing projection.
func (u User) Child() ChildSummary {
	return ChildSummary{
		ID:          u.ID,
		Surname:     u.Surname,
		Name:        u.Name,
		Patronymic:  u.Patronymic,
		ClassNumber: u.ClassNumber,
		ClassLetter: u.ClassLetter,
		Email:       u.Email,
	}
}
