package domain

import "time"

type UserRole string

const (
	RoleResident       UserRole = "resident"
	RoleSecurity       UserRole = "security"
	RoleManagement     UserRole = "management"
	RoleAppAdmin       UserRole = "app_admin"
	RoleAdministration UserRole = "administration"
)

// IsAdminRole reports whether the role may manage facilities, review
// booking requests and administer user credentials.
func IsAdminRole(r UserRole) bool {
	return r == RoleAppAdmin || r == RoleManagement || r == RoleAdministration
}

type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email" validate:"required,email"`
	PasswordHash       string    `json:"-"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone,omitempty"`
	Role               UserRole  `json:"role"`
	UnitID             *int64    `json:"unit_id,omitempty"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}

type Unit struct {
	ID        int64     `json:"id"`
	Block     string    `json:"block,omitempty"`
	Number    string    `json:"number" validate:"required"`
	OwnerName string    `json:"owner_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ResetRequestStatus string

const (
	ResetPending  ResetRequestStatus = "pending"
	ResetApproved ResetRequestStatus = "approved"
)

// PasswordResetRequest is raised by a resident who lost access and is
// resolved when an administrator sets a new password for the account.
type PasswordResetRequest struct {
	ID         int64              `json:"id"`
	UserID     int64              `json:"user_id"`
	Status     ResetRequestStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	ResolvedAt *time.Time         `json:"resolved_at,omitempty"`
}
