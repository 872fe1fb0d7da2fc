package user

// UpdateUserRequest carries the mutable user fields. Nil pointers leave the
// column untouched.
type UpdateUserRequest struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	IsEmployee      *bool
	AnnualLeaveDays *float64
	PasswordHash    *string
}

// UserResponse is the API projection of a user.
type UserResponse struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	IsEmployee      bool    `json:"is_employee"`
	IsStaff         bool    `json:"is_staff"`
	IsSuperuser     bool    `json:"is_superuser"`
	AnnualLeaveDays float64 `json:"annual_leave_days"`
}

// ToResponse maps the entity to its API projection.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		IsEmployee:      u.IsEmployee,
		IsStaff:         u.IsStaff,
		IsSuperuser:     u.IsSuperuser,
		AnnualLeaveDays: u.AnnualLeaveDays,
	}
}
