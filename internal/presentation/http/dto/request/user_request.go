package request

// UpdateUserRequest represents a user profile update request
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName  *string `json:"last_name" binding:"omitempty,min=2,max=255"`
	Photo     *string `json:"photo" binding:"omitempty,max=500"`
	Active    *bool   `json:"active"`
}

// UserFilterRequest represents user list filters
type UserFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// AssignRoleRequest assigns a role to a user by name
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,min=2,max=50"`
}
