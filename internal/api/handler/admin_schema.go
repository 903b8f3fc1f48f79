package handler

// --- Request types for the admin user-directory endpoints ---

type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	Role     string `json:"role"     validate:"required"`
}

type createRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=32"`
}

type roleToUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	RoleName string `json:"role_name" validate:"required"`
}

type updatePasswordRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=64"`
}
