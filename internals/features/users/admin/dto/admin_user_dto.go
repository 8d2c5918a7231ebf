package dto

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	AdminID     string `json:"admin_id"`
	AdminEmail  string `json:"admin_email"`
	AdminRole   string `json:"admin_role"`
}
