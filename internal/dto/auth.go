package dto

// LoginRequest carries the submitted credentials. The dashboard login form
// posts url-encoded fields, so the form tags matter here.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// LoginFailureResponse reports a failed login back to the login form.
type LoginFailureResponse struct {
	Message string `json:"message"`
}
