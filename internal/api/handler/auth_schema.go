package handler

// Required fields are pointers: presence is what the contract checks, so a
// supplied zero value (empty string) must not be mistaken for an absent one.

type registerRequest struct {
	Name     *string `json:"name"     validate:"required"`
	Email    *string `json:"email"    validate:"required"`
	Password *string `json:"password" validate:"required"`
	Role     *string `json:"role"     validate:"required"`
}

type loginRequest struct {
	Email    *string `json:"email"    validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type logoutResponse struct {
	Message string `json:"message"`
}
