package models

// RegisterRequest is the JSON body of the registration endpoint.
// Role is accepted for wire compatibility with older clients but is
// ignored by the service: every new account starts as RoleUser.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Answer   string `json:"answer"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the JSON body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the JSON body of the password-recovery endpoint.
// Role defaults to "user" when omitted.
type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	Answer      string `json:"answer"`
	NewPassword string `json:"newPassword"`
	Role        string `json:"role,omitempty"`
}

// UpdateProfileRequest is the JSON body of the profile-update endpoint.
// Every field is optional: an absent or empty-string field means "keep the
// stored value", so partial updates never clear a field.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// SubmitQueryRequest is the JSON body of the public contact form.
type SubmitQueryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	QueryText string `json:"queryText"`
}
