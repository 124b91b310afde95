package models

// PublicUser is the external projection of a User record. It carries no
// credential material: the password hash and the security-question answer
// never leave the service.
type PublicUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    Role   `json:"role"`
}

// Public returns the external projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role,
	}
}

// Response is the uniform JSON envelope returned by every endpoint.
// Success and Message are always present; exactly one of the payload
// fields is populated depending on the operation.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// User is the created account returned by registration
	// and the profile view returned by login.
	User *PublicUser `json:"user,omitempty"`

	// Token is the signed bearer token returned by login.
	Token string `json:"token,omitempty"`

	// UserDetails is the full account list returned by the
	// administrative user listing.
	UserDetails []PublicUser `json:"userDetails,omitempty"`

	// UpdateUser is the merged record returned by a profile update.
	UpdateUser *PublicUser `json:"updateUser,omitempty"`

	// Query is the stored record returned by a contact-form submission.
	Query *Query `json:"query,omitempty"`

	// QueryDetails is the full submission list returned by the
	// administrative query listing.
	QueryDetails []Query `json:"queryDetails,omitempty"`
}
