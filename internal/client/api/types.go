package api

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Profile is the user object returned by the profile endpoint and embedded
// in auth responses. Optional attributes are pointers, matching the wire
// format.
type Profile struct {
	ID            int     `json:"id"`
	FullName      string  `json:"fullName"`
	Email         string  `json:"email"`
	PhoneNumber   *string `json:"phoneNumber"`
	Sex           *string `json:"sex"`
	City          *string `json:"city"`
	StateProvince *string `json:"stateProvince"`
	PostalCode    *string `json:"postalCode"`
	CountryCode   *string `json:"countryCode"`
	Locale        *string `json:"locale"`
	Timezone      *string `json:"timezone"`
}

// AuthResponse is returned by login, register, and refresh. Register may
// omit the token and carry only a "verify your email" message instead.
type AuthResponse struct {
	Token   string   `json:"token"`
	Message string   `json:"message,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

// Acknowledgment is the generic {message} response body.
type Acknowledgment struct {
	Message string `json:"message"`
}
