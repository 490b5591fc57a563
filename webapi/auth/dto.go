package auth

// RegisterInput is the request body for account registration. Location
// fields are optional at signup; discovery simply skips users without them.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Names    string `json:"names,omitempty" validate:"max=100"`
	Area     string `json:"area,omitempty" validate:"max=100"`
	City     string `json:"city,omitempty" validate:"max=100"`
	Country  string `json:"country,omitempty" validate:"max=100"`
}

// LoginInput is the request body for authentication. Identity accepts a
// username or an email.
type LoginInput struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}
