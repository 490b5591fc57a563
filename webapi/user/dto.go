package user

// UpdateProfileInput is the request body for profile updates. Omitted fields
// are left untouched; an empty string clears the field.
type UpdateProfileInput struct {
	Names   *string `json:"names,omitempty" validate:"omitempty,max=100"`
	Area    *string `json:"area,omitempty" validate:"omitempty,max=100"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
}
