package auth

// RegisterRequest is the submitted registration form.
type RegisterRequest struct {
	Username string `validate:"min=4,max=25"`
	Email    string `validate:"min=5,max=50"`
	Password string `validate:"required,eqfield=Confirm"`
	Confirm  string
}
