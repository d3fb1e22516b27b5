package command

type RequestPasswordResetCommand struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordCommand struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}
