package dto

type LoginInput struct {
	Username string
	Password string
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type SignupOutput struct {
	Username string
}

type SessionOutput struct {
	Username string
}
