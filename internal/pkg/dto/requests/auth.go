package requests

type SignUpUserData struct {
	Role           string `json:"role" validate:"required,oneof=patient doctor"`
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone"`
	Age            int    `json:"age" validate:"omitempty,gte=0,lte=130"`
	Specialization string `json:"specialization"`
	TherapyPlan    string `json:"therapyPlan"`
}

type SignUp struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	UserData SignUpUserData `json:"userData" validate:"required"`
}

type SignIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
