package models

type RegisterRequest struct {
	FullName               string `json:"fullName" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Password               string `json:"password" validate:"required,min=6"`
	Nationality            string `json:"nationality" validate:"required"`
	PassportID             string `json:"passportId" validate:"required"`
	PhoneNumber            string `json:"phoneNumber" validate:"required"`
	EmergencyContactName   string `json:"emergencyContactName" validate:"required"`
	EmergencyContactNumber string `json:"emergencyContactNumber" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type VerificationStatusResponse struct {
	Status string `json:"status"`
}
