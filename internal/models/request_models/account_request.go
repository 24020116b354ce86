package request_models

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Pointer fields distinguish "absent" from "zero value"; the service rejects
// a payload where every field is absent.
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	PushToken *string `json:"push_token"`
}

type UpdatePreferencesRequest struct {
	Email *bool `json:"email"`
	Push  *bool `json:"push"`
	Sms   *bool `json:"sms"`
}
