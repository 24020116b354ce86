package response_models

import "userhub/internal/models/db_models"

type NotificationPreferencesResponse struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	Sms   bool `json:"sms"`
}

// AccountResponse carries everything a client may see about an account.
// There is deliberately no field for the password hash.
type AccountResponse struct {
	ID                      string                          `json:"id"`
	Email                   string                          `json:"email"`
	Name                    string                          `json:"name"`
	PushToken               *string                         `json:"push_token"`
	NotificationPreferences NotificationPreferencesResponse `json:"notification_preferences"`
	CreatedAt               int64                           `json:"created_at"`
	UpdatedAt               int64                           `json:"updated_at"`
}

type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

type PreferencesUpdateResponse struct {
	ID                      string                          `json:"id"`
	NotificationPreferences NotificationPreferencesResponse `json:"notification_preferences"`
	UpdatedAt               int64                           `json:"updated_at"`
}

func ToAccountResponse(account *db_models.Account) AccountResponse {
	return AccountResponse{
		ID:                      account.ID.String(),
		Email:                   account.Email,
		Name:                    account.Name,
		PushToken:               account.PushToken,
		NotificationPreferences: ToPreferencesResponse(account.Preferences),
		CreatedAt:               account.CreatedAt,
		UpdatedAt:               account.UpdatedAt,
	}
}

// ToPreferencesResponse renders a missing preferences row as the defaults.
func ToPreferencesResponse(prefs *db_models.NotificationPreference) NotificationPreferencesResponse {
	if prefs == nil {
		return NotificationPreferencesResponse{Email: true, Push: true, Sms: false}
	}
	return NotificationPreferencesResponse{
		Email: prefs.Email,
		Push:  prefs.Push,
		Sms:   prefs.Sms,
	}
}
