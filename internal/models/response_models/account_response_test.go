package response_models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"userhub/internal/models/db_models"
)

func TestToPreferencesResponse_MissingRowMeansDefaults(t *testing.T) {
	prefs := ToPreferencesResponse(nil)
	assert.Equal(t, NotificationPreferencesResponse{Email: true, Push: true, Sms: false}, prefs)
}

func TestToAccountResponse_NeverLeaksPasswordHash(t *testing.T) {
	account := &db_models.Account{
		BaseModel: db_models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: 100,
			UpdatedAt: 200,
		},
		Name:         "A",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$secret",
	}

	response := ToAccountResponse(account)

	raw, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password_hash")

	assert.Equal(t, account.ID.String(), response.ID)
	assert.Nil(t, response.PushToken)
	assert.Equal(t, int64(100), response.CreatedAt)
	assert.Equal(t, int64(200), response.UpdatedAt)
}
