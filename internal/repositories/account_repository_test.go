package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"userhub/internal/models/db_models"
)

func TestApplyPreferenceFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
		want   db_models.NotificationPreference
	}{
		{
			name:   "no fields keeps defaults",
			fields: map[string]interface{}{},
			want:   db_models.NotificationPreference{Email: true, Push: true, Sms: false},
		},
		{
			name:   "single field",
			fields: map[string]interface{}{"sms": true},
			want:   db_models.NotificationPreference{Email: true, Push: true, Sms: true},
		},
		{
			name:   "all fields",
			fields: map[string]interface{}{"email": false, "push": false, "sms": true},
			want:   db_models.NotificationPreference{Email: false, Push: false, Sms: true},
		},
		{
			name:   "unknown keys ignored",
			fields: map[string]interface{}{"email": false, "bogus": true},
			want:   db_models.NotificationPreference{Email: false, Push: true, Sms: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := db_models.NotificationPreference{Email: true, Push: true, Sms: false}
			applyPreferenceFields(&row, tt.fields)
			assert.Equal(t, tt.want.Email, row.Email)
			assert.Equal(t, tt.want.Push, row.Push)
			assert.Equal(t, tt.want.Sms, row.Sms)
		})
	}
}
