package db_models

import "github.com/google/uuid"

// NotificationPreference is owned 1:1 by an Account. A missing row means
// the defaults below until the first write.
type NotificationPreference struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Email  bool      `gorm:"default:true"`
	Push   bool      `gorm:"default:true"`
	Sms    bool      `gorm:"default:false"`
}
