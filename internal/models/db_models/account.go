package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	PushToken    *string
	Preferences  *NotificationPreference `gorm:"foreignKey:UserID"`
}
