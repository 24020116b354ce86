package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"userhub/internal/models/db_models"
	"userhub/pkg/utils"
)

// AccountRepository is the persistence boundary. All provider error codes
// are decoded here; callers only ever see the sentinel errors in pkg/utils.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	CreateWithDefaultPreferences(ctx context.Context, account *db_models.Account) error
	UpdateAccountFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpsertPreferences(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*db_models.NotificationPreference, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).
		Preload("Preferences").
		First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	return &account, nil
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).
		Preload("Preferences").
		First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	return &account, nil
}

// CreateWithDefaultPreferences inserts the account and its default
// preferences row in one transaction. A duplicate email, including one lost
// to a concurrent registration race, comes back as ErrEmailAlreadyExists.
func (a *accountRepository) CreateWithDefaultPreferences(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ErrEmailAlreadyExists
			}
			return utils.ErrDatabaseError
		}

		prefs := &db_models.NotificationPreference{
			UserID: account.ID,
			Email:  true,
			Push:   true,
			Sms:    false,
		}
		if err := tx.Create(prefs).Error; err != nil {
			return utils.ErrDatabaseError
		}

		account.Preferences = prefs
		return nil
	})
}

func (a *accountRepository) UpdateAccountFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {

	result := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrAccountNotFound
	}

	return nil
}

// UpsertPreferences is a single atomic INSERT ... ON CONFLICT (user_id)
// DO UPDATE. On insert, unsupplied booleans take their defaults; on update,
// only the supplied fields are assigned.
func (a *accountRepository) UpsertPreferences(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*db_models.NotificationPreference, error) {

	row := db_models.NotificationPreference{
		UserID: userID,
		Email:  true,
		Push:   true,
		Sms:    false,
	}
	applyPreferenceFields(&row, fields)

	assignments := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		assignments[k] = v
	}
	assignments["updated_at"] = time.Now().Unix()

	err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	// The insert candidate is not the merged row on the conflict path.
	var prefs db_models.NotificationPreference
	if err := a.db.WithContext(ctx).First(&prefs, "user_id = ?", userID).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &prefs, nil
}

func applyPreferenceFields(row *db_models.NotificationPreference, fields map[string]interface{}) {
	if v, ok := fields["email"].(bool); ok {
		row.Email = v
	}
	if v, ok := fields["push"].(bool); ok {
		row.Push = v
	}
	if v, ok := fields["sms"].(bool); ok {
		row.Sms = v
	}
}
