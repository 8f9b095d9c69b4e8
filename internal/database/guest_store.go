package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiesta/internal/models"
	"fiesta/internal/sentinel"

	"gorm.io/gorm"
)

// GuestStore is the single storage handle for guest records.
type GuestStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGuestStore(db *gorm.DB) *GuestStore {
	return &GuestStore{db: db, now: time.Now}
}

// Create inserts g and then runs then inside the same transaction. The email
// unique index decides duplicates, so a second registration for the same
// address fails with sentinel.ErrDuplicateEmail before then is called. An
// error from then rolls the insert back.
func (s *GuestStore) Create(ctx context.Context, g *models.Guest, then func() error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("create guest %s: %w", g.Email, sentinel.ErrDuplicateEmail)
			}
			return fmt.Errorf("create guest: %w", err)
		}
		if then == nil {
			return nil
		}
		return then()
	})
}

func (s *GuestStore) FindByID(ctx context.Context, id string) (*models.Guest, error) {
	var g models.Guest
	if err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("guest %s: %w", id, sentinel.ErrNotFound)
		}
		return nil, err
	}
	return &g, nil
}

// List returns every guest in insertion order.
func (s *GuestStore) List(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.db.WithContext(ctx).Order("rowid").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

// Admit flips validated from false to true in one conditional UPDATE, so of
// two concurrent scans of the same code only one is granted.
func (s *GuestStore) Admit(ctx context.Context, id string) (models.Admission, error) {
	db := s.db.WithContext(ctx)

	res := db.Model(&models.Guest{}).
		Where("id = ? AND validated = ?", id, false).
		Updates(map[string]any{"validated": true, "validated_at": s.now()})
	if res.Error != nil {
		return models.Admission{}, fmt.Errorf("admit guest %s: %w", id, res.Error)
	}

	g, err := s.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Admission{Status: models.AdmissionInvalid}, nil
		}
		return models.Admission{}, err
	}

	if res.RowsAffected == 1 {
		return models.Admission{Status: models.AdmissionGranted, Guest: g}, nil
	}
	return models.Admission{Status: models.AdmissionAlreadyAdmitted, Guest: g}, nil
}

// Delete removes the guest with id. Unknown ids are not an error; the
// return value reports whether a row was removed.
func (s *GuestStore) Delete(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Guest{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete guest %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Ping checks the underlying connection.
func (s *GuestStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
