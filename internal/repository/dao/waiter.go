package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrWaiterNotFound = errors.New("waiter not found")

type Waiter struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"size:100;not null"`
	KeyDigest string `gorm:"uniqueIndex;size:64;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type WaiterDAO struct {
	db *gorm.DB
}

func NewWaiterDAO(db *gorm.DB) *WaiterDAO {
	return &WaiterDAO{
		db: db,
	}
}

func (d *WaiterDAO) Insert(ctx context.Context, waiter Waiter) (Waiter, error) {
	result := d.db.WithContext(ctx).Create(&waiter)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Waiter{}, ErrKeyDigestTaken
		}

		return Waiter{}, result.Error
	}

	return waiter, nil
}

func (d *WaiterDAO) FindByID(ctx context.Context, id uint) (Waiter, error) {
	var waiter Waiter

	result := d.db.WithContext(ctx).First(&waiter, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Waiter{}, ErrWaiterNotFound
		}

		return Waiter{}, result.Error
	}

	return waiter, nil
}

func (d *WaiterDAO) FindByKeyDigest(ctx context.Context, digest string) (Waiter, error) {
	var waiter Waiter

	result := d.db.WithContext(ctx).First(&waiter, "key_digest = ?", digest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Waiter{}, ErrWaiterNotFound
		}

		return Waiter{}, result.Error
	}

	return waiter, nil
}

func (d *WaiterDAO) FindAll(ctx context.Context) ([]Waiter, error) {
	var waiters []Waiter

	result := d.db.WithContext(ctx).Order("id").Find(&waiters)
	if result.Error != nil {
		return nil, result.Error
	}

	return waiters, nil
}
