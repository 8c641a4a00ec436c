package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrHostNotFound = errors.New("host not found")

type Host struct {
	ID uint `gorm:"primaryKey"`

	TeamID    uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	KeyDigest string `gorm:"uniqueIndex;size:64;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type HostDAO struct {
	db *gorm.DB
}

func NewHostDAO(db *gorm.DB) *HostDAO {
	return &HostDAO{
		db: db,
	}
}

func (d *HostDAO) Insert(ctx context.Context, host Host) (Host, error) {
	result := d.db.WithContext(ctx).Create(&host)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Host{}, ErrKeyDigestTaken
		}

		return Host{}, result.Error
	}

	return host, nil
}

func (d *HostDAO) FindByID(ctx context.Context, id uint) (Host, error) {
	var host Host

	result := d.db.WithContext(ctx).First(&host, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Host{}, ErrHostNotFound
		}

		return Host{}, result.Error
	}

	return host, nil
}

func (d *HostDAO) FindByKeyDigest(ctx context.Context, digest string) (Host, error) {
	var host Host

	result := d.db.WithContext(ctx).First(&host, "key_digest = ?", digest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Host{}, ErrHostNotFound
		}

		return Host{}, result.Error
	}

	return host, nil
}

func (d *HostDAO) FindByTeamID(ctx context.Context, teamID uint) ([]Host, error) {
	var hosts []Host

	result := d.db.WithContext(ctx).Where("team_id = ?", teamID).Order("id").Find(&hosts)
	if result.Error != nil {
		return nil, result.Error
	}

	return hosts, nil
}
