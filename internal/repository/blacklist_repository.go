package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fuzumoe/shoplist-api/internal/model"
)

// BlacklistRepository defines operations for the token revocation ledger.
type BlacklistRepository interface {
	// Add records a revoked token string. The insert is idempotent:
	// a duplicate token never creates a second row.
	Add(token *model.BlacklistedToken) error

	// IsBlacklisted returns true if the exact token string has been revoked.
	IsBlacklisted(token string) (bool, error)

	// RemoveExpired deletes ledger entries revoked before the cutoff.
	// Pruning is an optimization only; expiry alone invalidates tokens.
	RemoveExpired(before time.Time) error
}

type blacklistRepo struct {
	db *gorm.DB
}

// NewBlacklistRepo creates a new GORM-backed BlacklistRepository.
func NewBlacklistRepo(db *gorm.DB) BlacklistRepository {
	return &blacklistRepo{db: db}
}

func (r *blacklistRepo) Add(token *model.BlacklistedToken) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoNothing: true,
		}).
		Create(token).
		Error
}

func (r *blacklistRepo) IsBlacklisted(token string) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.BlacklistedToken{}).
		Where("token = ?", token).
		Count(&count).
		Error
	return count > 0, err
}

func (r *blacklistRepo) RemoveExpired(before time.Time) error {
	return r.db.
		Where("revoked_at < ?", before).
		Delete(&model.BlacklistedToken{}).
		Error
}
