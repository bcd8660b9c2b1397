package model

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken represents a revoked bearer token. The full serialized
// token string is the uniqueness key: two tokens with identical payload and
// signature collide, which is what makes re-use of a stolen token detectable.
type BlacklistedToken struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	Token     string         `gorm:"type:varchar(500);uniqueIndex;not null" json:"token"`
	RevokedAt time.Time      `gorm:"autoCreateTime" json:"revoked_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the name of the table for BlacklistedToken.
func (BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

// BlacklistedTokenDTO is the data transfer object for a revoked token.
type BlacklistedTokenDTO struct {
	Token     string    `json:"token"`
	RevokedAt time.Time `json:"revoked_at"`
}

// ToDTO converts a BlacklistedToken to its DTO form.
func (b *BlacklistedToken) ToDTO() *BlacklistedTokenDTO {
	return &BlacklistedTokenDTO{
		Token:     b.Token,
		RevokedAt: b.RevokedAt,
	}
}

// BlacklistedTokenFromString constructs a BlacklistedToken for a token string.
func BlacklistedTokenFromString(token string) *BlacklistedToken {
	return &BlacklistedToken{
		Token:     token,
		RevokedAt: time.Now(),
	}
}
