// Package accountrepo persists accounts (principals with their password
// hash) with GORM.
package accountrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// AccountDTO is the row of the accounts table. Emails are stored lower case
// under a unique index.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role         string    `gorm:"type:varchar(16);not null"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *principal.Account) AccountDTO {
	p := a.Principal()
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Email:        p.Email(),
		Role:         p.Role().String(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func toDomain(dto AccountDTO) (*principal.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := principal.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return principal.RestoreAccount(kernel.RestoreEntity(id, dto.CreatedAt, dto.UpdatedAt), dto.Email, role, dto.PasswordHash)
}
