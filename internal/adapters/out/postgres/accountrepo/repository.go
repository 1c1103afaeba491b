package accountrepo

import (
	"context"
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add inserts a new account. A taken email is principal.ErrEmailTaken.
func (r *GormAccountRepository) Add(ctx context.Context, account *principal.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return principal.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*principal.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "account", id.String(), "id = ?", id.Bytes())
}

// GetByEmail matches the email case-insensitively.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*principal.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, "account", email, "email = ?", email)
}

func (r *GormAccountRepository) first(ctx context.Context, param string, key any, where string, arg any) (*principal.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, where, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
