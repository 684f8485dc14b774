package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tabi/internal/models/db_models"
	"tabi/pkg/utils"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
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
	err := a.db.WithContext(ctx).First(&account, "email = ?", strings.ToLower(email)).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	account.Email = strings.ToLower(account.Email)
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

type memoryAccountRepository struct {
	store *memoryStore[db_models.Account, *db_models.Account]
}

func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{store: newMemoryStore[db_models.Account, *db_models.Account]()}
}

func (m *memoryAccountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	account.Email = strings.ToLower(account.Email)
	if existing, _ := m.FindByEmail(ctx, account.Email); existing != nil {
		return utils.ErrEmailAlreadyExists
	}
	m.store.insert(account)
	return nil
}

func (m *memoryAccountRepository) FindById(_ context.Context, id string) (*db_models.Account, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	account, ok := m.store.get(uid)
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (m *memoryAccountRepository) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	email = strings.ToLower(email)
	found := m.store.list(func(a *db_models.Account) bool { return a.Email == email })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
