package dummydb

import (
	"github.com/trezcool/edulearn/core/user"
)

type accountRepository struct {
	db *accountTable
}

var _ user.Repository = (*accountRepository)(nil) // interface compliance check

func NewAccountRepository(db *DB) user.Repository {
	return &accountRepository{db: db.account}
}

// CreateAccount adds acc, replacing any account with the same email.
func (repo *accountRepository) CreateAccount(acc user.Account) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]user.Account, 0, len(repo.db.rows)+1)
	for _, a := range repo.db.rows {
		if a.Email != acc.Email {
			rows = append(rows, a)
		}
	}
	repo.db.rows = append(rows, acc)
	return nil
}

func (repo *accountRepository) QueryAllAccounts() ([]user.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	accounts := make([]user.Account, len(repo.db.rows))
	copy(accounts, repo.db.rows)
	return accounts, nil
}

func (repo *accountRepository) GetAccountByEmail(email string) (user.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, a := range repo.db.rows {
		if a.Email == email {
			return a, nil
		}
	}
	return user.Account{}, user.ErrNotFound
}
