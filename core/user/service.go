package user

import (
	"net/mail"

	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

type (
	Repository interface {
		CreateAccount(acc Account) error
		QueryAllAccounts() ([]Account, error)
		GetAccountByEmail(email string) (Account, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate matches email and password against the credential table.
// Any mismatch yields ErrInvalidCredentials.
func (svc *Service) Authenticate(email, pwd string) (User, error) {
	acc, err := svc.repo.GetAccountByEmail(core.CleanString(email, true /* lower */))
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, errors.Wrap(err, "finding account by email")
	}
	if err = acc.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return acc.User, nil
}

func (svc *Service) QueryAll() ([]User, error) {
	accounts, err := svc.repo.QueryAllAccounts()
	if err != nil {
		return nil, errors.Wrap(err, "querying accounts")
	}
	users := make([]User, 0, len(accounts))
	for _, acc := range accounts {
		users = append(users, acc.User)
	}
	return users, nil
}

// StudentAddresses lists the e-mail addresses of every student account.
func (svc *Service) StudentAddresses() ([]mail.Address, error) {
	users, err := svc.QueryAll()
	if err != nil {
		return nil, err
	}
	var addrs []mail.Address
	for _, usr := range users {
		if usr.IsStudent() {
			addrs = append(addrs, mail.Address{Name: usr.Name, Address: usr.Email})
		}
	}
	return addrs, nil
}
