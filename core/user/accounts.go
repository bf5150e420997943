package user

import "github.com/pkg/errors"

type credential struct {
	user     User
	password string
}

// the only accounts able to log in
var credentials = []credential{
	{
		user:     User{ID: "1", Name: "John Doe", Email: "student@example.com", Role: RoleStudent},
		password: "password",
	},
	{
		user:     User{ID: "2", Name: "Admin User", Email: "admin@example.com", Role: RoleAdmin},
		password: "admin",
	},
}

// DefaultAccounts returns the fixed credential table with hashed passwords.
func DefaultAccounts() ([]Account, error) {
	accounts := make([]Account, 0, len(credentials))
	for _, cred := range credentials {
		acc := Account{User: cred.user}
		if err := acc.SetPassword(cred.password); err != nil {
			return nil, errors.Wrapf(err, "hashing password of %s", cred.user.Email)
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}
