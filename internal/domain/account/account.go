package account

import (
	"errors"

	"github.com/edututor-ai/backend/internal/id"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
)

// Account is an immutable user record. The password is stored verbatim, for
// parity with the data this store inherits; there is no credential hashing
// anywhere in the system.
type Account struct {
	ID       string
	Username string
	Email    string
	Password string
	Role     Role
}

func New(username, email, password string, role Role) (*Account, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	if role != RoleStudent && role != RoleEducator {
		return nil, errors.New("role must be student or educator")
	}
	return &Account{
		ID:       id.GenerateID(),
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}, nil
}

// Record converts the account to the untyped shape the store persists.
// Field names are the wire names the classifier keys on.
func (a *Account) Record() map[string]any {
	return map[string]any{
		"user_id":  a.ID,
		"username": a.Username,
		"email":    a.Email,
		"password": a.Password,
		"role":     string(a.Role),
	}
}
