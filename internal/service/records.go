package service

import (
	"errors"
	"log/slog"

	"github.com/edututor-ai/backend/internal/domain/account"
	"github.com/edututor-ai/backend/internal/classify"
	"github.com/edututor-ai/backend/internal/store"
)

var (
	// ErrUsernameTaken is returned when registering a username that
	// already belongs to an account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when login fails to match an
	// account. It deliberately does not say which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// RecordService owns the generic record ingest path plus the account
// operations built on top of it.
type RecordService struct {
	store  store.Store
	logger *slog.Logger
}

func NewRecordService(s store.Store, logger *slog.Logger) *RecordService {
	return &RecordService{store: s, logger: logger}
}

// All returns every stored record as one flattened list: accounts first,
// then quiz results, then encouragements.
func (rs *RecordService) All() ([]map[string]any, error) {
	return rs.store.GetAll()
}

// Create classifies an arbitrary record by its shape and appends it to
// the matching collection. The caller gets the record back unchanged.
func (rs *RecordService) Create(record map[string]any) (map[string]any, classify.Kind, error) {
	kind := classify.Classify(record)
	if err := rs.store.Append(kind, record); err != nil {
		return nil, kind, err
	}
	rs.logger.Info("record created", "kind", kind.String())
	return record, kind, nil
}

// Register creates a new account after checking the username is free.
// Uniqueness is a full scan over stored accounts.
func (rs *RecordService) Register(username, email, password string, role account.Role) (*account.Account, error) {
	all, err := rs.store.GetAll()
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		name, _ := r["username"].(string)
		roleVal, _ := r["role"].(string)
		if roleVal != "" && name == username {
			return nil, ErrUsernameTaken
		}
	}

	acct, err := account.New(username, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := rs.store.Append(classify.KindAccount, acct.Record()); err != nil {
		return nil, err
	}
	rs.logger.Info("account registered", "user_id", acct.ID, "role", string(acct.Role))
	return acct, nil
}

// Login matches username and password against stored accounts.
func (rs *RecordService) Login(username, password string) (map[string]any, error) {
	all, err := rs.store.GetAll()
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		roleVal, _ := r["role"].(string)
		if roleVal == "" {
			continue
		}
		name, _ := r["username"].(string)
		pass, _ := r["password"].(string)
		if name == username && pass == password {
			return r, nil
		}
	}
	return nil, ErrInvalidCredentials
}
