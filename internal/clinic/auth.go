package clinic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies an email/secret pair against the users collection. The
// returned user never carries the stored hash. A failed login writes nothing,
// audit trail included.
func (s *Service) Login(ctx context.Context, email, secret string) (AuthResult, error) {
	if err := s.wait(ctx); err != nil {
		return AuthResult{}, err
	}

	users, err := loadUsers(ctx, s.db)
	if err != nil {
		return AuthResult{}, err
	}

	var matched *User
	for i := range users {
		if users[i].Email == email {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(matched.PasswordHash), []byte(secret)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(matched.ID, matched.Role)
	if err != nil {
		return AuthResult{}, err
	}

	if err := s.audit.Append(ctx, matched.Name, ActionLogin, "Successful authentication"); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: matched.WithoutSecret(), Token: token}, nil
}

// Signup registers a new account. Email is unique across all users; a
// conflicting signup fails before anything is persisted.
func (s *Service) Signup(ctx context.Context, name, email, secret string, role Role) (AuthResult, error) {
	if err := s.wait(ctx); err != nil {
		return AuthResult{}, err
	}

	users, err := loadUsers(ctx, s.db)
	if err != nil {
		return AuthResult{}, err
	}

	for i := range users {
		if users[i].Email == email {
			return AuthResult{}, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash secret: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Role:         role,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := saveUsers(ctx, s.db, users); err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return AuthResult{}, err
	}

	details := fmt.Sprintf("New %s account created", user.Role)
	if err := s.audit.Append(ctx, user.Name, ActionSignup, details); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user.WithoutSecret(), Token: token}, nil
}
