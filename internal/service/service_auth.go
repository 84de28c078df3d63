// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rhoconnect-go/internal/crypto"
	"github.com/MKhiriev/rhoconnect-go/internal/store"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

// authService is the concrete implementation of AuthService.
// It verifies mobile user credentials against the users table, with
// passwords stored as argon2id hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and checks the stored password hashes.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository. The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// SeedUser creates a user with the given credentials. An existing login is
// left untouched so restarts of the demo server are idempotent.
func (a *authService) SeedUser(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{Login: login, PasswordHash: hash})
	switch {
	case errors.Is(err, store.ErrLoginAlreadyExists):
		a.logger.Debug().Str("login", login).Msg("seed user already exists")
		return nil
	case err != nil:
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	a.logger.Info().Str("login", login).Msg("seed user created")
	return nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	ok, err := a.hasher.Verify(password, foundUser.PasswordHash)
	if err != nil {
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Warn().Uint("id", foundUser.ID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) bool {
	login, _ := credentials["login"].(string)
	password, _ := credentials["password"].(string)

	_, err := a.Login(ctx, login, password)
	return err == nil
}
