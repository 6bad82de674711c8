package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-approval/internal/domain/auth"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/clock"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

// TokenIssuer is satisfied by *jwt.Service.
type TokenIssuer interface {
	GenerateToken(userID int64, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type LoginResult struct {
	UserID    int64
	Role      user.Role
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, clk clock.Clock, hasher PasswordHasher, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		clock:  clk,
		hasher: hasher,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(username, password)
	if err != nil {
		return nil, err
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %d has a stored role %q", snap.ID, snap.Role)
	}

	token, err := a.tokens.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID, a.clock.Now()); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", snap.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("transaction failed during login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    snap.ID,
		Role:      role,
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// same answer as a wrong password
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, user.ErrUserInactive
	}

	return snap, nil
}
