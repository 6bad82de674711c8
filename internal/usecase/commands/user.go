package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/pkg/clock"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/shared"
)

const (
	constraintUsername = "users_username_key"
	constraintEmail    = "users_email_key"
)

// PasswordHasher is satisfied by *password.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Whatsapp   string
	Department string
}

type UserPatchInput struct {
	Email      *string
	FullName   *string
	Whatsapp   *string
	Department *string
	Role       *string
	IsActive   *bool
}

// AdminSeed describes the account created on first start.
type AdminSeed struct {
	Username string
	Password string
	Email    string
	FullName string
	Whatsapp string
}

type UserCommands interface {
	// Register creates an active account with the user role.
	Register(ctx context.Context, in RegisterInput) (int64, error)
	Update(ctx context.Context, id int64, in UserPatchInput) error
	Deactivate(ctx context.Context, id int64) error
	DeactivateMany(ctx context.Context, ids []int64) (int64, error)
	// EnsureAdmin creates the seed admin unless the username already exists.
	EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error)
}

type userUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	hasher PasswordHasher
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock, hasher PasswordHasher) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk, hasher: hasher}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, in RegisterInput) (int64, error) {
	return uc.create(ctx, in, user.RoleUser)
}

func (uc *userUseCaseImpl) create(ctx context.Context, in RegisterInput, role user.Role) (int64, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return 0, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return 0, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return 0, err
	}
	profile := user.Profile{
		FullName:   in.FullName,
		Whatsapp:   in.Whatsapp,
		Department: in.Department,
	}
	// validate before hashing
	if _, err = user.NewUser(username, email, "", profile, role, uc.clock.Now()); err != nil {
		return 0, err
	}

	hash, err := uc.hasher.Hash(pw.Value())
	if err != nil {
		return 0, errs.Wrap(err, "failed to hash password")
	}
	u, err := user.NewUser(username, email, hash, profile, role, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			return userWriteErr(derr)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *userUseCaseImpl) Update(ctx context.Context, id int64, in UserPatchInput) error {
	var patch user.Patch
	patch.FullName = in.FullName
	patch.Whatsapp = in.Whatsapp
	patch.Department = in.Department
	patch.IsActive = in.IsActive
	if in.Email != nil {
		email, err := user.NewEmail(*in.Email)
		if err != nil {
			return err
		}
		patch.Email = &email
	}
	if in.Role != nil {
		role, err := user.NewRole(strings.TrimSpace(*in.Role))
		if err != nil {
			return err
		}
		patch.Role = &role
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Users().FindByID(ctx, tx.DB(), id)
		if derr != nil {
			return userWriteErr(derr)
		}
		if derr = u.Apply(patch, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Users().Update(ctx, tx.DB(), u); derr != nil {
			return userWriteErr(derr)
		}
		return nil
	})
}

func (uc *userUseCaseImpl) Deactivate(ctx context.Context, id int64) error {
	n, err := uc.DeactivateMany(ctx, []int64{id})
	if err != nil {
		if errs.Is(err, registry.ErrEmptyIDs) {
			return user.ErrUserNotFound
		}
		return err
	}
	if n == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (uc *userUseCaseImpl) DeactivateMany(ctx context.Context, ids []int64) (int64, error) {
	ids, err := registry.DedupeIDs(ids)
	if err != nil {
		return 0, err
	}

	var n int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed, derr := tx.Users().Deactivate(ctx, tx.DB(), ids, uc.clock.Now())
		if derr != nil {
			return derr
		}
		n = changed
		return nil
	})
	return n, err
}

func (uc *userUseCaseImpl) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	if seed.Username == "" || seed.Password == "" {
		return false, nil
	}

	_, err := uc.uow.CommandReads().UserByUsername(ctx, seed.Username)
	if err == nil {
		return false, nil
	}
	if !errs.Is(err, errs.ErrNotFound) {
		return false, err
	}

	id, err := uc.create(ctx, RegisterInput{
		Username:   seed.Username,
		Email:      seed.Email,
		Password:   seed.Password,
		FullName:   seed.FullName,
		Whatsapp:   seed.Whatsapp,
		Department: "Administration",
	}, user.RoleAdmin)
	if err != nil {
		// another instance may have seeded concurrently
		if errs.Is(err, user.ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}

	slog.Info("seeded admin account", "user_id", id, "username", seed.Username)
	return true, nil
}

func userWriteErr(err error) error {
	switch {
	case errs.Is(err, errs.ErrConflict):
		if infra.ConstraintOf(err) == constraintEmail {
			return user.ErrEmailTaken
		}
		if infra.ConstraintOf(err) == constraintUsername {
			return user.ErrUsernameTaken
		}
		return err
	case errs.Is(err, errs.ErrNotFound):
		return user.ErrUserNotFound
	}
	return err
}
