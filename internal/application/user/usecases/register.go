package usecases

import (
	"context"

	"waitline/internal/domain/user"
	vo "waitline/internal/domain/user/valueobjects"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterResult struct {
	UserID uint
	Email  string
	Name   string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())

	return &RegisterResult{
		UserID: newUser.ID(),
		Email:  newUser.Email().String(),
		Name:   newUser.Name(),
	}, nil
}
