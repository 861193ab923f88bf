package usecases

import (
	"context"

	"waitline/internal/domain/user"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "email", cmd.Email)

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Generic error so callers cannot probe which emails exist.
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("password verification failed", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID())

	return &LoginResult{
		UserID:       existing.ID(),
		Email:        existing.Email().String(),
		Name:         existing.Name(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
