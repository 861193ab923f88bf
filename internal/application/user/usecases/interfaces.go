package usecases

import "context"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues signed token pairs for authenticated users.
type TokenService interface {
	Generate(userID uint) (*TokenPair, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
