package auth

import (
	"context"
	"errors"

	"app/internal/domain/model"
	"app/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// GET /api/auth/profile のレスポンス。ハッシュは含めない。
type ProfileOutput struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Role    model.Role `json:"role"`
}

type ProfileUsecase struct {
	userRepo repository.UserRepository
}

// DI
func NewProfileUsecase(userRepo repository.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

func (u *ProfileUsecase) Execute(ctx context.Context, userID int64) (ProfileOutput, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ProfileOutput{}, ErrUserNotFound
		}
		return ProfileOutput{}, err
	}

	return ProfileOutput{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}, nil
}
