package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
}

// DI
func NewReviewUsecase(reviewRepo repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo}
}

// ratingは型不問で受けて数値に強制する（数値化できなければ0）
type AddReviewInput struct {
	Rating  interface{}
	Comment string
}

func (u *ReviewUsecase) AddReview(ctx context.Context, userID int64, productID string, in AddReviewInput) (model.Review, error) {
	review, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    coerceRating(in.Rating),
		Comment:   in.Comment,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return review, nil
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return reviews, nil
}

func coerceRating(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
