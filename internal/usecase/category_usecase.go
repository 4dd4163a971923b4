package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	Name string
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return cats, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CreateCategoryInput) (model.Category, error) {
	if in.Name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name missing")
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{Name: in.Name})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return created, nil
}
