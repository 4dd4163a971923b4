package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// usecaseから返すHTTPステータス付きエラー
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	reviewRepo  repo.ReviewRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, reviewRepo repo.ReviewRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// POST /api/productos の入力DTO
type CreateProductInput struct {
	ID          string
	Name        string
	Price       int64
	Description string
	CategoryID  *int64
}

// PUT /api/productos/:id の入力DTO。
// nilのフィールドは変更しない（浅いマージ）。
type UpdateProductInput struct {
	Name        *string
	Price       *int64
	Description *string
	CategoryID  *int64
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return p, nil
}

// IDが無ければストアが採番する
func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	created, err := u.productRepo.Create(ctx, model.Product{
		ID:          in.ID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return created, nil
}

// 指定されたフィールドだけ上書きする
func (u *ProductUsecase) Update(ctx context.Context, id string, in UpdateProductInput) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return p, nil
}

// 商品を消すとその商品のレビューも消える
func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	if err := u.reviewRepo.DeleteByProductID(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return nil
}
