package seed

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultAdminPassword = "admin123"

func int64ptr(v int64) *int64 { return &v }

// Runは初期データを投入する。
// 商品・カテゴリは空のときだけ、管理者は同じemailが無いときだけ作る。
func Run(
	ctx context.Context,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	hasher auth.PasswordHasher,
	cfg config.Config,
) error {
	if err := seedCatalog(ctx, products, categories); err != nil {
		return err
	}
	return seedAdmin(ctx, users, hasher, cfg)
}

func seedCatalog(ctx context.Context, products repository.ProductRepository, categories repository.CategoryRepository) error {
	existing, err := products.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list products")
	}
	if len(existing) == 0 {
		initial := []model.Product{
			{ID: "p1", Name: "Audifonos inalambricos Logitech G733", Price: 59990, Description: "Audífonos RGB, cómodos.", CategoryID: int64ptr(1)},
			{ID: "p2", Name: "Kumara K552", Price: 36990, Description: "Teclado mecánico resistente.", CategoryID: int64ptr(1)},
			{ID: "p3", Name: "Razer Viper V3", Price: 99990, Description: "Mouse con sensor de alta precisión.", CategoryID: int64ptr(1)},
			{ID: "p4", Name: "Monitor 144Hz 24\"", Price: 94990, Description: "Monitor FullHD 144Hz con Freesync", CategoryID: int64ptr(2)},
		}
		for _, p := range initial {
			if _, err := products.Create(ctx, p); err != nil {
				return errors.Wrapf(err, "seed product %s", p.ID)
			}
		}
	}

	cats, err := categories.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list categories")
	}
	if len(cats) == 0 {
		for _, c := range []model.Category{
			{ID: 1, Name: "Periféricos"},
			{ID: 2, Name: "Monitores"},
			{ID: 3, Name: "Ropa"},
		} {
			if _, err := categories.Create(ctx, c); err != nil {
				return errors.Wrapf(err, "seed category %d", c.ID)
			}
		}
	}

	return nil
}

func seedAdmin(ctx context.Context, users repository.UserRepository, hasher auth.PasswordHasher, cfg config.Config) error {
	if _, err := users.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "find admin")
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	admin := &model.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create admin")
	}

	if cfg.AdminPassword == defaultAdminPassword {
		log.WithField("email", cfg.AdminEmail).
			Warn("admin seeded with the default password; set ADMIN_PASSWORD")
	} else {
		log.WithField("email", cfg.AdminEmail).Info("admin seeded")
	}

	return nil
}
