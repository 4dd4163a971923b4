package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/seed"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envはローカル用。無ければ環境変数だけで動く。
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	//ストア生成（プロセスで一度だけ作り、グローバルには置かない）
	productRepo := infraRepo.NewProductMemoryRepository()
	categoryRepo := infraRepo.NewCategoryMemoryRepository()
	userRepo := infraRepo.NewUserMemoryRepository()
	cartRepo := infraRepo.NewCartMemoryRepository()
	orderRepo := infraRepo.NewOrderMemoryRepository()
	reviewRepo := infraRepo.NewReviewMemoryRepository()

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(10)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, auth.AccessTokenTTL)

	//初期データ投入
	if err := seed.Run(context.Background(), productRepo, categoryRepo, userRepo, hasher, cfg); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, issuer, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	profileUC := auth.NewProfileUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo, reviewRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartRepo, productRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC, profileUC)
	productH := handler.NewProductHandler(productUC)
	categoryH := handler.NewCategoryHandler(categoryUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)
	reviewH := handler.NewReviewHandler(reviewUC)

	e := server.New(cfg, authH, productH, categoryH, cartH, orderH, reviewH)

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("listening")

	if err := server.Start(e, addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
