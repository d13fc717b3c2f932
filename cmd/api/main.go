package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "peerlend/internal/adapter/http"
	mw "peerlend/internal/adapter/middleware"
	"peerlend/internal/adapter/repository/mysql"
	"peerlend/internal/config"
	"peerlend/internal/infrastructure/cache"
	"peerlend/internal/infrastructure/db"
	"peerlend/internal/infrastructure/storage"
	alertuc "peerlend/internal/usecase/alert"
	authuc "peerlend/internal/usecase/auth"
	loanuc "peerlend/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	userRepo := mysql.NewUserRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	alertRepo := mysql.NewAlertRepository(gdb)
	uw := mysql.NewGormUoW(gdb)

	secret := []byte(cfg.JWTSecret)
	alertUC := alertuc.NewUsecase(alertRepo)
	authUC := authuc.NewUsecase(userRepo, secret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	loanUC := loanuc.NewUsecase(loanRepo, userRepo, uw, alertUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()
	e.Static("/uploads", store.Dir())

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	loanH := httpadp.NewLoanHandler(loanUC, store)
	alertH := httpadp.NewAlertHandler(alertUC)
	calcH := httpadp.NewCalculatorHandler()

	// public routes
	e.GET("/health", h.Health)
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)
	e.GET("/loans/unassigned", loanH.ListUnassigned)
	e.POST("/calculators/emi", calcH.EMI)
	e.POST("/calculators/eligibility", calcH.Eligibility)
	e.POST("/calculators/cibil", calcH.CreditScore)

	// bearer-protected routes
	authed := e.Group("", mw.Auth(secret, userRepo))
	authed.GET("/auth/me", authH.Me)
	authed.POST("/loans", loanH.CreateLoan)
	authed.GET("/loans/my/:user_id", loanH.ListMine)
	authed.GET("/loans/:loan_id", loanH.GetLoan)
	authed.POST("/loans/apply", loanH.Apply)
	authed.PATCH("/loans/:loan_id/status", loanH.UpdateStatus)
	authed.DELETE("/loans/:loan_id", loanH.Delete)
	authed.GET("/alerts/:user_id", alertH.List)
	authed.PATCH("/alerts/:alert_id/read", alertH.MarkRead)

	// payment submissions must carry an Idempotency-Key so client retries replay
	idemTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	authed.POST("/loans/:loan_id/payments", loanH.RecordPayment, mw.Idempotency(rdb, idemTTL))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
