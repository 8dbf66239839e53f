package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "brickvest-backend/internal/adapter/http"
	"brickvest-backend/internal/adapter/middleware"
	"brickvest-backend/internal/adapter/repository/mysql"
	"brickvest-backend/internal/config"
	"brickvest-backend/internal/infrastructure/cache"
	"brickvest-backend/internal/infrastructure/db"
	dealuc "brickvest-backend/internal/usecase/deal"
	"brickvest-backend/internal/usecase/decision"
	investmentuc "brickvest-backend/internal/usecase/investment"
	"brickvest-backend/internal/usecase/payment"
	"brickvest-backend/internal/usecase/request"
	useruc "brickvest-backend/internal/usecase/user"
	walletuc "brickvest-backend/internal/usecase/wallet"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	users := mysql.NewUserRepository(gdb)
	wallets := mysql.NewWalletRepository(gdb)
	deals := mysql.NewDealRepository(gdb)
	pendings := mysql.NewPendingRepository(gdb)
	investments := mysql.NewInvestmentRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	dealUC := dealuc.NewUsecase(deals)
	userUC := useruc.NewUsecase(users)
	investmentUC := investmentuc.NewUsecase(investments)
	requestUC := request.NewUsecase(deals, wallets, pendings)
	decisionUC := decision.NewUsecase(unit)
	walletUC := walletuc.NewUsecase(unit)
	paymentUC := payment.NewUsecase(unit, cfg.CheckoutBaseURL)

	h := httpadp.NewHandler()
	dealH := httpadp.NewDealHandler(dealUC)
	userH := httpadp.NewUserHandler(userUC)
	requestH := httpadp.NewRequestHandler(requestUC)
	decisionH := httpadp.NewDecisionHandler(decisionUC)
	investmentH := httpadp.NewInvestmentHandler(investmentUC)
	walletH := httpadp.NewWalletHandler(walletUC, paymentUC)
	webhookH := httpadp.NewWebhookHandler(paymentUC, rdb, cfg.WebhookSecret)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	// routes
	e.GET("/health", h.Health)
	e.POST("/webhooks/payment", webhookH.HandlePaymentWebhook)

	api := e.Group("/api/v1", middleware.Auth(cfg.JWTSecret))
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.GET("/me", userH.Me)

	api.GET("/deals", dealH.ListOpenDeals)
	api.GET("/deals/mine", dealH.ListMyDeals)
	api.GET("/deals/:deal_id", dealH.GetDeal)
	api.POST("/deals", dealH.CreateDeal, idemp)
	api.POST("/deals/:deal_id/investments", requestH.SubmitInvestment, idemp)
	api.POST("/deals/:deal_id/repayment", requestH.SubmitRepayment, idemp)
	api.GET("/requests", requestH.ListMyRequests)
	api.GET("/investments", investmentH.ListMyInvestments)

	api.GET("/wallet", walletH.GetWallet)
	api.POST("/wallet/deposits", walletH.Deposit, idemp)
	api.POST("/wallet/withdrawals", walletH.SubmitWithdrawal, idemp)
	api.POST("/wallet/checkout", walletH.Checkout, idemp)

	admin := api.Group("/admin")
	admin.GET("/pending-transactions", requestH.ListPending)
	admin.POST("/pending-transactions/:pending_id/decision", decisionH.DecidePending, idemp)
	admin.POST("/deals/:deal_id/decision", dealH.DecideDeal, idemp)
	admin.POST("/transactions/:tx_id/decision", walletH.DecideTransaction, idemp)
	admin.POST("/users/:user_id/verify", userH.VerifyUser, idemp)
	admin.POST("/users/:user_id/reject", userH.RejectUser, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
