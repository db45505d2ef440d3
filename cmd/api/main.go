package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loandesk-backend/internal/adapter/http"
	idemp "loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/adapter/repository/mysql"
	"loandesk-backend/internal/config"
	"loandesk-backend/internal/infrastructure/cache"
	"loandesk-backend/internal/infrastructure/db"
	"loandesk-backend/internal/secrets"
	appuc "loandesk-backend/internal/usecase/application"
	exportuc "loandesk-backend/internal/usecase/export"
	visituc "loandesk-backend/internal/usecase/visit"
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
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	sec := secrets.NewStore(cfg.ApprovalPassword, cfg.ExportPassword, cfg.SalesPasswords)

	appRepo := mysql.NewApplicationRepository(gdb)
	visitRepo := mysql.NewVisitRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	appUC := appuc.NewUsecase(appRepo, tx, sec, appuc.Options{
		ImportantFields:   cfg.ImportantFields,
		LockRejectedEdits: cfg.LockRejectedEdits,
	})
	visitUC := visituc.NewUsecase(visitRepo, tx, sec)
	exportUC := exportuc.NewUsecase(appRepo, sec)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC)
	visitH := httpadp.NewVisitHandler(visitUC)
	exportH := httpadp.NewExportHandler(exportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api", idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.GET("/applications", appH.ListApplications)
	api.GET("/applications/:id", appH.GetApplication)
	api.POST("/applications", appH.CreateApplication)
	api.PUT("/applications/:id", appH.UpdateApplication)
	api.PATCH("/applications/:id", appH.UpdateApplication)
	api.PATCH("/applications/:id/approve", appH.ApproveApplication)
	api.PATCH("/applications/:id/reject", appH.RejectApplication)
	api.POST("/verify-edit", appH.VerifyEdit)
	api.GET("/export/excel", exportH.ExportExcel)

	api.GET("/builder-visits", visitH.ListVisits)
	api.POST("/builder-visits", visitH.CreateVisit)
	api.PATCH("/builder-visits/:id/approve", visitH.ApproveVisit)
	api.PATCH("/builder-visits/:id/reject", visitH.RejectVisit)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
