package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"care-companion/config"
	_ "care-companion/docs" // Swagger docs
	assistantHTTP "care-companion/internal/assistant/delivery/http"
	"care-companion/internal/assistant/ondevice"
	"care-companion/internal/assistant/router"
	assistantUC "care-companion/internal/assistant/usecase"
	careHTTP "care-companion/internal/carerecord/delivery/http"
	"care-companion/internal/carerecord/repository/sqlite"
	careUC "care-companion/internal/carerecord/usecase"
	"care-companion/internal/httpserver"
	"care-companion/internal/middleware"
	"care-companion/internal/model"
	"care-companion/internal/reminder"
	"care-companion/pkg/connectivity"
	"care-companion/pkg/gcalendar"
	"care-companion/pkg/gemini"
	pkgLog "care-companion/pkg/log"
)

// @title       Care Companion API
// @description Elderly-care assistant with hybrid on-device/cloud query routing, care records, and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Care Companion...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	careRepo, err := sqlite.New(ctx, db, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize database: %v", err)
		return
	}

	// 4. Reminder scheduler
	scheduler := reminder.New(logger, nil)
	defer scheduler.Close()

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Care-record domain
	careUsecase := careUC.New(logger, careRepo, scheduler, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)
	careHandler := careHTTP.New(logger, careUsecase)

	// 7. Assistant domain
	defaultMode := model.AIMode(cfg.Assistant.DefaultMode)
	checker := connectivity.NewHTTPChecker(cfg.Assistant.ProbeURL, cfg.Assistant.ProbeTimeout)
	routingEngine := router.New(checker, defaultMode, logger)

	onDevice := ondevice.New()

	cloud := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		APIURL:      cfg.Gemini.APIURL,
		Timeout:     cfg.Gemini.Timeout,
		RatePerSec:  cfg.Gemini.RatePerSec,
		Temperature: cfg.Gemini.Temperature,
		MaxTokens:   cfg.Gemini.MaxTokens,
	})
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, cloud queries will fall back on-device")
	}

	assistantUsecase := assistantUC.New(logger, routingEngine, onDevice, cloud, careUsecase)
	assistantHandler := assistantHTTP.New(logger, assistantUsecase)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.Auth.APIKey)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
		CareHandler:      careHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
