package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/dabform/dabform/internal/config"
	"github.com/dabform/dabform/internal/domain/carrier"
	"github.com/dabform/dabform/internal/domain/employer"
	"github.com/dabform/dabform/internal/domain/insurer"
	"github.com/dabform/dabform/internal/domain/patient"
	"github.com/dabform/dabform/internal/domain/report"
	"github.com/dabform/dabform/internal/domain/user"
	"github.com/dabform/dabform/internal/platform/auth"
	"github.com/dabform/dabform/internal/platform/db"
	"github.com/dabform/dabform/internal/platform/f1000"
	"github.com/dabform/dabform/internal/platform/icd"
	"github.com/dabform/dabform/internal/platform/middleware"
)

const version = "1.0.0"

func runServer(cfg *config.Config, logger zerolog.Logger) error {
	formLoc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Services
	userSvc := user.NewService(user.NewUserRepoPG(pool))
	patientSvc := patient.NewService(patient.NewPatientRepoPG(pool))
	insurerSvc := insurer.NewService(insurer.NewInsurerRepoPG(pool))
	carrierSvc := carrier.NewService(carrier.NewCarrierRepoPG(pool))
	employerSvc := employer.NewService(employer.NewEmployerRepoPG(pool))
	reportSvc := report.NewService(report.NewReportRepoPG(pool))

	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.TokenTTL())
	icdClient := icd.NewClient(icd.Config{
		ClientID:     cfg.ICDClientID,
		ClientSecret: cfg.ICDClientSecret,
		TokenURL:     cfg.ICDTokenURL,
		SearchURL:    cfg.ICDSearchURL,
		Language:     cfg.ICDLanguage,
	}, logger)
	if !icdClient.Enabled() {
		logger.Warn().Msg("ICD_CLIENT_ID/ICD_CLIENT_SECRET not set, diagnosis lookup disabled")
	}

	e := newEcho(cfg, logger, tokens.Config(userSvc.IsActive))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})
	e.GET("/health/db", db.HealthHandler(pool, db.PoolStatsOf(pool)))

	api := e.Group("/api")
	user.NewHandler(userSvc, tokens).RegisterRoutes(api)
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	insurer.NewHandler(insurerSvc).RegisterRoutes(api)
	carrier.NewHandler(carrierSvc).RegisterRoutes(api)
	employer.NewHandler(employerSvc).RegisterRoutes(api)
	report.NewHandler(reportSvc).RegisterRoutes(api)
	icd.NewHandler(icdClient).RegisterRoutes(api)

	fetcher := &f1000.ServiceFetcher{
		Location:  formLoc,
		Reports:   reportSvc,
		Patients:  patientSvc,
		Users:     userSvc,
		Employers: employerSvc,
		Carriers:  carrierSvc,
		Insurers:  insurerSvc,
	}
	f1000.NewHandler(fetcher, reportSvc, logger).RegisterRoutes(api)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

// newEcho builds the server with the global middleware chain. Routes are
// registered by the caller.
func newEcho(cfg *config.Config, logger zerolog.Logger, jwtCfg auth.JWTConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.RequestIDHeader},
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.Sanitize(logger))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	e.Use(auth.JWTMiddleware(jwtCfg))

	rl := middleware.DefaultRateLimitConfig()
	if cfg.RateLimitRPS > 0 {
		rl.RequestsPerSecond = cfg.RateLimitRPS
		rl.BurstSize = cfg.RateLimitBurst
	}
	rl.KeyFunc = rateLimitKey
	rl.Skipper = func(c echo.Context) bool { return strings.HasPrefix(c.Path(), "/health") }
	e.Use(middleware.RateLimit(rl))

	return e
}

// rateLimitKey buckets authenticated callers by account and everyone else
// by address.
func rateLimitKey(c echo.Context) string {
	if uid := auth.UserIDFromContext(c.Request().Context()); uid != "" {
		return "user:" + uid
	}
	return "ip:" + c.RealIP()
}
