package main

import (
	"till-backend/internal/auth"
	"till-backend/internal/config"
	"till-backend/internal/database"
	"till-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	db, err := database.Open(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal(err)
	}

	app := newApp(cfg, db, logger)

	logger.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatal(err)
	}
}

func newApp(cfg *config.Config, db *gorm.DB, logger *logrus.Logger) *fiber.App {
	engine := reconcile.NewEngine(
		reconcile.NewGormStore(db),
		logger,
		reconcile.WithStoreTimeout(cfg.StoreTimeout),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"status":  reconcile.StatusError,
					"message": e.Message,
				})
			}
			logger.WithError(err).Error("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  reconcile.StatusError,
				"message": "Internal server error",
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowCredentials: true,
	}))

	api := app.Group("/api")
	api.Use(auth.SessionMiddleware(cfg))

	// Session
	api.Post("/auth/login", auth.LoginHandler(cfg, db, logger))
	api.Post("/auth/logout", auth.LogoutHandler(cfg))
	api.Get("/auth/me", auth.MeHandler())

	// The engine reports missing sessions in its own envelope.
	api.Post("/reconcile", reconcile.ReconcileHandler(engine))

	api.Get("/records/export", auth.RequireAuth(), reconcile.ExportHandler(engine))

	return app
}
