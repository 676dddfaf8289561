package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"k8s-profile-api/internal/logger"
	"k8s-profile-api/internal/store"
)

// NewApp returns the fiber application with every route registered
func NewApp(s *store.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "k8s-profile-api",
		DisableStartupMessage: true,
	})
	app.Use(requestLogger)

	h := &Handlers{Store: s}

	app.Get("/health", HealthHandler)
	app.Get("/parameters", ParametersHandler)
	app.Post("/requests", h.GenerateHandler)
	app.Get("/requests", h.ListHandler)
	app.Get("/requests/:id", h.GetHandler)
	app.Delete("/requests/:id", h.DeleteHandler)

	return app
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logger.RequestLog(c.Method(), c.Path(), c.IP(), c.Response().StatusCode(), time.Since(start))
	return err
}

// Serve starts the API server on addr and blocks until it stops
func Serve(addr string, s *store.Store) error {
	app := NewApp(s)
	logger.Info("Starting profile API server on %s...", addr)
	return app.Listen(addr)
}
