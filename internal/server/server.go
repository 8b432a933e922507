package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"agratem/internal/exchange"
	"agratem/internal/pricing"
)

// Server exposes the pricing engine over HTTP. The engine itself is
// transport-agnostic; everything here is request plumbing.
type Server struct {
	app     *fiber.App
	pricing *pricing.Service
	exch    *exchange.Exchanger
	logger  *zap.Logger
}

func New(svc *pricing.Service, exch *exchange.Exchanger, logger *zap.Logger) *Server {
	s := &Server{
		pricing: svc,
		exch:    exch,
		logger:  logger,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			logger.Error("request failed",
				zap.String("path", c.Path()),
				zap.Error(err))
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(requestid.New())
	app.Use(fiberlogger.New())

	api := app.Group("/api")
	api.Post("/quotes", s.handleCreateQuote)
	api.Get("/packages", s.handleListPackages)
	api.Get("/prices", s.handleListPrices)
	api.Get("/prices/export", s.handleExportCSV)
	api.Get("/prices/export.xlsx", s.handleExportExcel)
	api.Post("/prices/import", s.handleImport)

	s.app = app
	return s
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}
