// Package server exposes the analysis pipeline over HTTP: a liveness check
// and a single document-upload analysis endpoint.
package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/marklytic/marksheet-analyzer/internal/analyzer"
	"github.com/marklytic/marksheet-analyzer/internal/config"
)

// shutdownTimeout bounds how long in-flight requests may run once shutdown
// has been requested.
const shutdownTimeout = 5 * time.Second

// Server wires the analyzer service into a fiber application.
type Server struct {
	app *fiber.App
	svc *analyzer.Service
	cfg *config.Config
}

// New creates the HTTP server with its routes registered.
func New(cfg *config.Config, svc *analyzer.Service) *Server {
	app := fiber.New(fiber.Config{
		AppName:               cfg.ServerName,
		BodyLimit:             int(cfg.MaxFileSize),
		DisableStartupMessage: true,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	s := &Server{app: app, svc: svc, cfg: cfg}
	s.registerRoutes()
	return s
}

// App exposes the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// registerRoutes sets up the two endpoints of the invocation surface.
func (s *Server) registerRoutes() {
	s.app.Post("/status-check", s.handleStatusCheck)
	s.app.Post("/get-analysis-data", s.handleAnalysis)
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.cfg.Address())
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down HTTP server...")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	case err := <-errCh:
		return err
	}
}

// handleStatusCheck is the liveness endpoint.
func (s *Server) handleStatusCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Students System Working.",
	})
}

// handleAnalysis accepts one marksheet PDF upload and returns the parsed
// record sequence plus the locations of the exported artifacts. Failures
// are reported as structured responses; the process never crashes on bad
// input.
func (s *Server) handleAnalysis(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("marksheet")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No PDF uploaded.",
		})
	}

	upload, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Cannot read uploaded file.",
		})
	}
	defer upload.Close()

	analysis, err := s.svc.AnalyzeUpload(upload)
	if err != nil {
		return c.Status(analysisStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	var results any = analysis.Records
	if analysis.Percentages != nil {
		results = analysis.Percentages
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Analysis completed.",
		"results":    results,
		"json_file":  analysis.JSONPath,
		"excel_file": analysis.WorkbookPath,
	})
}

// analysisStatus maps pipeline failures to HTTP status codes. Document
// problems are the client's fault; export failures are ours.
func analysisStatus(err error) int {
	switch {
	case errors.Is(err, analyzer.ErrSchemaUndetected), errors.Is(err, analyzer.ErrNoRecords):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, analyzer.ErrExport):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
