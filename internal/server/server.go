package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/handler"
	"github.com/grachmannico95/fintrack-be/internal/middleware"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// multipartOverhead is allowed on top of the upload limit for the form envelope.
const multipartOverhead = 1 << 20

type Handlers struct {
	Health      *handler.HealthHandler
	Import      *handler.ImportHandler
	Transaction *handler.TransactionHandler
	Category    *handler.CategoryHandler
	Suggestion  *handler.SuggestionHandler
	Budget      *handler.BudgetHandler
	Advisor     *handler.AdvisorHandler
}

type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	logger   *logger.Logger
	handlers Handlers
	ready    bool
}

func New(cfg *config.Config, log *logger.Logger, handlers Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	return &Server{
		echo:     e,
		cfg:      cfg,
		logger:   log,
		handlers: handlers,
	}
}

func (s *Server) Start() error {
	s.setup()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setup() {
	if s.ready {
		return
	}
	s.ready = true

	s.setupMiddleware()
	s.setupRoutes()
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{s.cfg.Server.CORSAllowOrigin},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.HeaderUserID,
			middleware.HeaderTraceID,
		},
		ExposeHeaders: []string{middleware.HeaderTraceID},
	}))
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	h := s.handlers
	auth := middleware.Identity()

	s.echo.GET("/health", h.Health.Check)

	var previewMiddleware []echo.MiddlewareFunc
	if limit, ok := uploadBodyLimit(s.cfg.Import.MaxUploadBytes); ok {
		previewMiddleware = append(previewMiddleware, echoMiddleware.BodyLimit(limit))
	}
	imports := s.echo.Group("/imports", auth)
	imports.POST("/preview", h.Import.Preview, previewMiddleware...)
	imports.POST("/commit", h.Import.Commit)
	imports.GET("/history", h.Import.History)

	transactions := s.echo.Group("/transactions", auth)
	transactions.GET("", h.Transaction.List)
	transactions.POST("", h.Transaction.Create)
	transactions.GET("/export", h.Transaction.Export)
	transactions.GET("/:id", h.Transaction.Get)
	transactions.PUT("/:id", h.Transaction.Update)
	transactions.DELETE("/:id", h.Transaction.Delete)

	s.echo.GET("/categories", h.Category.List, auth)

	suggestions := s.echo.Group("/suggestions", auth)
	suggestions.GET("/category", h.Suggestion.Category)
	suggestions.GET("/transaction/:id", h.Suggestion.ForTransaction)
	suggestions.POST("/apply/:id", h.Suggestion.Apply)
	suggestions.POST("/apply-bulk", h.Suggestion.ApplyBulk)

	budgets := s.echo.Group("/budgets", auth)
	budgets.GET("", h.Budget.List)
	budgets.POST("", h.Budget.Upsert)
	budgets.GET("/summary", h.Budget.Summary)
	budgets.PATCH("/:id", h.Budget.Update)
	budgets.DELETE("/:id", h.Budget.Delete)

	s.echo.POST("/chatbot/message", h.Advisor.Message, auth)
}

// uploadBodyLimit converts the upload limit to a BodyLimit size in KiB. A
// non-positive limit means uploads are not capped.
func uploadBodyLimit(maxUploadBytes int64) (string, bool) {
	if maxUploadBytes <= 0 {
		return "", false
	}
	return fmt.Sprintf("%dK", (maxUploadBytes+multipartOverhead+1023)/1024), true
}

func (s *Server) Handler() *echo.Echo {
	s.setup()
	return s.echo
}
