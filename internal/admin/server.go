package admin

import (
	"ShopBot/internal/core/ports"
	"ShopBot/internal/shared/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const pageSize = 20

// Deps is what the admin panel reads and writes.
type Deps struct {
	Users      ports.UserRepository
	Categories ports.CategoryRepository
	Products   ports.ProductRepository
	Orders     ports.OrderRepository
	Loyalty    ports.LoyaltyRepository
	Sellers    ports.SellerRepository
	Bus        ports.EventBus
	Hasher     ports.PasswordHasher

	// Now defaults to time.Now.
	Now func() time.Time
}

// Server is the admin web panel.
type Server struct {
	cfg  config.AdminConfig
	deps Deps
	echo *echo.Echo
	log  zerolog.Logger
}

// NewServer builds the panel and registers its routes.
func NewServer(cfg config.AdminConfig, deps Deps, baseLogger *zerolog.Logger) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("ADMIN_JWT_SECRET is not set")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	renderer, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse admin templates: %w", err)
	}

	s := &Server{
		cfg:  cfg,
		deps: deps,
		echo: echo.New(),
		log:  baseLogger.With().Str("component", "admin_panel").Logger(),
	}
	if cfg.PasswordHash == "" {
		s.log.Warn().Msg("ADMIN_PASSWORD_HASH is empty, nobody can log in")
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = NewValidator()
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	e := s.echo
	e.GET("/healthz", s.healthz)
	e.GET("/login", s.showLogin)
	e.POST("/login", s.login)
	e.GET("/logout", s.logout)

	g := e.Group("", s.requireAuth)
	g.GET("/", s.dashboard)

	g.GET("/orders", s.listOrders)
	g.GET("/orders/:id", s.showOrder)
	g.POST("/orders/:id/status", s.updateOrderStatus)

	g.GET("/products", s.listProducts)
	g.GET("/products/new", s.newProduct)
	g.POST("/products/new", s.createProduct)
	g.GET("/products/:id/edit", s.editProduct)
	g.POST("/products/:id/edit", s.updateProduct)

	g.GET("/categories", s.listCategories)
	g.POST("/categories", s.createCategory)
	g.POST("/categories/:id/subcategories", s.createSubcategory)

	g.GET("/customers", s.listCustomers)
	g.GET("/customers/:id", s.showCustomer)
	g.POST("/customers/:id/ban", s.setCustomerBan)

	g.GET("/sellers", s.listSellers)

	g.GET("/api/subcategories/:id", s.apiSubcategories)
}

// ServeHTTP lets the panel be mounted or tested without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start serves on the configured address until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("Starting admin panel")
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("admin panel failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info().Msg("Shutting down admin panel")
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := s.log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = s.log.Error().Err(v.Error)
			} else if v.Status >= http.StatusBadRequest {
				ev = s.log.Warn()
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("Admin request")
			return nil
		},
	})
}

// handleError renders errors as a page, or as JSON under /api.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	} else {
		s.log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled admin error")
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = c.JSON(code, echo.Map{"error": message})
		return
	}
	if rerr := s.render(c, code, "error.html", echo.Map{"Title": "Ошибка", "Code": code, "Message": message}); rerr != nil {
		s.log.Error().Err(rerr).Msg("Failed to render error page")
	}
}

func (s *Server) render(c echo.Context, code int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Authed"] = c.Get(contextAdmin) != nil
	return c.Render(code, name, data)
}
