// Package httpapi exposes the authentication operations over HTTP with JSON
// bodies and an HTTP-only session cookie.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loginbox/loginbox/internal/logging"
	"github.com/loginbox/loginbox/internal/server/accounts"
	"github.com/loginbox/loginbox/internal/server/config"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session_token"

type Server struct {
	address        string
	logger         logging.Logger
	service        *accounts.Service
	secretKey      []byte
	cookieValidity time.Duration
	cookieSecure   bool
	allowedOrigins map[string]struct{}
	router         *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, service *accounts.Service) *Server {
	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = struct{}{}
	}

	s := &Server{
		address:        cfg.EndpointAddrHTTP,
		logger:         l.With("module", "http_server"),
		service:        service,
		secretKey:      []byte(cfg.SecretKey),
		cookieValidity: cfg.SessionValidityDuration,
		cookieSecure:   cfg.CookieSecure,
		allowedOrigins: origins,
	}
	s.router = s.setupRouter()

	return s
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), s.corsMiddleware())

	router.GET("/", s.handleHealth)
	router.POST("/register", s.handleRegister)
	router.POST("/login", s.handleLogin)
	router.GET("/dashboard", s.handleDashboard)
	router.POST("/logout", s.handleLogout)
	router.GET("/check-auth", s.handleCheckAuth)

	return router
}

// Handler returns the HTTP handler; tests serve it directly via httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
