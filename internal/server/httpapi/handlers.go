package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loginbox/loginbox/internal/common"
	"github.com/loginbox/loginbox/internal/server/auth"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userProjection is the safe account view returned by login and check-auth.
// The password hash never leaves the service.
type userProjection struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type dashboardProjection struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	MemberSince time.Time `json:"memberSince"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Authentication API Server is running!"})
}

func (s *Server) handleRegister(c *gin.Context) {

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	account, err := s.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		case errors.Is(err, common.ErrorPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists with this email"})
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	s.logger.Info(c.Request.Context(), "account registered", "account_id", account.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  account.ID,
	})
}

func (s *Server) handleLogin(c *gin.Context) {

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	account, token, err := s.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		case errors.Is(err, common.ErrorUnauthorized):
			// unknown email and wrong password read the same on purpose
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	cookieValue, err := auth.GenerateToken(token, s.secretKey, s.cookieValidity)
	if err != nil {
		s.service.Logout(token)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	s.setSessionCookie(c, cookieValue)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userProjection{ID: account.ID, Email: account.Email},
	})
}

func (s *Server) handleDashboard(c *gin.Context) {

	account, err := s.service.Dashboard(c.Request.Context(), s.sessionToken(c))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			s.logger.Error(c.Request.Context(), "dashboard failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to your dashboard!",
		"user": dashboardProjection{
			ID:          account.ID,
			Email:       account.Email,
			MemberSince: account.CreatedAt,
		},
	})
}

func (s *Server) handleLogout(c *gin.Context) {

	if token := s.sessionToken(c); token != "" {
		s.service.Logout(token)
	}

	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *Server) handleCheckAuth(c *gin.Context) {

	account, ok := s.service.CheckAuth(c.Request.Context(), s.sessionToken(c))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            userProjection{ID: account.ID, Email: account.Email},
	})
}

// sessionToken extracts and verifies the session cookie. A missing, tampered,
// or expired cookie reads as no session at all.
func (s *Server) sessionToken(c *gin.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	token, err := auth.GetSessionTokenFromToken(cookie, s.secretKey)
	if err != nil {
		return ""
	}

	return token
}

func (s *Server) setSessionCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, value, int(s.cookieValidity.Seconds()), "/", "", s.cookieSecure, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", s.cookieSecure, true)
}
