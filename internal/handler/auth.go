package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/middleware"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/session"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	DB         *gorm.DB
	Sessions   *session.Manager
	JWTSecret  string
	CookieName string
	Log        zerolog.Logger
}

func NewAuthHandler(db *gorm.DB, sessions *session.Manager, jwtSecret, cookieName string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		DB:         db,
		Sessions:   sessions,
		JWTSecret:  jwtSecret,
		CookieName: cookieName,
		Log:        log,
	}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// ShowSignup renders the signup form.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup creates a user from the email+password form and redirects to
// the login page.
func (h *AuthHandler) Signup(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	if err := util.ValidateEmail(email); err != nil {
		c.String(http.StatusBadRequest, "Invalid email address")
		return
	}
	// bcrypt truncates past 72 bytes
	if password == "" || len(password) > 72 {
		c.String(http.StatusBadRequest, "Invalid password")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		h.Log.Error().Err(err).Msg("signup lookup failed")
		c.String(http.StatusInternalServerError, "Signup failed, try again")
		return
	}
	if count > 0 {
		c.String(http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		h.Log.Error().Err(err).Msg("password hash failed")
		c.String(http.StatusInternalServerError, "Signup failed, try again")
		return
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := h.DB.Create(&user).Error; err != nil {
		h.Log.Error().Err(err).Msg("create user failed")
		c.String(http.StatusInternalServerError, "Signup failed, try again")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Login verifies credentials, opens a session and sets the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusUnauthorized, "Invalid credentials!")
			return
		}
		h.Log.Error().Err(err).Msg("login lookup failed")
		c.String(http.StatusInternalServerError, "Login failed, try again")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.String(http.StatusUnauthorized, "Invalid credentials!")
		return
	}

	s, err := h.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.Error().Err(err).Msg("create session failed")
		c.String(http.StatusInternalServerError, "Login failed, try again")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, s.ID, time.Until(s.ExpiresAt))
	if err != nil {
		h.Log.Error().Err(err).Msg("sign session token failed")
		c.String(http.StatusInternalServerError, "Login failed, try again")
		return
	}

	c.SetCookie(h.CookieName, token, int(time.Until(s.ExpiresAt).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout revokes the session (if any), clears the cookie and returns
// to the login page. Safe to call without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if tokenStr, err := c.Cookie(h.CookieName); err == nil && tokenStr != "" {
		if claims, err := util.ParseToken(h.JWTSecret, tokenStr); err == nil {
			if err := h.Sessions.Revoke(c.Request.Context(), claims.SessionID); err != nil {
				h.Log.Error().Err(err).Msg("revoke session failed")
			}
		}
	}
	c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// currentUser re-exports the middleware lookup for the other handlers.
func currentUser(c *gin.Context) (*models.User, bool) {
	return middleware.CurrentUser(c)
}
