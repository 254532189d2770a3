package handler // handler package contains authentication handlers

import (
	"database/sql" // sql.ErrNoRows signals an invalid refresh token
	"errors"       // errors.Is checks sentinel values
	"net/http"     // http defines status codes
	"strings"      // strings normalizes input

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/config"     // config carries token TTLs and the signing secret
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository" // repository holds the data access layer
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/utils"      // utils signs tokens and verifies passwords
	"github.com/labstack/echo/v4"                                     // echo provides the web context and JSON helpers
)

// accountRoles is the closed set accepted at registration.  COMPANY accounts
// own departments; CUSTOMER accounts book slots.
var accountRoles = map[string]bool{
	"COMPANY":  true,
	"CUSTOMER": true,
}

// AuthHandler serves registration, login and session management.
type AuthHandler struct {
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
	Cfg    config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *repository.UserRepo, tokens *repository.TokenRepo, cfg config.Config) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Cfg: cfg}
}

// userView is the public projection of an account; the password hash never
// leaves the handler layer.
type userView struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserView(u repository.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Register handles POST /v1/auth/register.  A duplicate email answers 409; a
// role outside the closed set answers 400.
func (h *AuthHandler) Register(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	if name == "" || email == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name, email and password are required"})
	}
	if len(body.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "password must be at least 8 characters"})
	}
	role := strings.ToUpper(strings.TrimSpace(body.Role))
	if role == "" {
		role = "CUSTOMER"
	}
	if !accountRoles[role] {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid role"})
	}

	id, err := h.Users.Create(c.Request().Context(), name, email, body.Password, role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already registered"})
		}
		c.Logger().Errorf("register: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create account"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("register reload: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create account"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "account created", "user": toUserView(u)})
}

// Login handles POST /v1/auth/login.  Wrong email and wrong password produce
// the same 401 so the endpoint does not confirm which emails exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	u, err := h.Users.GetByEmail(c.Request().Context(), body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "login failed"})
	}
	if !u.IsActive {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}
	if !utils.VerifyPassword(u.PasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	return h.issueSession(c, u, "logged in")
}

// Refresh handles POST /v1/auth/refresh.  The presented token is rotated: it
// is revoked in the same flow that mints its replacement, so each refresh
// token works exactly once.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "refresh_token is required"})
	}

	hash := utils.HashRefreshRaw(body.RefreshToken)
	userID, err := h.Tokens.ValidateRefresh(c.Request().Context(), hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid refresh token"})
		}
		c.Logger().Errorf("refresh: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "refresh failed"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil || !u.IsActive {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(c.Request().Context(), hash); err != nil {
		c.Logger().Errorf("refresh revoke: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "refresh failed"})
	}

	return h.issueSession(c, u, "token refreshed")
}

// Logout handles POST /v1/auth/logout and revokes the presented refresh
// token.  An unknown token still answers 200; logout is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "refresh_token is required"})
	}
	if err := h.Tokens.RevokeByHash(c.Request().Context(), utils.HashRefreshRaw(body.RefreshToken)); err != nil {
		c.Logger().Errorf("logout: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "logout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// Me handles GET /v1/auth/me and returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "account not found"})
		}
		c.Logger().Errorf("me: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load account"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "account fetched", "user": toUserView(u)})
}

// UpdateProfile handles PUT /v1/auth/me.  Absent fields keep their stored
// values; a new email colliding with another account answers 409.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	cur, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "account not found"})
		}
		c.Logger().Errorf("update profile: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load account"})
	}

	name := cur.Name
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		name = strings.TrimSpace(*body.Name)
	}
	email := cur.Email
	if body.Email != nil && strings.TrimSpace(*body.Email) != "" {
		email = strings.TrimSpace(*body.Email)
	}

	if err := h.Users.UpdateProfile(c.Request().Context(), userID, name, email); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already registered"})
		}
		c.Logger().Errorf("update profile: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}
	fresh, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("update profile reload: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load account"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated", "user": toUserView(fresh)})
}

// issueSession mints an access/refresh token pair for an account and stores
// the refresh token hash.
func (h *AuthHandler) issueSession(c echo.Context, u repository.User, message string) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("sign access token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not issue tokens"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		c.Logger().Errorf("mint refresh token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not issue tokens"})
	}
	if err := h.Tokens.StoreRefresh(c.Request().Context(), u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		c.Logger().Errorf("store refresh token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not issue tokens"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":       message,
		"user":          toUserView(u),
		"access_token":  access.Token,
		"expires_at":    access.Exp,
		"refresh_token": refresh.Raw,
	})
}
