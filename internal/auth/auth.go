package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/delacruz-wedding/wedding-api/internal/config"
)

// TokenDuration is how long an admin session cookie lives. Tokens past
// their halfway point are renewed by the middleware.
const TokenDuration = 24 * time.Hour

// AuthHandler guards the admin console. There is exactly one shared
// credential pair, configured at deploy time; a successful login is
// exchanged for a JWT cookie so the password is only sent once per
// session.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Body struct {
		Username string `json:"username" required:"true" doc:"Admin username"`
		Password string `json:"password" required:"true" doc:"Admin password"`
	}
}

type LoginResponse struct {
	SetCookie string `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	if !h.credentialsMatch(input.Body.Username, input.Body.Password) {
		return nil, huma.Error401Unauthorized("Invalid username or password")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	}

	res := &LoginResponse{SetCookie: cookie.String()}
	res.Body.Message = "Logged in"
	return res, nil
}

func (h *AuthHandler) credentialsMatch(username, password string) bool {
	if h.cfg.AdminUsername == "" || h.cfg.AdminPassword == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
	return userOK && passOK
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
