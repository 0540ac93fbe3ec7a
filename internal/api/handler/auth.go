package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTokenTTL = 24 * time.Hour

// CreateSession issues an anonymous session: a fresh id plus a signed
// token the client may present when opening the WebSocket so reconnects
// keep the same session id.
func (h *Handler) CreateSession(c *gin.Context) {
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"anon_id": sessionID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(sessionTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"token":      token,
	})
}

// sessionIDFromRequest resolves the session id for a WebSocket upgrade:
// a valid token (query param or bearer header) keeps its id, anything
// else gets a fresh one.
func (h *Handler) sessionIDFromRequest(c *gin.Context) string {
	raw := c.Query("token")
	if raw == "" {
		raw = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if raw == "" {
		return uuid.NewString()
	}

	id, err := h.parseSessionToken(raw)
	if err != nil {
		return uuid.NewString()
	}
	return id
}

func (h *Handler) parseSessionToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(h.Cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	id, _ := claims["anon_id"].(string)
	if id == "" {
		return "", fmt.Errorf("session token missing anon_id")
	}
	return id, nil
}
