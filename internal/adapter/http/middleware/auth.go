package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/infrastructure/config"
	"assessoria_licitacoes/pkg"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxOperator = "operator"

var errNoSubject = errors.New("token has no subject")

// Claims identifies the operator of the dispute room. Subject carries the operator id.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for op.
func GenerateToken(op entities.Operator, cfg config.AuthConfig, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(time.Duration(cfg.TokenExpireHours) * time.Hour)

	claims := Claims{
		Name: op.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates a signed token and returns the operator it names.
func ParseToken(tokenString string, cfg config.AuthConfig) (entities.Operator, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Operator{}, err
	}
	if !token.Valid {
		return entities.Operator{}, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject == "" {
		return entities.Operator{}, errNoSubject
	}

	name := claims.Name
	if name == "" {
		name = claims.Subject
	}
	return entities.Operator{ID: claims.Subject, DisplayName: name}, nil
}

// AuthMiddleware requires a Bearer token and stores the operator on the gin and request contexts.
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		op, err := ParseToken(parts[1], cfg)
		if err != nil {
			logger.Debug(c.Request.Context(), "[auth][middleware] token rejected", "err", err)
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ctxOperator, op)
		ctx := context.WithValue(c.Request.Context(), logger.OperatorIDKey, op.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetOperator returns the authenticated operator, or the zero value on public routes.
func GetOperator(c *gin.Context) entities.Operator {
	if v, ok := c.Get(ctxOperator); ok {
		if op, ok := v.(entities.Operator); ok {
			return op
		}
	}
	return entities.Operator{}
}

func unauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
