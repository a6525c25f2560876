package middleware

import (
	"context"
	"net/http"
	"seatflow/pkg/logger"
	"seatflow/pkg/utils"
	"strconv"
	"strings"
	"time"

	jsonres "seatflow/pkg/response"

	"github.com/labstack/echo/v4"
)

// TokenValidator checks a session token against the Redis session store.
type TokenValidator interface {
	ValidateTokenFromRedis(ctx context.Context, token string) (string, error)
}

func bearerToken(c echo.Context) (string, *jsonres.Body) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		body := jsonres.Error("UNAUTHORIZED", "Missing authorization header", nil)
		return "", &body
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		body := jsonres.Error("UNAUTHORIZED", "Invalid authorization format", nil)
		return "", &body
	}

	return tokenParts[1], nil
}

func setIdentity(c echo.Context, claims *utils.AppClaims, token string) *jsonres.Body {
	expAt, err := claims.GetExpirationTime()
	if err != nil || time.Now().After(expAt.Time) {
		body := jsonres.Error("FORBIDDEN", "Token expired", nil)
		return &body
	}

	userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		logger.Error("Invalid user ID in token", err)
		body := jsonres.Error("FORBIDDEN", "Invalid user ID in token", nil)
		return &body
	}

	c.Set("user_id", uint(userIDUint))
	c.Set("role", claims.Role)
	c.Set("token", token)

	return nil
}

// AuthMiddleware validates the bearer JWT without touching Redis.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, errBody := bearerToken(c)
			if errBody != nil {
				return c.JSON(http.StatusUnauthorized, errBody)
			}

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			if errBody := setIdentity(c, claims, tokenString); errBody != nil {
				return c.JSON(http.StatusForbidden, errBody)
			}

			return next(c)
		}
	}
}

// AuthMiddlewareWithRedis validates the bearer JWT and requires the
// session to still exist in Redis, so logout revokes access immediately.
func AuthMiddlewareWithRedis(tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, errBody := bearerToken(c)
			if errBody != nil {
				return c.JSON(http.StatusUnauthorized, errBody)
			}

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				logger.Error("Failed to parse JWT", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			userID, err := tokenValidator.ValidateTokenFromRedis(ctx, tokenString)
			if err != nil {
				logger.Error("Token not found in Redis", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Token expired or invalid", nil,
				))
			}

			if userID != claims.UserID {
				logger.Error("UserID mismatch between JWT and Redis")
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			if errBody := setIdentity(c, claims, tokenString); errBody != nil {
				return c.JSON(http.StatusForbidden, errBody)
			}

			return next(c)
		}
	}
}

func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !strings.EqualFold(role, "admin") {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}

func SelfOrAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			loggedInUserID, ok := c.Get("user_id").(uint)
			if !ok {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "User not authenticated", nil,
				))
			}

			role, ok := c.Get("role").(string)
			if !ok {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Invalid role", nil,
				))
			}

			if strings.EqualFold(role, "admin") {
				return next(c)
			}

			requestedID, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, jsonres.Error(
					"BAD_REQUEST", "Invalid user ID", nil,
				))
			}

			if uint(requestedID) != loggedInUserID {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "You can only access your own data", nil,
				))
			}

			return next(c)
		}
	}
}
