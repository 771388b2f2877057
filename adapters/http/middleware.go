package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/auth"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

const (
	GinContextKeyActorID = "actorID"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// actor id for handlers.
func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, err := actorFromRequest(c, jwtSvc)
		if err != nil {
			log.Debug("Rejected unauthenticated request", zap.String("path", c.FullPath()), zap.Error(err))
			appErr := apperror.NewUnauthorized(err.Error(), nil)
			c.AbortWithStatusJSON(http.StatusUnauthorized, appErr.ToJSON())
			return
		}

		c.Set(GinContextKeyActorID, actorID)
		c.Next()
	}
}

func actorFromRequest(c *gin.Context, jwtSvc *auth.JWTService) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", errors.New("invalid token format")
	}

	claims, err := jwtSvc.ValidateToken(tokenString)
	if err != nil {
		return "", errors.New("invalid or expired token")
	}
	return claims.ActorID, nil
}

// GetActorIDFromGinContext returns "" when no authenticated actor is attached.
func GetActorIDFromGinContext(c *gin.Context) string {
	v, ok := c.Get(GinContextKeyActorID)
	if !ok {
		return ""
	}
	actorID, _ := v.(string)
	return actorID
}

func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.Error(err))...)
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.JSON(status, apperror.NewInternal("unhandled error", err).ToJSON())
	}
}
