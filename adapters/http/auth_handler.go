package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yun0-0514/dev-blog/internal/application/usecase/auth"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type AuthHandler struct {
	loginUseCase       *auth.LoginUseCase
	currentUserUseCase *auth.CurrentUserUseCase
	logger             logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, currentUserUC *auth.CurrentUserUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       loginUC,
		currentUserUseCase: currentUserUC,
		logger:             log,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
	})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	actorID := GetActorIDFromGinContext(c)
	if actorID == "" {
		c.Error(apperror.NewUnauthorized("actor id not found in context", nil))
		return
	}

	output, err := h.currentUserUseCase.Execute(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId": output.UserID,
		"email":  output.Email,
		"name":   output.Name,
	})
}
