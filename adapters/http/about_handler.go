package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	aboutUC "github.com/yun0-0514/dev-blog/internal/application/usecase/about"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type AboutHandler struct {
	aboutUseCase *aboutUC.AboutUseCase
	logger       logger.Logger
}

func NewAboutHandler(uc *aboutUC.AboutUseCase, log logger.Logger) *AboutHandler {
	return &AboutHandler{
		aboutUseCase: uc,
		logger:       log,
	}
}

func (h *AboutHandler) GetAbout(c *gin.Context) {
	output := h.aboutUseCase.ExecuteGetAbout(c.Request.Context())
	if output.IsDefault {
		h.logger.Debug("Serving default about profile")
	}
	c.JSON(http.StatusOK, ToAboutDTO(output.Profile))
}

func (h *AboutHandler) CreateAbout(c *gin.Context) {
	actorID := GetActorIDFromGinContext(c)
	if actorID == "" {
		c.Error(apperror.NewUnauthorized("actor id not found in context", nil))
		return
	}

	var req CreateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for about profile", err))
		return
	}

	output, err := h.aboutUseCase.ExecuteCreateAbout(c.Request.Context(), aboutUC.CreateAboutInput{
		ActorID: actorID,
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAboutDTO(output.Profile))
}

func (h *AboutHandler) UpdateAbout(c *gin.Context) {
	actorID := GetActorIDFromGinContext(c)
	if actorID == "" {
		c.Error(apperror.NewUnauthorized("actor id not found in context", nil))
		return
	}

	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for about profile update", err))
		return
	}

	profileID, err := uuid.Parse(req.ID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("id must be a UUID", err))
		return
	}

	patch := req.ToPatch()
	if patch.IsEmpty() {
		h.logger.Debug("About update carries no fields", zap.String("profile_id", req.ID))
	}

	output, err := h.aboutUseCase.ExecuteUpdateAbout(c.Request.Context(), aboutUC.UpdateAboutInput{
		ActorID:   actorID,
		ProfileID: profileID,
		Patch:     patch,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAboutDTO(output.Profile))
}
