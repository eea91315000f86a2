package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autopneuma/autopneuma-api/internal/config"
	"github.com/autopneuma/autopneuma-api/internal/domain/moderation"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/metrics"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/requests"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/responses"
)

func registerModerationRoutes(group *gin.RouterGroup, service *moderation.Service, cfg *config.Config) {
	moderationGroup := group.Group("/moderation")
	moderationGroup.POST("/moderate", moderateContent(service))
	moderationGroup.GET("/health", moderationHealth(cfg))
}

// moderateContent godoc
// @Summary      Analyze content for moderator review
// @Description  Flags potential concerns; never auto-removes content. Final decisions stay with human moderators.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Success      200  {object}  moderation.Result
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/v1/moderation/moderate [post]
func moderateContent(service *moderation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ModerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Detail: err.Error()})
			return
		}

		result := service.Moderate(c.Request.Context(), moderation.Request{
			Content:     req.Content,
			ContentType: req.ContentType,
			ContentID:   req.ContentID,
			AuthorID:    req.AuthorID,
		})

		metrics.ModerationRequestsTotal.WithLabelValues(string(result.Recommendation)).Inc()
		for _, f := range result.Flags {
			metrics.ModerationFlagsTotal.WithLabelValues(string(f.Severity)).Inc()
		}

		c.JSON(http.StatusOK, result)
	}
}

func moderationHealth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "moderation",
			"status":  "healthy",
			"enabled": cfg.EnableModeration,
		})
	}
}
