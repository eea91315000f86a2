package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/autopneuma/autopneuma-api/internal/config"
	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/metrics"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/requests"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/responses"
)

const (
	defaultRateLimit  = 100
	defaultAuthMethod = "api_key"
)

func registerToolRoutes(group *gin.RouterGroup, service *tool.Service, cfg *config.Config) {
	toolGroup := group.Group("/tools")
	toolGroup.POST("/register", registerTool(service))
	toolGroup.POST("/execute", executeTool(service))
	toolGroup.GET("/list", listTools(service))
	toolGroup.GET("/health", toolsHealth(cfg))
	toolGroup.GET("/:tool_id", getTool(service))
}

// registerTool godoc
// @Summary      Register a community AI tool
// @Description  Registers a tool backed by a Project Showcase entry owned by the creator.
// @Tags         community-tools
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.ToolResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/v1/tools/register [post]
func registerTool(service *tool.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.RegisterToolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Detail: err.Error()})
			return
		}

		registration := tool.Registration{
			ProjectID:            req.ProjectID,
			ToolName:             req.ToolName,
			Description:          req.Description,
			Category:             req.Category,
			APIEndpoint:          req.APIEndpoint,
			AuthenticationMethod: req.AuthenticationMethod,
			InputSchema:          req.InputSchema,
			OutputSchema:         req.OutputSchema,
			RateLimit:            defaultRateLimit,
			RequiresApproval:     true,
			SpiritualApplication: req.SpiritualApplication,
		}
		if registration.AuthenticationMethod == "" {
			registration.AuthenticationMethod = defaultAuthMethod
		}
		if req.RateLimit != nil {
			registration.RateLimit = *req.RateLimit
		}
		if req.RequiresApproval != nil {
			registration.RequiresApproval = *req.RequiresApproval
		}

		registered, err := service.Register(c.Request.Context(), registration, req.CreatorID)
		if err != nil {
			if errors.Is(err, tool.ErrProjectNotFound) {
				c.JSON(http.StatusBadRequest, responses.ErrorResponse{Detail: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Detail: "Tool registration error: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, responses.NewToolResponse(registered))
	}
}

// executeTool godoc
// @Summary      Execute a registered community tool
// @Description  Invokes the tool endpoint on behalf of the user. Failures are reported in the response body, not as HTTP errors.
// @Tags         community-tools
// @Accept       json
// @Produce      json
// @Success      200  {object}  tool.ExecutionResult
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/v1/tools/execute [post]
func executeTool(service *tool.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ExecuteToolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Detail: err.Error()})
			return
		}

		result := service.Execute(c.Request.Context(), req.ToolID, req.UserID, req.InputData)

		status := "success"
		if !result.Success {
			status = "failure"
			if errors.Is(result.Err, tool.ErrRateLimited) {
				metrics.RateLimitRejectionsTotal.Inc()
			}
		}
		metrics.ToolExecutionsTotal.WithLabelValues(status).Inc()
		metrics.ToolExecutionDuration.Observe(result.ExecutionTimeMS / 1000)

		c.JSON(http.StatusOK, result)
	}
}

// listTools godoc
// @Summary      List community tools
// @Description  Returns one page of tools filtered by category and status.
// @Tags         community-tools
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        status    query  string  false  "Filter by status"  default(active)
// @Param        page      query  int     false  "Page number"       default(1)
// @Param        per_page  query  int     false  "Results per page"  default(20)
// @Success      200  {object}  responses.ToolListResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/v1/tools/list [get]
func listTools(service *tool.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

		result, err := service.List(c.Request.Context(), tool.ListFilter{
			Category: c.Query("category"),
			Status:   tool.Status(c.DefaultQuery("status", string(tool.StatusActive))),
			Page:     page,
			PerPage:  perPage,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Detail: "Error listing tools: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, responses.NewToolListResponse(result))
	}
}

// getTool godoc
// @Summary      Get community tool details
// @Tags         community-tools
// @Produce      json
// @Param        tool_id  path  string  true  "Tool ID"
// @Success      200  {object}  responses.ToolResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /api/v1/tools/{tool_id} [get]
func getTool(service *tool.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := service.Get(c.Request.Context(), c.Param("tool_id"))
		if err != nil {
			if errors.Is(err, tool.ErrToolNotFound) {
				c.JSON(http.StatusNotFound, responses.ErrorResponse{Detail: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Detail: "Error fetching tool: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, responses.NewToolResponse(t))
	}
}

func toolsHealth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "community_tools",
			"status":  "healthy",
			"enabled": cfg.EnableCommunityTools,
		})
	}
}
