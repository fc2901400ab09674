package handlers

import (
	"net/http"

	"projectconnect/internal/config"
	"projectconnect/internal/middleware"
	"projectconnect/internal/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	*BaseHandler
	recommendationService services.RecommendationService
	defaultLimit          int
}

func NewRecommendationHandler(base *BaseHandler, recommendationService services.RecommendationService, cfg *config.Config) *RecommendationHandler {
	limit := 10
	if cfg != nil && cfg.Recommendations.Limit > 0 {
		limit = cfg.Recommendations.Limit
	}
	return &RecommendationHandler{
		BaseHandler:           base,
		recommendationService: recommendationService,
		defaultLimit:          limit,
	}
}

func (h *RecommendationHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("/:name/recommendations/users", h.RecommendUsers)
	}

	recommendations := r.Group("/recommendations")
	recommendations.Use(middleware.AuthMiddleware())
	{
		recommendations.GET("/projects", h.RecommendProjects)
	}

	compatibility := r.Group("/compatibility")
	compatibility.Use(middleware.AuthMiddleware())
	{
		compatibility.GET("/:name", h.Compatibility)
	}
}

// RecommendUsers ranks candidate users for a project, best first.
func (h *RecommendationHandler) RecommendUsers(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	limit := ParseQueryInt(c, "limit", h.defaultLimit)
	scores, err := h.recommendationService.RankUsersForProject(c.Param("name"), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": scores, "total": len(scores)})
}

// RecommendProjects ranks in-progress projects for the acting user.
func (h *RecommendationHandler) RecommendProjects(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	limit := ParseQueryInt(c, "limit", h.defaultLimit)
	scores, err := h.recommendationService.RankProjectsForUser(actor, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": scores, "total": len(scores)})
}

// Compatibility returns the acting user's score and attribute breakdown
// against a single project.
func (h *RecommendationHandler) Compatibility(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.recommendationService.Compatibility(actor, c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
