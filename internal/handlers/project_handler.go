package handlers

import (
	"net/http"

	"projectconnect/internal/middleware"
	"projectconnect/internal/services"
	"projectconnect/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("", h.GetProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/search", h.SearchProjects)
		projects.POST("/lookup", h.LookupProjects)
		projects.GET("/:name", h.GetProject)
		projects.PUT("/:name/complete", h.CompleteProject)
	}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	projects, err := h.projectService.GetProjects()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) LookupProjects(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	var req dto.LookupProjectsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	projects, err := h.projectService.GetProjectsByNames(req.Names)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	projects, err := h.projectService.Search(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	project, err := h.projectService.Complete(actor, c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
