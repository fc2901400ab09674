package handlers

import (
	"net/http"

	"projectconnect/internal/services"

	"github.com/gin-gonic/gin"
)

// VocabularyHandler serves the attribute lists registration and project
// forms choose from. Public: no token required.
type VocabularyHandler struct {
	*BaseHandler
	vocabularyService services.VocabularyService
}

func NewVocabularyHandler(base *BaseHandler, vocabularyService services.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{
		BaseHandler:       base,
		vocabularyService: vocabularyService,
	}
}

func (h *VocabularyHandler) RegisterRoutes(r *gin.RouterGroup) {
	vocabulary := r.Group("/vocabulary")
	{
		vocabulary.GET("/skills", h.GetSkills)
		vocabulary.GET("/programming-languages", h.GetProgrammingLanguages)
		vocabulary.GET("/frameworks", h.GetFrameworks)
	}
}

func (h *VocabularyHandler) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": h.vocabularyService.ListSkills()})
}

func (h *VocabularyHandler) GetProgrammingLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"programmingLanguages": h.vocabularyService.ListProgrammingLanguages()})
}

func (h *VocabularyHandler) GetFrameworks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"frameworks": h.vocabularyService.ListFrameworks()})
}
