package handlers

import (
	"net/http"

	"projectconnect/internal/middleware"
	"projectconnect/internal/models"
	"projectconnect/internal/services"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", h.GetUsers)
		users.GET("/search", h.SearchUsers)
		users.POST("/lookup", h.LookupUsers)
		users.GET("/:username", h.GetUser)
		users.POST("/:username/skills/:category/:skill/vote", h.VoteForSkill)
	}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	users, err := h.userService.GetUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	user, err := h.userService.GetUser(c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// LookupUsers resolves a list of usernames in one round trip. Used to
// render a project's member, invitee and requester lists.
func (h *UserHandler) LookupUsers(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	var req dto.LookupUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	users, err := h.userService.GetUsersByUsernames(req.Usernames)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	users, err := h.userService.Search(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

// VoteForSkill endorses one skill on another user's profile. The voter is
// the acting user; voting for yourself or voting twice is refused.
func (h *UserHandler) VoteForSkill(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	category, ok := models.ParseSkillCategory(c.Param("category"))
	if !ok {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Unknown skill category: "+c.Param("category")))
		return
	}

	user, err := h.userService.VoteForSkill(actor, c.Param("username"), category, c.Param("skill"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
