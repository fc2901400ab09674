package handlers

import (
	"net/http"

	"projectconnect/internal/middleware"
	"projectconnect/internal/services"
	"projectconnect/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// MembershipHandler exposes the six lifecycle transitions. Candidate-side
// operations act on the caller; creator-side operations name the affected
// user in the path or body.
type MembershipHandler struct {
	*BaseHandler
	membershipService services.MembershipService
}

func NewMembershipHandler(base *BaseHandler, membershipService services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		BaseHandler:       base,
		membershipService: membershipService,
	}
}

func (h *MembershipHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.POST("/:name/requests", h.RequestToJoin)
		projects.PUT("/:name/requests/:username/accept", h.AcceptRequest)
		projects.PUT("/:name/requests/:username/reject", h.RejectRequest)
		projects.POST("/:name/invitations", h.InviteToProject)
		projects.PUT("/:name/invitations/accept", h.AcceptInvite)
		projects.PUT("/:name/invitations/reject", h.RejectInvite)
	}
}

// RequestToJoin moves the caller from no relationship to a pending request.
func (h *MembershipHandler) RequestToJoin(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.membershipService.RequestToJoin(actor, c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// InviteToProject issues an invitation to the named user. Creator only.
func (h *MembershipHandler) InviteToProject(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.InviteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.InviteToProject(actor, req.Username, c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptRequest confirms a pending request into membership. Creator only.
func (h *MembershipHandler) AcceptRequest(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.membershipService.AcceptRequest(actor, c.Param("username"), c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectRequest declines a pending request. Creator only.
func (h *MembershipHandler) RejectRequest(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.membershipService.RejectRequest(actor, c.Param("username"), c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptInvite converts the caller's invitation into membership.
func (h *MembershipHandler) AcceptInvite(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.membershipService.RegisterInProject(actor, c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectInvite declines the caller's invitation.
func (h *MembershipHandler) RejectInvite(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.membershipService.RejectInvite(actor, c.Param("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
