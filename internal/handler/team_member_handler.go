package handler

import (
	"errors"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/middleware"
	"scoutlete/internal/service"
	"scoutlete/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMemberHandler handles HTTP requests for team member operations.
type TeamMemberHandler struct {
	service service.TeamMemberServicer
}

// NewTeamMemberHandler creates a new TeamMemberHandler.
func NewTeamMemberHandler(service service.TeamMemberServicer) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// ListMembers godoc
// @Summary      List team members
// @Description  Retrieve the active roster of a team with user details
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.TeamMemberListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	result, err := h.service.ListMembers(c.Request.Context(), teamID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// RemoveMember godoc
// @Summary      Remove team member
// @Description  Remove a member from the team. Only the captain may remove members.
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        teamId    path      string  true  "Team ID"
// @Param        memberId  path      string  true  "Membership ID to remove"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{memberId} [delete]
func (h *TeamMemberHandler) RemoveMember(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	memberID, err := primitive.ObjectIDFromHex(c.Param("memberId"))
	if err != nil {
		response.BadRequest(c, "invalid member id format")
		return
	}

	actingUserIDStr := middleware.GetUserID(c)
	actingUserID, _ := primitive.ObjectIDFromHex(actingUserIDStr)

	if err := h.service.RemoveMember(c.Request.Context(), teamID, memberID, actingUserID); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrNotTeamMember) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrNotTeamCaptain) {
			response.Forbidden(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCannotRemoveCaptain) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCannotRemoveSelf) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "member removed successfully"})
}

// LeaveTeam godoc
// @Summary      Leave team
// @Description  Leave a team. The captain cannot leave their own team.
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/leave [post]
func (h *TeamMemberHandler) LeaveTeam(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	userIDStr := middleware.GetUserID(c)
	userID, _ := primitive.ObjectIDFromHex(userIDStr)

	if err := h.service.LeaveTeam(c.Request.Context(), teamID, userID); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrNotTeamMember) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrCaptainCannotLeave) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "left team successfully"})
}
