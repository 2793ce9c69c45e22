package handler

import (
	"errors"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/middleware"
	"scoutlete/internal/models"
	"scoutlete/internal/service"
	"scoutlete/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInviteHandler handles HTTP requests for join requests and invitations.
type TeamInviteHandler struct {
	service service.TeamInviteServicer
}

// NewTeamInviteHandler creates a new TeamInviteHandler.
func NewTeamInviteHandler(service service.TeamInviteServicer) *TeamInviteHandler {
	return &TeamInviteHandler{service: service}
}

// CreateInvite godoc
// @Summary      Create join request or invitation
// @Description  Ask to join a team (join_request) or invite a user to your team (invitation)
// @Tags         team-invites
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateInviteRequest  true  "Invite details"
// @Success      201   {object}  response.Response{data=models.TeamInvite}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /team-invites [post]
func (h *TeamInviteHandler) CreateInvite(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invite, err := h.service.CreateInvite(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound),
			errors.Is(err, apperrors.ErrInvalidJoinCode),
			errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInviteTargetMissing),
			errors.Is(err, apperrors.ErrInviteeMissing),
			errors.Is(err, apperrors.ErrTeamNotActive),
			errors.Is(err, apperrors.ErrAlreadyMember),
			errors.Is(err, apperrors.ErrTeamFull),
			errors.Is(err, apperrors.ErrPendingRequestExists),
			errors.Is(err, apperrors.ErrPendingInvitationExists):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrTeamAccessDenied),
			errors.Is(err, apperrors.ErrNotTeamMember):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, invite)
}

// ListInvites godoc
// @Summary      List my invites
// @Description  List pending invitations addressed to the user and join requests for teams they lead
// @Tags         team-invites
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.InviteListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /team-invites [get]
func (h *TeamInviteHandler) ListInvites(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	result, err := h.service.ListInvites(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// RespondInvite godoc
// @Summary      Respond to an invite
// @Description  Accept or decline a pending join request or invitation
// @Tags         team-invites
// @Accept       json
// @Produce      json
// @Param        body  body      models.RespondInviteRequest  true  "Response details"
// @Success      200   {object}  response.Response{data=models.TeamInvite}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /team-invites [put]
func (h *TeamInviteHandler) RespondInvite(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	var req models.RespondInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invite, err := h.service.RespondInvite(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInviteNotFound),
			errors.Is(err, apperrors.ErrTeamNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotInviteRecipient):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrInviteExpired),
			errors.Is(err, apperrors.ErrTeamNotActive),
			errors.Is(err, apperrors.ErrAlreadyMember),
			errors.Is(err, apperrors.ErrTeamFull):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrInviteAlreadyResolved):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, invite)
}
