package handler

import (
	"errors"
	"strconv"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/middleware"
	"scoutlete/internal/models"
	"scoutlete/internal/service"
	"scoutlete/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam godoc
// @Summary      Create a new team
// @Description  Create a new team. The authenticated user becomes the captain.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTeamRequest  true  "Team details"
// @Success      201   {object}  response.Response{data=models.Team}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, team)
}

// ListTeams godoc
// @Summary      Discover teams
// @Description  Retrieve paginated public active teams, optionally filtered by sport, location, and experience level
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        sport             query     string  false  "Filter by sport"
// @Param        location          query     string  false  "Filter by location"
// @Param        experience_level  query     string  false  "Filter by experience level"
// @Param        exclude_user_teams  query   bool    false  "Exclude teams the user already belongs to"
// @Param        page              query     int     false  "Page number (default: 1)"
// @Param        limit             query     int     false  "Items per page (default: 20, max: 50)"
// @Success      200               {object}  response.Response{data=models.TeamListResponse}
// @Failure      401               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	filter := &models.TeamFilter{
		Sport:           c.Query("sport"),
		Location:        c.Query("location"),
		ExperienceLevel: c.Query("experience_level"),
	}
	excludeUserTeams, _ := strconv.ParseBool(c.DefaultQuery("exclude_user_teams", "false"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.ListTeams(c.Request.Context(), userID, filter, excludeUserTeams, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetTeam godoc
// @Summary      Get team details
// @Description  Retrieve a team with its roster. Private teams are only visible to members.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.TeamDetail}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, err := primitive.ObjectIDFromHex(c.Param("teamId"))
	if err != nil {
		response.BadRequest(c, "invalid team id format")
		return
	}

	userIDStr := middleware.GetUserID(c)
	userID, _ := primitive.ObjectIDFromHex(userIDStr)

	team, err := h.service.GetTeam(c.Request.Context(), teamID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamAccessDenied) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, team)
}

// UpdateTeam godoc
// @Summary      Update team
// @Description  Update team details. Requires the captain role.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        body    body      models.UpdateTeamRequest  true  "Team update details"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), teamID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, team)
}

// DeleteTeam godoc
// @Summary      Delete team
// @Description  Delete a team and all its memberships and pending requests. Requires the captain role.
// @Tags         teams
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
// @Router       /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), teamID); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "team deleted successfully"})
}

// JoinTeam godoc
// @Summary      Join team with a code
// @Description  Join a team directly using its join code
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.JoinTeamRequest  true  "Join code"
// @Success      200   {object}  response.Response{data=models.JoinTeamResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	userIDStr := middleware.GetUserID(c)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return
	}

	var req models.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.JoinByCode(c.Request.Context(), userID, req.JoinCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidJoinCode) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamNotActive) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamFull) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
