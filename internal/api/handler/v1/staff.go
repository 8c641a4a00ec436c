package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/request"
	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/response"
	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/service"
)

type StaffService interface {
	CreateTeam(ctx context.Context, team domain.Team, customKey string) (domain.Team, string, error)
	CreateHost(ctx context.Context, host domain.Host, customKey string) (domain.Host, string, error)
	CreateWaiter(ctx context.Context, waiter domain.Waiter, customKey string) (domain.Waiter, string, error)
	TeamBoard(ctx context.Context, teamID uint) (domain.Team, []domain.Waiter, []domain.SeatingEvent, error)
}

type StaffHandler struct {
	svc StaffService
}

func NewStaffHandler(svc StaffService) *StaffHandler {
	return &StaffHandler{
		svc: svc,
	}
}

// HandleGetTeamBoard godoc
// @Summary      Per-team entry board
// @Description  The team with its hosts, the waiter roster and today's events.
// @Tags         teams
// @Produce      json
// @Param        teamID  path      int true "team ID"
// @Success      200     {object}  response.TeamBoardResponse
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID} [get]
func (h *StaffHandler) HandleGetTeamBoard(ctx *gin.Context) {
	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, waiters, events, err := h.svc.TeamBoard(ctx.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetTeamBoard -> h.svc.TeamBoard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.TeamBoardResponse{
		Team:    team,
		Waiters: waiters,
		Events:  events,
	})
}

// HandleCreateTeam godoc
// @Summary      Provision a team
// @Tags         admin
// @Produce      json
// @Param        request  body      request.CreateTeamRequest true "request body"
// @Success      201      {object}  response.StaffCreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/teams [post]
func (h *StaffHandler) HandleCreateTeam(ctx *gin.Context) {
	req := request.CreateTeamRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, key, err := h.svc.CreateTeam(ctx.Request.Context(), domain.Team{
		ID:       req.ID,
		LeadName: req.LeadName,
	}, req.Key)
	if err != nil {
		h.renderProvisionErr(ctx, "v1.HandleCreateTeam", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.StaffCreatedResponse{
		ID:   team.ID,
		Name: team.LeadName,
		Key:  key,
	})
}

// HandleCreateHost godoc
// @Summary      Provision a host for a team
// @Tags         admin
// @Produce      json
// @Param        request  body      request.CreateHostRequest true "request body"
// @Success      201      {object}  response.StaffCreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/hosts [post]
func (h *StaffHandler) HandleCreateHost(ctx *gin.Context) {
	req := request.CreateHostRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	host, key, err := h.svc.CreateHost(ctx.Request.Context(), domain.Host{
		TeamID: req.TeamID,
		Name:   req.Name,
	}, req.Key)
	if err != nil {
		h.renderProvisionErr(ctx, "v1.HandleCreateHost", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.StaffCreatedResponse{
		ID:     host.ID,
		Name:   host.Name,
		TeamID: host.TeamID,
		Key:    key,
	})
}

// HandleCreateWaiter godoc
// @Summary      Provision a waiter
// @Tags         admin
// @Produce      json
// @Param        request  body      request.CreateWaiterRequest true "request body"
// @Success      201      {object}  response.StaffCreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/waiters [post]
func (h *StaffHandler) HandleCreateWaiter(ctx *gin.Context) {
	req := request.CreateWaiterRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	waiter, key, err := h.svc.CreateWaiter(ctx.Request.Context(), domain.Waiter{
		Name: req.Name,
	}, req.Key)
	if err != nil {
		h.renderProvisionErr(ctx, "v1.HandleCreateWaiter", err)

		return
	}

	ctx.JSON(http.StatusCreated, response.StaffCreatedResponse{
		ID:   waiter.ID,
		Name: waiter.Name,
		Key:  key,
	})
}

func (h *StaffHandler) renderProvisionErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrControlTeamReserved), errors.Is(err, service.ErrKeyInUse):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrTeamNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
	}
}
