package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/request"
	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/response"
	"github.com/econopapi/terraza-zocalo-hosts/internal/api/middleware"
	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/service"
)

type SeatingService interface {
	Record(ctx context.Context, teamID uint, event domain.SeatingEvent, caller *domain.Identity) (domain.SeatingEvent, error)
	Confirm(ctx context.Context, eventID uint, confirmed bool, caller domain.Identity) (domain.SeatingEvent, error)
}

type SeatingHandler struct {
	svc    SeatingService
	access AccessService
}

func NewSeatingHandler(svc SeatingService, access AccessService) *SeatingHandler {
	return &SeatingHandler{
		svc:    svc,
		access: access,
	}
}

// HandleRecordSeating godoc
// @Summary      Record a hosteo for a team
// @Description  Creates an unconfirmed seating event stamped with the current date/time in America/Mexico_City. Callers authenticated as a host are locked to their own host id.
// @Tags         seatings
// @Produce      json
// @Param        teamID   path      int true "team ID"
// @Param        request  body      request.RecordSeatingRequest true "request body"
// @Success      201      {object}  domain.SeatingEvent
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /teams/{teamID}/events [post]
func (h *SeatingHandler) HandleRecordSeating(ctx *gin.Context) {
	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.RecordSeatingRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var caller *domain.Identity
	if identity, ok := middleware.IdentityFromContext(ctx); ok {
		caller = &identity
	}

	if req.HostID == 0 && (caller == nil || caller.Role != domain.RoleHost) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("host_id is required")))

		return
	}

	event, err := h.svc.Record(ctx.Request.Context(), teamID, domain.SeatingEvent{
		HostID:    req.HostID,
		WaiterID:  req.WaiterID,
		PartySize: req.PartySize,
	}, caller)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound),
			errors.Is(err, service.ErrHostNotFound),
			errors.Is(err, service.ErrWaiterNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrTeamMismatch):
			response.RenderErr(ctx, response.ErrForbidden(err))
		case errors.Is(err, service.ErrInvalidPartySize):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleRecordSeating -> h.svc.Record -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleConfirmSeating godoc
// @Summary      Toggle the confirmed flag of a seating event
// @Description  Only the waiter assigned to the event may confirm it, authenticated by Bearer token or by waiter_key in the body.
// @Tags         seatings
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.ConfirmSeatingRequest true "request body"
// @Success      200      {object}  response.ConfirmResponse
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/confirm [post]
func (h *SeatingHandler) HandleConfirmSeating(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ConfirmSeatingRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := h.confirmingIdentity(ctx, req.WaiterKey)
	if err != nil {
		response.RenderErr(ctx, response.ErrForbidden(err))

		return
	}

	event, err := h.svc.Confirm(ctx.Request.Context(), eventID, *req.Confirmed, caller)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrNotAssignedWaiter):
			response.RenderErr(ctx, response.ErrForbidden(err))
		default:
			err = fmt.Errorf("v1.HandleConfirmSeating -> h.svc.Confirm -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.ConfirmResponse{
		EventID:   event.ID,
		Confirmed: event.Confirmed,
	})
}

// confirmingIdentity picks the waiter identity from the Bearer token
// when present, otherwise resolves the waiter_key from the body.
func (h *SeatingHandler) confirmingIdentity(ctx *gin.Context, waiterKey string) (domain.Identity, error) {
	if identity, ok := middleware.IdentityFromContext(ctx); ok {
		return identity, nil
	}

	if waiterKey == "" {
		return domain.Identity{}, errors.New("waiter_key or Bearer token required")
	}

	identity, err := h.access.Resolve(ctx.Request.Context(), domain.RoleWaiter, waiterKey)
	if err != nil {
		return domain.Identity{}, service.ErrNotAssignedWaiter
	}

	return identity, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(id), nil
}
