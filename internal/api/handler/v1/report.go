package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/response"
	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/service"
)

type ReportService interface {
	TeamReport(ctx context.Context, teamID uint, rawDate string) (domain.DailyReport, error)
	HostReport(ctx context.Context, teamID, hostID uint, rawDate string) (domain.DailyReport, error)
	WaiterReport(ctx context.Context, waiterID uint, rawDate string) (domain.DailyReport, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleTeamReport godoc
// @Summary      Daily report for a team (777 = global)
// @Description  Aggregates for the given date, or the latest date with activity in scope when the date is absent or malformed.
// @Tags         reports
// @Produce      json
// @Param        teamID  path      int    true  "team ID, 777 for the global view"
// @Param        date    query     string false "report date, YYYY-MM-DD"
// @Success      200     {object}  domain.DailyReport
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /reports/teams/{teamID} [get]
func (h *ReportHandler) HandleTeamReport(ctx *gin.Context) {
	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	report, err := h.svc.TeamReport(ctx.Request.Context(), teamID, ctx.Query("date"))
	if err != nil {
		h.renderReportErr(ctx, "v1.HandleTeamReport", err)

		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleHostReport godoc
// @Summary      Daily report for a single host
// @Tags         reports
// @Produce      json
// @Param        teamID  path      int    true  "team ID"
// @Param        hostID  path      int    true  "host ID"
// @Param        date    query     string false "report date, YYYY-MM-DD"
// @Success      200     {object}  domain.DailyReport
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /reports/teams/{teamID}/hosts/{hostID} [get]
func (h *ReportHandler) HandleHostReport(ctx *gin.Context) {
	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	hostID, err := parseIDParam(ctx, "hostID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	report, err := h.svc.HostReport(ctx.Request.Context(), teamID, hostID, ctx.Query("date"))
	if err != nil {
		h.renderReportErr(ctx, "v1.HandleHostReport", err)

		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleWaiterReport godoc
// @Summary      Daily report over a waiter's assigned events
// @Tags         reports
// @Produce      json
// @Param        waiterID  path      int    true  "waiter ID"
// @Param        date      query     string false "report date, YYYY-MM-DD"
// @Success      200       {object}  domain.DailyReport
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /reports/waiters/{waiterID} [get]
func (h *ReportHandler) HandleWaiterReport(ctx *gin.Context) {
	waiterID, err := parseIDParam(ctx, "waiterID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	report, err := h.svc.WaiterReport(ctx.Request.Context(), waiterID, ctx.Query("date"))
	if err != nil {
		h.renderReportErr(ctx, "v1.HandleWaiterReport", err)

		return
	}

	ctx.JSON(http.StatusOK, report)
}

func (h *ReportHandler) renderReportErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrHostNotFound),
		errors.Is(err, service.ErrWaiterNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	case errors.Is(err, service.ErrTeamMismatch):
		response.RenderErr(ctx, response.ErrForbidden(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
	}
}
