package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/service"
)

type reportServiceStub struct {
	report   domain.DailyReport
	err      error
	lastDate string
}

func (s *reportServiceStub) TeamReport(_ context.Context, _ uint, rawDate string) (domain.DailyReport, error) {
	s.lastDate = rawDate

	return s.report, s.err
}

func (s *reportServiceStub) HostReport(_ context.Context, _, _ uint, rawDate string) (domain.DailyReport, error) {
	s.lastDate = rawDate

	return s.report, s.err
}

func (s *reportServiceStub) WaiterReport(_ context.Context, _ uint, rawDate string) (domain.DailyReport, error) {
	s.lastDate = rawDate

	return s.report, s.err
}

func reportRouter(svc ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewReportHandler(svc)
	router := gin.New()
	router.GET("/reports/teams/:teamID", h.HandleTeamReport)
	router.GET("/reports/teams/:teamID/hosts/:hostID", h.HandleHostReport)
	router.GET("/reports/waiters/:waiterID", h.HandleWaiterReport)

	return router
}

func TestHandleTeamReport(t *testing.T) {
	t.Run("renders the report as JSON", func(t *testing.T) {
		stub := &reportServiceStub{report: domain.DailyReport{
			Date:            "2024-01-10",
			TotalEvents:     3,
			ConfirmedCount:  1,
			TotalPeople:     9,
			ConfirmedPeople: 2,
		}}
		router := reportRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/teams/1?date=2024-01-10", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2024-01-10", stub.lastDate)
		assert.JSONEq(t, `{
			"date": "2024-01-10",
			"total_events": 3,
			"confirmed_count": 1,
			"unconfirmed_count": 0,
			"total_people": 9,
			"confirmed_people": 2,
			"ranking": null,
			"events": null
		}`, w.Body.String())
	})

	t.Run("unknown team renders 404", func(t *testing.T) {
		router := reportRouter(&reportServiceStub{err: service.ErrTeamNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/teams/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status_code":404,"error":"team not found"}`, w.Body.String())
	})

	t.Run("non-numeric team id renders 400", func(t *testing.T) {
		stub := &reportServiceStub{}
		router := reportRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/teams/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleHostReport(t *testing.T) {
	t.Run("host outside the team renders 403", func(t *testing.T) {
		router := reportRouter(&reportServiceStub{err: service.ErrTeamMismatch})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/teams/1/hosts/10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandleWaiterReport(t *testing.T) {
	t.Run("passes the raw date through untouched", func(t *testing.T) {
		stub := &reportServiceStub{report: domain.DailyReport{Date: "2024-01-05"}}
		router := reportRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/waiters/20?date=2024/01/05", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2024/01/05", stub.lastDate)
	})

	t.Run("unknown waiter renders 404", func(t *testing.T) {
		router := reportRouter(&reportServiceStub{err: service.ErrWaiterNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/waiters/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
