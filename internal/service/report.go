package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/timezone"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository"
)

type ReportSeatingRepository interface {
	FindByScope(ctx context.Context, filter domain.EventFilter, date time.Time) ([]domain.SeatingEvent, error)
	LatestDate(ctx context.Context, filter domain.EventFilter) (time.Time, error)
	RankHosts(ctx context.Context, filter domain.EventFilter, date time.Time) ([]domain.HostRank, error)
}

type ReportStaffRepository interface {
	FindTeamByID(ctx context.Context, id uint) (domain.Team, error)
	FindHostByID(ctx context.Context, id uint) (domain.Host, error)
	FindWaiterByID(ctx context.Context, id uint) (domain.Waiter, error)
}

// ReportService computes the daily aggregates and host ranking for a
// scope. Pure read path: every report is a fresh computation over a
// queried snapshot.
type ReportService struct {
	repo  ReportSeatingRepository
	staff ReportStaffRepository
}

func NewReportService(repo ReportSeatingRepository, staff ReportStaffRepository) *ReportService {
	return &ReportService{
		repo:  repo,
		staff: staff,
	}
}

// TeamReport builds the report for one team, or for every team at once
// when teamID is the control team.
func (s *ReportService) TeamReport(ctx context.Context, teamID uint, rawDate string) (domain.DailyReport, error) {
	filter := domain.EventFilter{TeamID: teamID}
	if teamID == domain.ControlTeamID {
		filter = domain.EventFilter{}
	} else if _, err := s.staff.FindTeamByID(ctx, teamID); err != nil {
		return domain.DailyReport{}, s.passThrough("s.staff.FindTeamByID", err, ErrTeamNotFound)
	}

	return s.build(ctx, filter, rawDate)
}

// HostReport builds the report for a single host of a team.
func (s *ReportService) HostReport(ctx context.Context, teamID, hostID uint, rawDate string) (domain.DailyReport, error) {
	if _, err := s.staff.FindTeamByID(ctx, teamID); err != nil {
		return domain.DailyReport{}, s.passThrough("s.staff.FindTeamByID", err, ErrTeamNotFound)
	}

	host, err := s.staff.FindHostByID(ctx, hostID)
	if err != nil {
		return domain.DailyReport{}, s.passThrough("s.staff.FindHostByID", err, ErrHostNotFound)
	}

	if host.TeamID != teamID {
		return domain.DailyReport{}, ErrTeamMismatch
	}

	return s.build(ctx, domain.EventFilter{HostID: hostID}, rawDate)
}

// WaiterReport builds the report over the events a waiter is assigned to.
func (s *ReportService) WaiterReport(ctx context.Context, waiterID uint, rawDate string) (domain.DailyReport, error) {
	if _, err := s.staff.FindWaiterByID(ctx, waiterID); err != nil {
		return domain.DailyReport{}, s.passThrough("s.staff.FindWaiterByID", err, ErrWaiterNotFound)
	}

	return s.build(ctx, domain.EventFilter{WaiterID: waiterID}, rawDate)
}

func (s *ReportService) build(ctx context.Context, filter domain.EventFilter, rawDate string) (domain.DailyReport, error) {
	date, err := s.resolveDate(ctx, filter, rawDate)
	if err != nil {
		return domain.DailyReport{}, err
	}

	events, err := s.repo.FindByScope(ctx, filter, date)
	if err != nil {
		return domain.DailyReport{}, fmt.Errorf("s.repo.FindByScope -> %w", err)
	}

	ranking, err := s.repo.RankHosts(ctx, filter, date)
	if err != nil {
		return domain.DailyReport{}, fmt.Errorf("s.repo.RankHosts -> %w", err)
	}

	report := domain.DailyReport{
		Date:    date.Format(timezone.DateLayout),
		Ranking: ranking,
		Events:  events,
	}

	for _, ev := range events {
		report.TotalEvents++
		report.TotalPeople += ev.PartySize
		if ev.Confirmed {
			report.ConfirmedCount++
			report.ConfirmedPeople += ev.PartySize
		}
	}
	report.UnconfirmedCount = report.TotalEvents - report.ConfirmedCount

	zap.L().Debug("built daily report",
		zap.String("date", report.Date),
		zap.Int("total_events", report.TotalEvents))

	return report, nil
}

// resolveDate turns the caller-supplied date parameter into the report
// date. Missing or malformed input falls back to the most recent date
// with events in the scope, then to today in the operational timezone.
// Malformed input is never an error.
func (s *ReportService) resolveDate(ctx context.Context, filter domain.EventFilter, rawDate string) (time.Time, error) {
	if date, ok := timezone.ParseDate(rawDate); ok {
		return date, nil
	}

	latest, err := s.repo.LatestDate(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrNoEvents) {
			return timezone.Today(), nil
		}

		return time.Time{}, fmt.Errorf("s.repo.LatestDate -> %w", err)
	}

	return latest, nil
}

func (s *ReportService) passThrough(op string, err error, sentinel error) error {
	if errors.Is(err, sentinel) {
		return sentinel
	}

	return fmt.Errorf("%v -> %w", op, err)
}
