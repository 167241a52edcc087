package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"github.com/vaibhav/lifehub-api/pkg/logger"
)

// upcomingWindowDays is the dashboard's look-ahead for client payments. The
// clients page uses a wider window of its own.
const upcomingWindowDays = 7

// DashboardService aggregates the home screen: loan snapshot, today's time,
// client metrics, journal streak and todo counts.
type DashboardService struct {
	loans     *LoanService
	times     *TimeService
	clients   *ClientService
	journal   *JournalService
	todos     *TodoService
	analytics repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	loans *LoanService,
	times *TimeService,
	clients *ClientService,
	journal *JournalService,
	todos *TodoService,
	analytics repository.AnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		loans:     loans,
		times:     times,
		clients:   clients,
		journal:   journal,
		todos:     todos,
		analytics: analytics,
	}
}

// Dashboard is the aggregated home screen payload. Sections that failed to
// load come back as their zero value rather than failing the whole response.
type Dashboard struct {
	Loan             *models.LoanResponse `json:"loan,omitempty"`
	Today            *DaySummary          `json:"today,omitempty"`
	ClientMetrics    *ClientMetrics       `json:"client_metrics,omitempty"`
	Streak           *StreakInfo          `json:"streak,omitempty"`
	Todos            *TodoSummary         `json:"todos,omitempty"`
	UpcomingPayments []models.Client      `json:"upcoming_payments"`
}

// Get assembles the dashboard. The five sections load concurrently; a
// section error is logged and the section omitted.
func (s *DashboardService) Get(ctx context.Context) (*Dashboard, error) {
	now := time.Now()
	dashboard := &Dashboard{UpcomingPayments: []models.Client{}}

	var wg sync.WaitGroup
	var mu sync.Mutex

	section := func(name string, load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil && !errors.Is(err, ErrNotFound) {
				logger.Warn("dashboard section failed", "section", name, "error", err)
			}
		}()
	}

	section("loan", func() error {
		loan, err := s.loans.GetActiveLoan(ctx)
		if err != nil {
			return err
		}
		resp := loan.ToResponse()
		mu.Lock()
		dashboard.Loan = &resp
		mu.Unlock()
		return nil
	})

	section("today", func() error {
		summary, err := s.times.TodaySummary(ctx, now)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Today = summary
		mu.Unlock()
		return nil
	})

	section("clients", func() error {
		metrics, err := s.clients.Metrics(ctx, now)
		if err != nil {
			return err
		}
		upcoming, err := s.clients.UpcomingPayments(ctx, now, upcomingWindowDays)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.ClientMetrics = metrics
		dashboard.UpcomingPayments = upcoming
		mu.Unlock()
		return nil
	})

	section("streak", func() error {
		streak, err := s.journal.Streak(ctx, now)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Streak = streak
		mu.Unlock()
		return nil
	})

	section("todos", func() error {
		summary, err := s.todos.Summary(ctx, now)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Todos = summary
		mu.Unlock()
		return nil
	})

	wg.Wait()
	return dashboard, nil
}

// CalendarDay is one cell of the activity calendar
type CalendarDay struct {
	Date           time.Time `json:"date"`
	InMonth        bool      `json:"in_month"`
	Hours          float64   `json:"hours"`
	JournalWritten bool      `json:"journal_written"`
	TodosCompleted int       `json:"todos_completed"`
}

// ActivityCalendar is a month grid padded to whole Sunday-start weeks
type ActivityCalendar struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Weeks [][7]CalendarDay `json:"weeks"`
}

// Calendar builds the activity grid for a month. The grid is padded with
// adjacent-month days so every row is a full Sunday-start week.
func (s *DashboardService) Calendar(ctx context.Context, year int, month time.Month) (*ActivityCalendar, error) {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, 6-int(lastOfMonth.Weekday()))

	hours, err := s.analytics.DailyHoursBetween(ctx, gridStart, gridEnd)
	if err != nil {
		return nil, err
	}
	journalDates, err := s.analytics.JournalDatesBetween(ctx, gridStart, gridEnd)
	if err != nil {
		return nil, err
	}
	todoDates, err := s.analytics.CompletedTodoDatesBetween(ctx, gridStart, gridEnd)
	if err != nil {
		return nil, err
	}

	hoursByDay := make(map[time.Time]float64, len(hours))
	for _, h := range hours {
		hoursByDay[dateOnly(h.Date)] = h.Hours
	}
	journalByDay := make(map[time.Time]bool, len(journalDates))
	for _, d := range journalDates {
		journalByDay[dateOnly(d)] = true
	}
	todosByDay := make(map[time.Time]int, len(todoDates))
	for _, d := range todoDates {
		todosByDay[dateOnly(d)]++
	}

	calendar := &ActivityCalendar{Year: year, Month: int(month)}
	for cursor := gridStart; !cursor.After(gridEnd); cursor = cursor.AddDate(0, 0, 7) {
		var week [7]CalendarDay
		for i := 0; i < 7; i++ {
			day := cursor.AddDate(0, 0, i)
			week[i] = CalendarDay{
				Date:           day,
				InMonth:        day.Month() == month,
				Hours:          hoursByDay[day],
				JournalWritten: journalByDay[day],
				TodosCompleted: todosByDay[day],
			}
		}
		calendar.Weeks = append(calendar.Weeks, week)
	}
	return calendar, nil
}
