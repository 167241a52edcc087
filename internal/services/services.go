package services

import (
	"github.com/vaibhav/lifehub-api/internal/config"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"github.com/vaibhav/lifehub-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth      *AuthService
	Loan      *LoanService
	Time      *TimeService
	Client    *ClientService
	Journal   *JournalService
	Todo      *TodoService
	Note      *NoteService
	Dashboard *DashboardService
	Export    *ExportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, cfg *config.Config, store *storage.LocalStorage) *Services {
	auth := NewAuthService(repos.Session, cfg)
	loan := NewLoanService(repos.Loan, repos.LoanPayment)
	times := NewTimeService(repos.TimeEntry)
	client := NewClientService(repos.Client)
	journal := NewJournalService(repos.Journal)
	todo := NewTodoService(repos.Todo)
	note := NewNoteService(repos.Note, repos.NoteCategory)
	dashboard := NewDashboardService(loan, times, client, journal, todo, repos.Analytics)
	export := NewExportService(loan, times, client, store)

	return &Services{
		Auth:      auth,
		Loan:      loan,
		Time:      times,
		Client:    client,
		Journal:   journal,
		Todo:      todo,
		Note:      note,
		Dashboard: dashboard,
		Export:    export,
	}
}
