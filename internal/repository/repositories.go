package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Loan         LoanRepository
	LoanPayment  LoanPaymentRepository
	TimeEntry    TimeEntryRepository
	Client       ClientRepository
	Journal      JournalRepository
	Todo         TodoRepository
	Note         NoteRepository
	NoteCategory NoteCategoryRepository
	Session      SessionRepository
	Analytics    AnalyticsRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Loan:         NewLoanRepository(db),
		LoanPayment:  NewLoanPaymentRepository(db),
		TimeEntry:    NewTimeEntryRepository(db),
		Client:       NewClientRepository(db),
		Journal:      NewJournalRepository(db),
		Todo:         NewTodoRepository(db),
		Note:         NewNoteRepository(db),
		NoteCategory: NewNoteCategoryRepository(db),
		Session:      NewSessionRepository(db),
		Analytics:    NewAnalyticsRepository(db),
	}
}
