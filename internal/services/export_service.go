package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/vaibhav/lifehub-api/internal/finance"
	"github.com/vaibhav/lifehub-api/internal/storage"
	"github.com/xuri/excelize/v2"
)

// ExportService renders time, client and loan data into downloadable XLSX
// and PDF artifacts.
type ExportService struct {
	loans   *LoanService
	times   *TimeService
	clients *ClientService
	storage *storage.LocalStorage
}

// NewExportService creates a new export service
func NewExportService(loans *LoanService, times *TimeService, clients *ClientService, store *storage.LocalStorage) *ExportService {
	return &ExportService{
		loans:   loans,
		times:   times,
		clients: clients,
		storage: store,
	}
}

// ExportResult describes a generated artifact
type ExportResult struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// TimeEntriesXLSX writes every time entry to a spreadsheet and stores it
func (s *ExportService) TimeEntriesXLSX(ctx context.Context) (*ExportResult, error) {
	entries, err := s.times.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Time Entries"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Category", "Hours", "Effort Points", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, e := range entries {
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Hours,
			e.EffortPoints,
			desc,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return s.saveXLSX(f, "time_entries.xlsx", "reports")
}

// ClientsXLSX writes every client record plus an ARR column to a spreadsheet
func (s *ExportService) ClientsXLSX(ctx context.Context) (*ExportResult, error) {
	metrics, err := s.clients.Metrics(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Clients"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Company", "Status", "Frequency", "Contract Value", "ARR", "Next Payment"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, c := range clients {
		company := ""
		if c.Company != nil {
			company = *c.Company
		}
		contractValue := 0.0
		if c.ContractValue != nil {
			contractValue = *c.ContractValue
		}
		nextPayment := ""
		if c.NextPaymentDate != nil {
			nextPayment = c.NextPaymentDate.Format("2006-01-02")
		}
		values := []interface{}{
			c.Name,
			company,
			c.Status,
			c.PaymentFrequency,
			contractValue,
			c.AnnualRecurringRevenue(),
			nextPayment,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Totals row under the data
	totalsRow := len(clients) + 3
	cell, _ := excelize.CoordinatesToCellName(1, totalsRow)
	f.SetCellValue(sheet, cell, "Total ARR")
	cell, _ = excelize.CoordinatesToCellName(6, totalsRow)
	f.SetCellValue(sheet, cell, metrics.TotalARR)

	return s.saveXLSX(f, "clients.xlsx", "reports")
}

// LoanStatementPDF renders a loan's header figures and full payment ledger
// as a PDF statement.
func (s *ExportService) LoanStatementPDF(ctx context.Context, loanID uint) (*ExportResult, error) {
	loan, err := s.loans.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	payments, err := s.loans.ListPayments(ctx, loanID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Loan Statement - %s", loan.Name))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02 Jan 2006")))
	pdf.Ln(8)
	pdf.Cell(0, 6, fmt.Sprintf("Initial principal: %s", finance.FormatINR(loan.InitialPrincipal)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Current balance: %s", finance.FormatINR(loan.CurrentBalance)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Interest rate: %.2f%% p.a.", loan.InterestRate))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Progress: %.1f%% repaid", loan.FreedomPercentage()))
	pdf.Ln(10)

	// Ledger table
	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{25, 30, 30, 30, 30, 20}
	cols := []string{"Date", "Amount", "Interest", "Principal", "Balance", "Type"}
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range payments {
		cells := []string{
			p.PaymentDate.Format("02-01-2006"),
			finance.FormatCompact(p.AmountPaid),
			finance.FormatCompact(p.InterestAccrued),
			finance.FormatCompact(p.PrincipalPaid),
			finance.FormatCompact(p.BalanceAfterPayment),
			p.PaymentType,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering loan statement: %w", err)
	}

	filename := fmt.Sprintf("loan_statement_%d.pdf", loanID)
	path, err := s.storage.Save(buf.Bytes(), filename, "statements")
	if err != nil {
		return nil, err
	}
	return &ExportResult{Path: path, Filename: filename}, nil
}

// OpenArtifact returns a stored artifact for streaming to the client
func (s *ExportService) OpenArtifact(relativePath string) (*os.File, error) {
	file, err := s.storage.Open(relativePath)
	if err != nil {
		return nil, ErrNotFound
	}
	return file, nil
}

func (s *ExportService) saveXLSX(f *excelize.File, filename, subDir string) (*ExportResult, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("rendering spreadsheet: %w", err)
	}
	path, err := s.storage.Save(buf.Bytes(), filename, subDir)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Path: path, Filename: filename}, nil
}
