// internal/service/statement_service.go
package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

// StatementService renders monthly account statements.
type StatementService interface {
	// MonthlyStatement renders the user's transactions for the given month
	// as a PDF document.
	MonthlyStatement(ctx context.Context, userID int64, month, year int) ([]byte, error)
}

type statementService struct {
	dbExecutor      repository.DBExecutor
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
}

// NewStatementService creates a new instance of StatementService.
func NewStatementService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, transactionRepo repository.TransactionRepository) StatementService {
	return &statementService{
		dbExecutor:      dbExecutor,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *statementService) MonthlyStatement(ctx context.Context, userID int64, month, year int) ([]byte, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, util.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("statement: failed to load user: %w", err)
	}

	start, end := MonthPeriod(month, year)
	transactions, err := s.transactionRepo.GetTransactionsByPeriod(ctx, s.dbExecutor, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("statement: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.TransactionType {
		case domain.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case domain.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Monthly Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Monthly Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", start.Format("January 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Account holder: %s", user.FullName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Income: $%s    Expenses: $%s    Net: $%s",
		income.StringFixed(2), expenses.StringFixed(2), income.Sub(expenses).StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(30, 7, "Date")
	pdf.Cell(25, 7, "Type")
	pdf.Cell(45, 7, "Category")
	pdf.Cell(55, 7, "Description")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range transactions {
		pdf.Cell(30, 6, t.TransactionDate.Format("2006-01-02"))
		pdf.Cell(25, 6, string(t.TransactionType))
		pdf.Cell(45, 6, t.Category)
		pdf.Cell(55, 6, t.Description)
		pdf.Cell(30, 6, "$"+t.Amount.StringFixed(2))
		pdf.Ln(6)
	}
	if len(transactions) == 0 {
		pdf.Cell(0, 6, "No transactions recorded for this period.")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("statement: failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
