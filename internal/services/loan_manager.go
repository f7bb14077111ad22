package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"library-circulation-service/internal/domain"
	"library-circulation-service/internal/platform/obs"
	"library-circulation-service/internal/ports"
)

// DefaultLoanPeriod is how long a borrower keeps a book before it is due.
const DefaultLoanPeriod = 14 * domain.DayLength

const dueDateLayout = "Jan 2, 2006"

// LoanManager runs the circulation desk: it checks books out, takes them
// back, applies the injected fine policy on late returns, and informs
// borrowers through the injected notification channel.
//
// Policies are constructor-injected and never inspected: any FinePolicy or
// Notifier implementation is interchangeable with any other. The manager
// keeps an append-only history of every loan it ever created.
type LoanManager struct {
	fines      ports.FinePolicy
	notifier   ports.Notifier
	presenter  ports.Presenter
	loanPeriod time.Duration
	now        func() time.Time
	loans      []*domain.Loan
}

// Option configures a LoanManager beyond its required collaborators.
type Option func(*LoanManager)

// WithClock replaces the time source, so tests control "now" without
// touching global state.
func WithClock(now func() time.Time) Option {
	return func(m *LoanManager) {
		m.now = now
	}
}

// WithLoanPeriod overrides the default 14-day loan period.
func WithLoanPeriod(period time.Duration) Option {
	return func(m *LoanManager) {
		m.loanPeriod = period
	}
}

func NewLoanManager(
	fines ports.FinePolicy,
	notifier ports.Notifier,
	presenter ports.Presenter,
	opts ...Option,
) *LoanManager {
	m := &LoanManager{
		fines:      fines,
		notifier:   notifier,
		presenter:  presenter,
		loanPeriod: DefaultLoanPeriod,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Check a book out to a borrower.
//
// Fails with domain.ErrBookUnavailable when the copy is already on loan,
// leaving all state unchanged. On success the book becomes unavailable, a
// Loan due in one loan period is appended to the history, and the borrower
// is notified with the due date. Notification failure is reported but never
// blocks the checkout.
func (m *LoanManager) Checkout(
	ctx context.Context,
	book *domain.Book,
	borrower *domain.Borrower,
) (loan *domain.Loan, err error) {
	defer obs.Time(ctx, "checkout")(&err)

	if book == nil {
		return nil, errors.New("checkout: book must be non-nil")
	}
	if borrower == nil {
		return nil, errors.New("checkout: borrower must be non-nil")
	}

	if !book.Available {
		m.presenter.Display(fmt.Sprintf("Cannot check out %q: this copy is already on loan.", book.Title))
		return nil, fmt.Errorf("checkout %q for borrower %s: %w", book.ISBN, borrower.ID, domain.ErrBookUnavailable)
	}

	checkedOutAt := m.now().UTC()
	loan = &domain.Loan{
		LoanID:       uuid.New(),
		Book:         book,
		Borrower:     borrower,
		CheckedOutAt: checkedOutAt,
		DueAt:        checkedOutAt.Add(m.loanPeriod),
	}

	book.Available = false
	m.loans = append(m.loans, loan)

	msg := fmt.Sprintf(
		"Hi %s, you checked out %q by %s. It is due back on %s (%s). Loan ref: %s.",
		borrower.Name,
		book.Title,
		book.Author,
		loan.DueAt.Format(dueDateLayout),
		humanize.Time(loan.DueAt),
		loan.LoanID,
	)
	if nerr := m.notifier.Notify(ctx, borrower.Name, msg); nerr != nil {
		// Notification failure never blocks a checkout.
		m.presenter.Display(fmt.Sprintf("Could not notify %s: %v", borrower.Name, nerr))
	}

	m.presenter.Display(fmt.Sprintf(
		"%q checked out to %s, due %s.",
		book.Title, borrower.Name, loan.DueAt.Format(dueDateLayout),
	))

	return loan, nil
}

// Take a book back and close its loan.
//
// Fails with domain.ErrLoanAlreadyReturned when the loan is already closed,
// mutating nothing. Otherwise the loan is closed, the book becomes available
// again, and the returned fine is the injected policy applied to the number
// of whole 24-hour days past the due date (0 when on time; the policy is not
// consulted for on-time returns).
func (m *LoanManager) Return(ctx context.Context, loan *domain.Loan) (fine int, err error) {
	defer obs.Time(ctx, "return")(&err)

	if loan == nil {
		return 0, errors.New("return: loan must be non-nil")
	}

	if loan.Returned {
		m.presenter.Display(fmt.Sprintf("%q was already returned.", loan.Book.Title))
		return 0, fmt.Errorf("return loan %s: %w", loan.LoanID, domain.ErrLoanAlreadyReturned)
	}

	returnedAt := m.now().UTC()
	daysLate := loan.DaysLate(returnedAt)
	if daysLate > 0 {
		fine = m.fines.ComputeFine(daysLate)
	}

	loan.Returned = true
	loan.ReturnedAt = &returnedAt
	loan.Book.Available = true

	if daysLate > 0 {
		m.presenter.Display(fmt.Sprintf(
			"%q returned %d day(s) late by %s. Fine due: %d.",
			loan.Book.Title, daysLate, loan.Borrower.Name, fine,
		))
	} else {
		m.presenter.Display(fmt.Sprintf(
			"%q returned on time by %s. No fine.",
			loan.Book.Title, loan.Borrower.Name,
		))
	}

	return fine, nil
}

// FineDue previews what a return at the given instant would cost, without
// mutating any state.
func (m *LoanManager) FineDue(loan *domain.Loan, at time.Time) int {
	daysLate := loan.DaysLate(at)
	if daysLate == 0 {
		return 0
	}
	return m.fines.ComputeFine(daysLate)
}

// Loans returns a snapshot of the full loan history, oldest first.
func (m *LoanManager) Loans() []*domain.Loan {
	return slices.Clone(m.loans)
}

// ActiveLoanFor finds the open loan holding the given book, if any.
// An unavailable book has exactly one.
func (m *LoanManager) ActiveLoanFor(book *domain.Book) (*domain.Loan, bool) {
	for _, loan := range m.loans {
		if loan.Book == book && !loan.Returned {
			return loan, true
		}
	}
	return nil, false
}
