package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"library-circulation-service/internal/adapters/fines"
	"library-circulation-service/internal/adapters/notify"
	"library-circulation-service/internal/adapters/presenter"
	"library-circulation-service/internal/domain"
	"library-circulation-service/internal/platform/obs"
	"library-circulation-service/internal/services"
)

// main is the application composition root.
// It wires concrete policy adapters behind ports and walks two differently
// configured circulation desks through a demonstration scenario: checkout,
// unavailable-copy rejection, late return with a fine, on-time return, and
// double-return rejection.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	loanDays := getEnvInt("LOAN_PERIOD_DAYS", 14)
	standardRate := getEnvInt("STANDARD_FINE_RATE", fines.DefaultStandardRate)
	discountedRate := getEnvInt("DISCOUNTED_FINE_RATE", fines.DefaultDiscountedRate)
	loanPeriod := time.Duration(loanDays) * domain.DayLength

	// Front desk: standard fines, long-form notifications, plain console.
	frontDesk := services.NewLoanManager(
		fines.NewStandardPolicy(standardRate),
		notify.NewDirectMessage(os.Stdout),
		presenter.NewConsole(os.Stdout),
		services.WithLoanPeriod(loanPeriod),
	)

	// Student desk: discounted fines, short texts, structured log sink.
	studentDesk := services.NewLoanManager(
		fines.NewDiscountedPolicy(discountedRate),
		notify.NewShortText(os.Stdout),
		presenter.NewLogSink(zlog.Logger),
		services.WithLoanPeriod(loanPeriod),
	)

	frontCtx := context.WithValue(context.Background(), obs.DeskIDKey, "front-desk")
	studentCtx := context.WithValue(context.Background(), obs.DeskIDKey, "student-desk")

	nineteenEightyFour := domain.NewBook("1984", "George Orwell", "978-0451524935")
	cienAnos := domain.NewBook("Cien años de soledad", "Gabriel García Márquez", "978-0307474728")
	winston := domain.NewBorrower("Winston Smith", "br-001")
	julia := domain.NewBorrower("Julia", "br-002")
	aureliano := domain.NewBorrower("Aureliano Buendía", "br-003")

	// Successful checkout at the front desk.
	loan, err := frontDesk.Checkout(frontCtx, nineteenEightyFour, winston)
	if err != nil {
		log.Fatalf("demo checkout failed: %v", err)
	}

	// The copy is now on loan; a second checkout is rejected.
	if _, err := frontDesk.Checkout(frontCtx, nineteenEightyFour, julia); err != nil {
		log.Printf("expected rejection: %v", err)
	}

	// Backdate the due date three days to simulate a late return.
	loan.DueAt = time.Now().UTC().Add(-3 * domain.DayLength)
	if _, err := frontDesk.Return(frontCtx, loan); err != nil {
		log.Fatalf("demo return failed: %v", err)
	}

	// A second return of the same loan is rejected without state changes.
	if _, err := frontDesk.Return(frontCtx, loan); err != nil {
		log.Printf("expected rejection: %v", err)
	}

	// On-time return at the student desk: no fine under any policy.
	studentLoan, err := studentDesk.Checkout(studentCtx, cienAnos, aureliano)
	if err != nil {
		log.Fatalf("demo checkout failed: %v", err)
	}
	if _, err := studentDesk.Return(studentCtx, studentLoan); err != nil {
		log.Fatalf("demo return failed: %v", err)
	}

	log.Printf("demo done: front_desk_loans=%d student_desk_loans=%d",
		len(frontDesk.Loans()), len(studentDesk.Loans()))
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
