// Package documents generates the documents of the foreign donation
// disclosure: the letter to the authorities and the text of the journal
// publication.
package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrTimeout       = errors.New("document generation did not finish in time")
	ErrInvalidHandle = errors.New("the document handle is invalid")
)

// ReportContext contains everything a generator may put into a document.
type ReportContext struct {
	ReportID          uuid.UUID
	TransactionID     uuid.UUID
	TransactionDate   types.Date
	ReportingDeadline types.Date
	Amount            decimal.Decimal
	Description       string
	ReferenceNumber   string
	DonorName         string
	DonorAddress      string
	DonorAnonymous    bool
	ProjectName       string
}

// Generator produces documents.
//
// Letters are stored by the generator, the returned handle identifies the stored
// letter. A handle must only be returned once the letter is stored durably.
type Generator interface {
	GenerateLetter(ctx context.Context, rc ReportContext) (string, error)
	GenerateJournalText(ctx context.Context, rc ReportContext) (string, error)
	Open(handle string) (io.ReadCloser, error)
}

type bounded struct {
	Generator
	timeout time.Duration
}

// WithTimeout returns a Generator that fails with ErrTimeout if a call to g
// takes longer than timeout. g keeps running in the background, its result
// is discarded.
func WithTimeout(g Generator, timeout time.Duration) Generator {
	return bounded{Generator: g, timeout: timeout}
}

func (b bounded) GenerateLetter(ctx context.Context, rc ReportContext) (string, error) {
	return b.call(ctx, rc, b.Generator.GenerateLetter)
}

func (b bounded) GenerateJournalText(ctx context.Context, rc ReportContext) (string, error) {
	return b.call(ctx, rc, b.Generator.GenerateJournalText)
}

type result struct {
	value string
	err   error
}

func (b bounded) call(ctx context.Context, rc ReportContext, f func(context.Context, ReportContext) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	// Buffered so that the goroutine can always exit
	done := make(chan result, 1)
	go func() {
		value, err := f(ctx, rc)
		done <- result{value, err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, b.timeout)
		}
		return "", ctx.Err()
	}
}
