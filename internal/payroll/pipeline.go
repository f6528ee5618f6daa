package payroll

import (
	"context"
	"fmt"
	"io"
	"sync"

	"shoppay/internal/ingest"
)

// Inputs are the weekly CSV streams for one processing run. Week 2 readers
// may be nil: the two-file variant treats the second week as entirely
// absent, which joins to zeroed breakdowns.
type Inputs struct {
	Week1Clocked io.Reader
	Week2Clocked io.Reader
	Week1Billed  io.Reader
	Week2Billed  io.Reader
}

type Options struct {
	// HolidayRate is the per-hour holiday pay rate. Defaults to 0, which
	// matches the observed configuration: holiday hours are tracked but
	// unpaid unless configured otherwise.
	HolidayRate float64
}

type Result struct {
	Reports []EmployeeReport `json:"reports"`
	// Skipped counts joined employees dropped for lack of a rate entry.
	Skipped int `json:"skipped"`
	// DroppedRows counts input rows discarded during normalization.
	DroppedRows int `json:"droppedRows"`
}

// Process runs the whole pipeline: the four (or two) files are parsed
// concurrently, joined per employee, gated through the rate table, then
// calculated and assembled. A new run is independent of any previous one;
// last call wins.
func Process(ctx context.Context, in Inputs, rates RateTable, opts Options) (Result, error) {
	var (
		wg           sync.WaitGroup
		week1Clocked []ingest.ClockedTimeRecord
		week2Clocked []ingest.ClockedTimeRecord
		week1Billed  []ingest.BilledHoursRecord
		week2Billed  []ingest.BilledHoursRecord
		drops        [4]int
		errs         [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		if in.Week1Clocked != nil {
			week1Clocked, drops[0], errs[0] = ingest.ParseClockedTime(in.Week1Clocked)
		}
	}()
	go func() {
		defer wg.Done()
		if in.Week2Clocked != nil {
			week2Clocked, drops[1], errs[1] = ingest.ParseClockedTime(in.Week2Clocked)
		}
	}()
	go func() {
		defer wg.Done()
		if in.Week1Billed != nil {
			week1Billed, drops[2], errs[2] = ingest.ParseBilledHours(in.Week1Billed)
		}
	}()
	go func() {
		defer wg.Done()
		if in.Week2Billed != nil {
			week2Billed, drops[3], errs[3] = ingest.ParseBilledHours(in.Week2Billed)
		}
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	for _, err := range errs {
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
	}

	joined := JoinWeeks(week1Clocked, week2Clocked, week1Billed, week2Billed)

	result := Result{
		Reports:     make([]EmployeeReport, 0, len(joined)),
		DroppedRows: drops[0] + drops[1] + drops[2] + drops[3],
	}
	for _, hours := range joined {
		resolved, ok := rates.Resolve(hours.Name)
		if !ok {
			result.Skipped++
			continue
		}
		result.Reports = append(result.Reports, Calculate(hours, resolved, opts.HolidayRate))
	}

	if len(result.Reports) == 0 {
		return result, ErrEmptyResult
	}
	return result, nil
}
