package pricebook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/pricebook/model"
)

// Policy decides what Collect does when a document fails.
type Policy int

const (
	// AbortOnError stops the batch at the first failing document.
	AbortOnError Policy = iota
	// SkipFailed records the failure and continues with the next document.
	SkipFailed
)

func (p Policy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipFailed:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "abort" or "skip".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort", "":
		return AbortOnError, nil
	case "skip":
		return SkipFailed, nil
	}
	return 0, fmt.Errorf("unknown error policy %q (want abort or skip)", s)
}

// Failure records a document skipped under SkipFailed.
type Failure struct {
	Source string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Source, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// DocumentResult is the outcome of one successfully processed document.
type DocumentResult struct {
	Source   string
	Date     string
	Items    []model.Item
	Warnings []Warning
}

// CollectResult is the outcome of a batch.
type CollectResult struct {
	// History holds the latest price of every item on every invoice date.
	History *model.PriceHistory
	// Items holds every extracted item in document order.
	Items     []model.Item
	Documents []DocumentResult
	Failures  []Failure
}

// Warnings returns the warnings of all documents.
func (r *CollectResult) Warnings() []Warning {
	var out []Warning
	for _, d := range r.Documents {
		out = append(out, d.Warnings...)
	}
	return out
}

// Collect extracts every source in order and aggregates the items into a
// price history. A later document overwrites the price of the same item on
// the same date. A document contributes to the history only once it has
// been extracted completely.
//
// Under AbortOnError the first failure is returned along with the result
// so far. The context is checked between documents.
func Collect(ctx context.Context, sources []*Extractor, policy Policy, logger *slog.Logger) (*CollectResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	result := &CollectResult{History: model.NewPriceHistory()}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		date, items, warnings, err := src.WithLogger(logger).datedItems()
		if err != nil {
			if policy == AbortOnError {
				return result, fmt.Errorf("collect: %w", err)
			}
			logger.Warn("skipping invoice", "source", src.Name(), "error", err)
			result.Failures = append(result.Failures, Failure{Source: src.Name(), Err: err})
			continue
		}

		for _, w := range warnings {
			logger.Info("extraction warning", "source", w.Source, "code", w.Code.String(), "message", w.Message)
		}

		doc := DocumentResult{Source: src.Name(), Date: date, Items: items, Warnings: warnings}
		result.Documents = append(result.Documents, doc)
		result.Items = append(result.Items, items...)
		result.History.AddAll(items)

		logger.Info("invoice processed", "source", src.Name(), "items", len(items))
	}
	return result, nil
}
