package refund

import (
	"strings"
	"time"

	"pos-engine/internal/domain/transaction"
)

// Filter narrows the historical transaction list during refund lookup. Empty
// fields are ignored; non-empty fields combine with logical AND, while the
// item-level predicates within one field combine with OR across a
// transaction's items.
type Filter struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	ProductName string
	SKU         string
	Category    string
}

func (f Filter) IsZero() bool {
	return f.DateFrom == nil && f.DateTo == nil &&
		f.ProductName == "" && f.SKU == "" && f.Category == ""
}

// ParseDateRange parses the "<start> to <end>" form the refund dialog
// produces. Either side may be omitted.
func ParseDateRange(s string) (from, to *time.Time) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, " to ", 2)
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(parts[0])); err == nil {
		from = &t
	}
	if len(parts) == 2 {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(parts[1])); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond) // inclusive end of day
			to = &end
		}
	}
	return from, to
}

// FilterTransactions keeps the transactions matching every non-empty filter
// field: inclusive date-range membership on the transaction timestamp,
// case-insensitive substring match on item name/sku, exact match on item
// category. A transaction qualifies for an item-level field when at least one
// of its items satisfies the predicate.
func FilterTransactions(txns []transaction.Transaction, f Filter) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txns))
	for _, txn := range txns {
		if matches(txn, f) {
			out = append(out, txn)
		}
	}
	return out
}

func matches(txn transaction.Transaction, f Filter) bool {
	if f.DateFrom != nil && txn.Timestamp.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && txn.Timestamp.After(*f.DateTo) {
		return false
	}
	if f.ProductName != "" && !anyItem(txn, func(it transaction.Item) bool {
		return strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.ProductName))
	}) {
		return false
	}
	if f.SKU != "" && !anyItem(txn, func(it transaction.Item) bool {
		return strings.Contains(strings.ToLower(it.SKU), strings.ToLower(f.SKU))
	}) {
		return false
	}
	if f.Category != "" && !anyItem(txn, func(it transaction.Item) bool {
		return it.Category == f.Category
	}) {
		return false
	}
	return true
}

func anyItem(txn transaction.Transaction, pred func(transaction.Item) bool) bool {
	for _, it := range txn.Items {
		if pred(it) {
			return true
		}
	}
	return false
}
