package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"warehouse/internal/domain/entity"
)

// SortKey names a scalar transaction field to order by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByQuantity    SortKey = "quantity"
	SortByProductName SortKey = "productName"
	SortByType        SortKey = "type"
	SortByID          SortKey = "id"
)

// ParseSortKey maps a client-supplied key to a SortKey. "amount" is an
// alias for quantity.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return SortByDate, true
	case "quantity", "amount":
		return SortByQuantity, true
	case "productname", "product":
		return SortByProductName, true
	case "type":
		return SortByType, true
	case "id":
		return SortByID, true
	default:
		return "", false
	}
}

// Direction is ascending or descending.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts asc/desc and their long forms. Anything else is ascending.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// FilterTransactions keeps the entries matching pred, preserving order.
// A nil pred keeps everything.
func FilterTransactions(list []entity.Transaction, pred func(entity.Transaction) bool) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(list))
	for _, t := range list {
		if pred == nil || pred(t) {
			out = append(out, t)
		}
	}

	return out
}

// SortTransactions returns a stably sorted copy of list. Entries that
// compare equal keep their relative order, so sorts compose. An unknown key
// returns the copy unsorted.
func SortTransactions(list []entity.Transaction, key SortKey, dir Direction) []entity.Transaction {
	out := slices.Clone(list)

	var compare func(a, b entity.Transaction) int
	switch key {
	case SortByDate:
		compare = func(a, b entity.Transaction) int { return a.Date.Compare(b.Date) }
	case SortByQuantity:
		compare = func(a, b entity.Transaction) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case SortByProductName:
		compare = func(a, b entity.Transaction) int { return strings.Compare(a.ProductName, b.ProductName) }
	case SortByType:
		compare = func(a, b entity.Transaction) int { return strings.Compare(string(a.Type), string(b.Type)) }
	case SortByID:
		compare = func(a, b entity.Transaction) int { return strings.Compare(a.ID, b.ID) }
	default:
		return out
	}

	if dir == Descending {
		asc := compare
		compare = func(a, b entity.Transaction) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)

	return out
}

// Page is one window of a larger list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the 1-indexed page of list. Pages past the end, a page
// below 1 or a non-positive size give an empty page, never an error.
func Paginate[T any](list []T, pageSize, page int) Page[T] {
	p := Page[T]{Items: []T{}, Page: page, PageSize: pageSize, Total: len(list)}
	if pageSize <= 0 {
		return p
	}
	p.TotalPages = len(list) / pageSize
	if len(list)%pageSize != 0 {
		p.TotalPages++
	}
	if page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * pageSize
	end := start + min(pageSize, len(list)-start)
	p.Items = slices.Clone(list[start:end])

	return p
}

// TransactionQuery is the transaction list filter. Zero fields do not filter.
type TransactionQuery struct {
	Type      entity.TransactionType
	ProductID string
	Search    string // Case-insensitive match on product name, supplier or customer.
	From      *time.Time
	To        *time.Time // Inclusive.
}

// Match reports whether t passes every set criterion.
func (q TransactionQuery) Match(t entity.Transaction) bool {
	if q.Type != "" && t.Type != q.Type {
		return false
	}
	if q.ProductID != "" && t.ProductID != q.ProductID {
		return false
	}
	if q.From != nil && t.Date.Before(*q.From) {
		return false
	}
	if q.To != nil && t.Date.After(*q.To) {
		return false
	}
	if q.Search != "" {
		return containsFold(q.Search, t.ProductName, t.Supplier, t.Customer)
	}

	return true
}

// ProductQuery is the product list filter. Zero fields do not filter.
type ProductQuery struct {
	Category     string
	Search       string // Case-insensitive match on name, code or category.
	LowStockOnly bool
}

// Match reports whether p passes every set criterion.
func (q ProductQuery) Match(p entity.Product) bool {
	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	if q.LowStockOnly && !p.IsLowStock() {
		return false
	}
	if q.Search != "" {
		return containsFold(q.Search, p.Name, p.Code, p.Category)
	}

	return true
}

func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}

	return false
}
