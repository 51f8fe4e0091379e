package model

import (
	"fmt"

	"github.com/Astemirdum/circulation-service/internal/errs"
)

// DefaultBorrowLimit caps how many items one borrower may hold at once.
const DefaultBorrowLimit = 2

// Borrower is a patron. It owns the ordered set of items currently held and
// enforces the borrowing limit; everything else goes through the Catalog.
type Borrower struct {
	ID      int    `validate:"required,gt=0"`
	Name    string `validate:"required,notblank"`
	Age     int    `validate:"gte=0"`
	Contact string `validate:"required,notblank"`

	limit int
	held  []*Item
}

type BorrowerOption func(*Borrower)

func WithBorrowLimit(n int) BorrowerOption {
	return func(b *Borrower) {
		if n > 0 {
			b.limit = n
		}
	}
}

func NewBorrower(id int, name string, age int, contact string, opts ...BorrowerOption) (*Borrower, error) {
	b := &Borrower{
		ID:      id,
		Name:    name,
		Age:     age,
		Contact: contact,
		limit:   DefaultBorrowLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := valid.Validate(b); err != nil {
		return nil, errs.Validation(err)
	}
	return b, nil
}

// BorrowItem appends it to the held set and flips the item state.
// False when the limit is reached or the item is already out.
func (b *Borrower) BorrowItem(it *Item) bool {
	if it == nil || len(b.held) >= b.limit || !it.Available() {
		return false
	}
	b.held = append(b.held, it)
	it.Borrow(b)
	return true
}

// ReturnItem removes it from the held set and flips the item state.
// False when this borrower does not hold the item.
func (b *Borrower) ReturnItem(it *Item) bool {
	for i, h := range b.held {
		if h == it {
			b.held = append(b.held[:i], b.held[i+1:]...)
			it.Return(b)
			return true
		}
	}
	return false
}

func (b *Borrower) Holds(it *Item) bool {
	for _, h := range b.held {
		if h == it {
			return true
		}
	}
	return false
}

// Held returns the currently held items in borrow order.
func (b *Borrower) Held() []*Item {
	out := make([]*Item, len(b.held))
	copy(out, b.held)
	return out
}

func (b *Borrower) Limit() int {
	return b.limit
}

func (b *Borrower) String() string {
	titles := make([]string, 0, len(b.held))
	for _, it := range b.held {
		titles = append(titles, it.Title)
	}
	return fmt.Sprintf("%s (ID: %d) - Borrowed Books: %v", b.Name, b.ID, titles)
}
