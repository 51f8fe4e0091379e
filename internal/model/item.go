package model

import (
	"fmt"
	"time"

	"github.com/Astemirdum/circulation-service/internal/errs"
	"github.com/Astemirdum/circulation-service/pkg/validate"
)

var valid = validate.NewCustomValidator()

// Item is one lendable unit. Availability and the provenance of the most
// recent borrow/return transition live on the item itself; the references
// back to a Borrower are non-owning.
type Item struct {
	ID     int    `validate:"required,gt=0"`
	Title  string `validate:"required,notblank"`
	Author string `validate:"required,notblank"`
	Genre  string `validate:"required,notblank"`

	available  bool
	borrowedAt *time.Time
	borrowedBy *Borrower
	returnedAt *time.Time
	returnedBy *Borrower
}

func NewItem(id int, title, author, genre string) (*Item, error) {
	it := &Item{
		ID:        id,
		Title:     title,
		Author:    author,
		Genre:     genre,
		available: true,
	}
	if err := valid.Validate(it); err != nil {
		return nil, errs.Validation(err)
	}
	return it, nil
}

func (it *Item) Available() bool {
	return it.available
}

// Borrow marks the item taken by actor. A second borrow without a return in
// between is a normal no-op failure, not an error.
func (it *Item) Borrow(actor *Borrower) bool {
	if !it.available {
		return false
	}
	now := time.Now()
	it.available = false
	it.borrowedAt = &now
	it.borrowedBy = actor
	return true
}

// Return marks the item available again. It does not verify that actor is
// the current holder; the held-set check belongs to Borrower and Catalog,
// which can actually see it.
func (it *Item) Return(actor *Borrower) {
	now := time.Now()
	it.available = true
	it.returnedAt = &now
	it.returnedBy = actor
}

// EventDetails is the provenance of a single borrow or return transition.
type EventDetails struct {
	At        time.Time
	ActorName string
	ActorID   int
}

// BorrowDetails reports who currently holds the item and since when.
// Nil while the item sits on the shelf.
func (it *Item) BorrowDetails() *EventDetails {
	if it.available || it.borrowedAt == nil {
		return nil
	}
	d := &EventDetails{At: *it.borrowedAt}
	if it.borrowedBy != nil {
		d.ActorName = it.borrowedBy.Name
		d.ActorID = it.borrowedBy.ID
	}
	return d
}

// ReturnDetails reports the most recent return. Nil while the item is out.
func (it *Item) ReturnDetails() *EventDetails {
	if !it.available || it.returnedAt == nil {
		return nil
	}
	d := &EventDetails{At: *it.returnedAt}
	if it.returnedBy != nil {
		d.ActorName = it.returnedBy.Name
		d.ActorID = it.returnedBy.ID
	}
	return d
}

// History is the combined audit record for one item.
type History struct {
	ItemID    int
	Title     string
	Available bool
	Borrow    *EventDetails
	Return    *EventDetails
}

func (it *Item) String() string {
	status := "Available"
	if !it.available {
		status = "Not Available"
	}
	return fmt.Sprintf("%s by %s (ID: %d) - %s", it.Title, it.Author, it.ID, status)
}
