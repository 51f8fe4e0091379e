package catalog

import (
	"github.com/Astemirdum/circulation-service/internal/model"
	"go.uber.org/zap"
)

// Catalog owns the item and borrower collections and mediates every
// issue/return so both sides of a transition change together or not at all.
// Single logical caller at a time; there is deliberately no locking here.
type Catalog struct {
	log       *zap.Logger
	items     []*model.Item
	borrowers []*model.Borrower
}

func New(log *zap.Logger) *Catalog {
	return &Catalog{
		log: log.Named("catalog"),
	}
}

func (c *Catalog) AddItem(it *model.Item) {
	c.AddItems(it)
}

func (c *Catalog) AddItems(items ...*model.Item) {
	for _, it := range items {
		// constructors guarantee shape; this only catches hand-built values
		if it == nil || it.ID <= 0 {
			c.log.Warn("add item rejected: missing identity")
			continue
		}
		c.items = append(c.items, it)
	}
}

func (c *Catalog) AddBorrower(b *model.Borrower) {
	c.AddBorrowers(b)
}

func (c *Catalog) AddBorrowers(borrowers ...*model.Borrower) {
	for _, b := range borrowers {
		if b == nil || b.ID <= 0 {
			c.log.Warn("add borrower rejected: missing identity")
			continue
		}
		c.borrowers = append(c.borrowers, b)
	}
}

func (c *Catalog) RemoveItem(it *model.Item) {
	for i, have := range c.items {
		if have == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Catalog) RemoveBorrower(b *model.Borrower) {
	for i, have := range c.borrowers {
		if have == b {
			c.borrowers = append(c.borrowers[:i], c.borrowers[i+1:]...)
			return
		}
	}
}

// Issue lends it to b. "Cannot borrow right now" is an ordinary outcome
// reported as false and a log line, never an error.
func (c *Catalog) Issue(it *model.Item, b *model.Borrower) bool {
	if it == nil || b == nil {
		c.log.Warn("issue rejected: nil item or borrower")
		return false
	}
	if !c.containsItem(it) || !it.Available() {
		c.log.Info("issue: item not available",
			zap.Int("itemID", it.ID), zap.String("title", it.Title),
			zap.Int("borrowerID", b.ID))
		return false
	}
	if !b.BorrowItem(it) {
		c.log.Info("issue: borrow limit reached",
			zap.Int("itemID", it.ID), zap.String("title", it.Title),
			zap.Int("borrowerID", b.ID), zap.Int("limit", b.Limit()))
		return false
	}
	c.log.Info("issued",
		zap.Int("itemID", it.ID), zap.String("title", it.Title),
		zap.Int("borrowerID", b.ID), zap.String("borrower", b.Name))
	return true
}

// Return takes it back from b. False when b never held the item.
func (c *Catalog) Return(it *model.Item, b *model.Borrower) bool {
	if it == nil || b == nil {
		c.log.Warn("return rejected: nil item or borrower")
		return false
	}
	if !b.Holds(it) {
		c.log.Info("return: item not held by borrower",
			zap.Int("itemID", it.ID), zap.String("title", it.Title),
			zap.Int("borrowerID", b.ID))
		return false
	}
	b.ReturnItem(it)
	c.log.Info("returned",
		zap.Int("itemID", it.ID), zap.String("title", it.Title),
		zap.Int("borrowerID", b.ID), zap.String("borrower", b.Name))
	return true
}

// Items returns the collection in insertion order.
func (c *Catalog) Items() []*model.Item {
	out := make([]*model.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Borrowers() []*model.Borrower {
	out := make([]*model.Borrower, len(c.borrowers))
	copy(out, c.borrowers)
	return out
}

func (c *Catalog) containsItem(it *model.Item) bool {
	for _, have := range c.items {
		if have == it {
			return true
		}
	}
	return false
}
