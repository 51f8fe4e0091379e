package catalog

import (
	"sort"
	"strings"

	"github.com/Astemirdum/circulation-service/internal/errs"
	"github.com/Astemirdum/circulation-service/internal/model"
	"go.uber.org/zap"
)

// Read-only views over the catalog state. None of these mutate anything.

// AvailableItems lists items on the shelf, optionally for one genre
// (empty genre means all).
func (c *Catalog) AvailableItems(genre string) []*model.Item {
	return c.filterItems(func(it *model.Item) bool {
		return it.Available() && (genre == "" || it.Genre == genre)
	})
}

// IssuedItems lists items currently out, optionally for one genre.
func (c *Catalog) IssuedItems(genre string) []*model.Item {
	return c.filterItems(func(it *model.Item) bool {
		return !it.Available() && (genre == "" || it.Genre == genre)
	})
}

// BorrowersWithHeldItems filters borrowers down to those holding anything.
func (c *Catalog) BorrowersWithHeldItems(borrowers []*model.Borrower) []*model.Borrower {
	var out []*model.Borrower
	for _, b := range borrowers {
		if b != nil && len(b.Held()) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Search matches keyword against title or author, case-insensitively, in
// catalog order. A blank keyword is a validation failure recovered here:
// logged and answered with an empty result.
func (c *Catalog) Search(keyword string) []*model.Item {
	if strings.TrimSpace(keyword) == "" {
		c.log.Warn("search rejected", zap.Error(errs.Validation(errs.ErrEmptyKeyword)))
		return nil
	}
	keyword = strings.ToLower(keyword)
	return c.filterItems(func(it *model.Item) bool {
		return strings.Contains(strings.ToLower(it.Title), keyword) ||
			strings.Contains(strings.ToLower(it.Author), keyword)
	})
}

// CountByGenre maps genre to item count in one scan. With onlyIssued, only
// items currently out are counted.
func (c *Catalog) CountByGenre(onlyIssued bool) map[string]int {
	counts := make(map[string]int)
	for _, it := range c.items {
		if onlyIssued && it.Available() {
			continue
		}
		counts[it.Genre]++
	}
	return counts
}

// MostPopularIssuedGenre returns the genres tied for the highest count among
// issued items, sorted for stable output. Empty when nothing is issued.
func (c *Catalog) MostPopularIssuedGenre() []string {
	counts := c.CountByGenre(true)
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	var out []string
	for genre, n := range counts {
		if n == maxCount {
			out = append(out, genre)
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) BorrowDetails(it *model.Item) *model.EventDetails {
	if it == nil {
		return nil
	}
	return it.BorrowDetails()
}

func (c *Catalog) ReturnDetails(it *model.Item) *model.EventDetails {
	if it == nil {
		return nil
	}
	return it.ReturnDetails()
}

// History assembles the combined audit record for one item.
func (c *Catalog) History(it *model.Item) model.History {
	if it == nil {
		return model.History{}
	}
	return model.History{
		ItemID:    it.ID,
		Title:     it.Title,
		Available: it.Available(),
		Borrow:    it.BorrowDetails(),
		Return:    it.ReturnDetails(),
	}
}

func (c *Catalog) filterItems(keep func(*model.Item) bool) []*model.Item {
	var out []*model.Item
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
