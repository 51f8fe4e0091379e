package catalog_test

import (
	"testing"

	"github.com/Astemirdum/circulation-service/internal/catalog"
	"github.com/Astemirdum/circulation-service/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog() *catalog.Catalog {
	return catalog.New(zap.NewExample().Named("test"))
}

func mustItem(t *testing.T, id int, title, genre string) *model.Item {
	t.Helper()
	it, err := model.NewItem(id, title, "Author "+title, genre)
	require.NoError(t, err)
	return it
}

func mustBorrower(t *testing.T, id int, name string, opts ...model.BorrowerOption) *model.Borrower {
	t.Helper()
	b, err := model.NewBorrower(id, name, 30, name+"@example.com", opts...)
	require.NoError(t, err)
	return b
}

func TestCatalog_AddRemove(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	first := mustItem(t, 1, "Book One", "Fiction")
	second := mustItem(t, 2, "Book Two", "Fiction")
	b := mustBorrower(t, 1, "Alice")

	cat.AddItems(first, second)
	cat.AddBorrower(b)
	require.Equal(t, []*model.Item{first, second}, cat.Items())
	require.Equal(t, []*model.Borrower{b}, cat.Borrowers())

	cat.RemoveItem(first)
	require.Equal(t, []*model.Item{second}, cat.Items())

	// removing something absent is a no-op
	cat.RemoveItem(first)
	require.Equal(t, []*model.Item{second}, cat.Items())

	cat.RemoveBorrower(b)
	require.Empty(t, cat.Borrowers())
	cat.RemoveBorrower(b)
	require.Empty(t, cat.Borrowers())
}

func TestCatalog_AddRejectsMalformed(t *testing.T) {
	t.Parallel()
	cat := newCatalog()

	cat.AddItems(nil, &model.Item{}, mustItem(t, 1, "Book One", "Fiction"))
	require.Len(t, cat.Items(), 1)

	cat.AddBorrowers(nil, &model.Borrower{})
	require.Empty(t, cat.Borrowers())
}

func TestCatalog_IssueReturnRoundTrip(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	it := mustItem(t, 1, "Book One", "Fiction")
	b := mustBorrower(t, 1, "Alice")
	cat.AddItem(it)
	cat.AddBorrower(b)

	require.True(t, cat.Issue(it, b))
	require.False(t, it.Available())
	require.True(t, b.Holds(it))

	require.True(t, cat.Return(it, b))
	require.True(t, it.Available())
	require.False(t, b.Holds(it))

	d := cat.ReturnDetails(it)
	require.NotNil(t, d)
	require.Equal(t, b.ID, d.ActorID)
	require.Equal(t, b.Name, d.ActorName)
}

func TestCatalog_IssueFailures(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	inCatalog := mustItem(t, 1, "Book One", "Fiction")
	outside := mustItem(t, 2, "Book Two", "Fiction")
	alice := mustBorrower(t, 1, "Alice")
	bob := mustBorrower(t, 2, "Bob")
	cat.AddItem(inCatalog)
	cat.AddBorrowers(alice, bob)

	// not a member of the catalog
	require.False(t, cat.Issue(outside, alice))
	require.True(t, outside.Available())

	// already issued to someone else
	require.True(t, cat.Issue(inCatalog, alice))
	require.False(t, cat.Issue(inCatalog, bob))
	require.Empty(t, bob.Held())

	require.False(t, cat.Issue(nil, alice))
	require.False(t, cat.Issue(inCatalog, nil))
}

func TestCatalog_IssueAtCapacity(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	first := mustItem(t, 1, "Book One", "Fiction")
	second := mustItem(t, 2, "Book Two", "Fiction")
	third := mustItem(t, 3, "Book Three", "Fantasy")
	b := mustBorrower(t, 1, "Alice", model.WithBorrowLimit(2))
	cat.AddItems(first, second, third)
	cat.AddBorrower(b)

	require.True(t, cat.Issue(first, b))
	require.True(t, cat.Issue(second, b))

	require.False(t, cat.Issue(third, b))
	require.Len(t, b.Held(), 2)
	require.True(t, third.Available())
}

func TestCatalog_ReturnNotIssued(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	it := mustItem(t, 1, "Book One", "Fiction")
	holder := mustBorrower(t, 1, "Alice")
	other := mustBorrower(t, 2, "Bob")
	cat.AddItem(it)
	cat.AddBorrowers(holder, other)

	require.True(t, cat.Issue(it, holder))

	// never issued to this borrower: no exception, no state change
	require.False(t, cat.Return(it, other))
	require.Empty(t, other.Held())
	require.False(t, it.Available())
	require.True(t, holder.Holds(it))
}

func TestCatalog_IssueScenario(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	item1 := mustItem(t, 1, "Book One", "Fiction")
	item2 := mustItem(t, 2, "Book Two", "Fiction")
	item3 := mustItem(t, 3, "Book Three", "Fantasy")
	b := mustBorrower(t, 1, "Alice")
	cat.AddItems(item1, item2, item3)
	cat.AddBorrower(b)

	require.True(t, cat.Issue(item1, b))
	require.False(t, item1.Available())
	require.Equal(t, []*model.Item{item1}, b.Held())

	require.Equal(t, []*model.Item{item2, item3}, cat.AvailableItems(""))
	require.Equal(t, map[string]int{"Fiction": 1}, cat.CountByGenre(true))
}

func TestCatalog_AvailabilityConsistency(t *testing.T) {
	t.Parallel()
	cat := newCatalog()
	items := []*model.Item{
		mustItem(t, 1, "Book One", "Fiction"),
		mustItem(t, 2, "Book Two", "Fiction"),
		mustItem(t, 3, "Book Three", "Fantasy"),
	}
	alice := mustBorrower(t, 1, "Alice")
	bob := mustBorrower(t, 2, "Bob")
	cat.AddItems(items...)
	cat.AddBorrowers(alice, bob)

	require.True(t, cat.Issue(items[0], alice))
	require.True(t, cat.Issue(items[2], bob))
	require.True(t, cat.Return(items[0], alice))

	// an item is available iff no borrower holds it
	for _, it := range cat.Items() {
		held := false
		for _, b := range cat.Borrowers() {
			if b.Holds(it) {
				held = true
			}
		}
		require.Equal(t, !held, it.Available())
	}
}
