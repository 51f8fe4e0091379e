package main

import (
	"fmt"
	stdLog "log"

	"github.com/Astemirdum/circulation-service/config"
	"github.com/Astemirdum/circulation-service/internal/catalog"
	"github.com/Astemirdum/circulation-service/internal/model"
	"github.com/Astemirdum/circulation-service/internal/report"
	"github.com/Astemirdum/circulation-service/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env:", err)
	}
	cfg := config.NewConfig()

	log := logger.NewLogger(cfg.Log, "circulation")
	defer func() { _ = log.Sync() }()

	log.Info("library circulation demo started")

	cat := catalog.New(log)
	items := sampleItems(log)
	borrowers := sampleBorrowers(log, cfg.BorrowLimit)
	cat.AddItems(items...)
	cat.AddBorrowers(borrowers...)

	displayList("Books in the Library", cat.Items())
	displayList("Library Members", cat.Borrowers())

	runCirculation(cat, items, borrowers, log)

	displayList("Members with borrowed books", cat.BorrowersWithHeldItems(cat.Borrowers()))
	displayList("Books currently issued (borrowed) in the library", cat.IssuedItems(""))
	displayList("Books currently available in the library", cat.AvailableItems(""))
	displayList("Books currently available of genre - Fiction", cat.AvailableItems("Fiction"))
	displayList("Books currently available of genre - Dystopian", cat.AvailableItems("Dystopian"))

	for _, keyword := range []string{"the", "tolkien", "kill"} {
		displayList(fmt.Sprintf("Search for a book by keyword %q", keyword), cat.Search(keyword))
	}

	displayCounts("Books count by genre", cat.CountByGenre(false))
	displayCounts("Issued Books count by genre", cat.CountByGenre(true))

	banner("Most popular genre amongst issued books")
	for _, genre := range cat.MostPopularIssuedGenre() {
		fmt.Println(genre)
	}

	displayHistory(cat, items[0])

	gen := report.New(cat, log)
	if err := gen.Generate(cfg.Report.Path); err != nil {
		log.Error("generate report", zap.Error(err))
	}

	log.Info("library circulation demo completed")
}

func runCirculation(cat *catalog.Catalog, items []*model.Item, borrowers []*model.Borrower, log *zap.Logger) {
	log.Info("issuing books")
	issues := []struct{ item, borrower int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 4},
		{6, 5}, {7, 5}, {8, 0}, {9, 1}, {19, 2}, {20, 4},
	}
	for _, p := range issues {
		cat.Issue(items[p.item], borrowers[p.borrower])
	}

	// already borrowed, and a holder borrowing twice
	cat.Issue(items[0], borrowers[3])
	cat.Issue(items[2], borrowers[0])

	log.Info("returning books")
	returns := []struct{ item, borrower int }{
		{0, 0}, {2, 1}, {4, 3}, {9, 1},
	}
	for _, p := range returns {
		cat.Return(items[p.item], borrowers[p.borrower])
	}

	// never issued to these borrowers
	cat.Return(items[10], borrowers[6])
	cat.Return(items[14], borrowers[1])
}

func sampleItems(log *zap.Logger) []*model.Item {
	specs := []struct {
		id                   int
		title, author, genre string
	}{
		{1, "The Great Gatsby", "F. Scott Fitzgerald", "Fiction"},
		{2, "To Kill a Mockingbird", "Harper Lee", "Fiction"},
		{3, "The Catcher in the Rye", "J.D. Salinger", "Fiction"},
		{4, "War and Peace", "Leo Tolstoy", "Fiction"},
		{5, "Pride and Prejudice", "Jane Austen", "Fiction"},
		{6, "The Fault in Our Stars", "John Green", "Fiction"},
		{7, "Brave New World", "Aldous Huxley", "Dystopian"},
		{8, "Fahrenheit 451", "Ray Bradbury", "Dystopian"},
		{9, "The Hunger Games", "Suzanne Collins", "Dystopian"},
		{10, "The Handmaid's Tale", "Margaret Atwood", "Dystopian"},
		{11, "The Road", "Cormac McCarthy", "Dystopian"},
		{12, "The Hobbit", "J.R.R. Tolkien", "Fantasy"},
		{13, "The Lord of the Rings", "J.R.R. Tolkien", "Fantasy"},
		{14, "The Chronicles of Narnia", "C.S. Lewis", "Fantasy"},
		{15, "Moby Dick", "Herman Melville", "Adventure"},
		{16, "The Alchemist", "Paulo Coelho", "Adventure"},
		{17, "The Odyssey", "Homer", "Adventure"},
		{18, "The Da Vinci Code", "Dan Brown", "Thriller"},
		{19, "The Shining", "Stephen King", "Thriller"},
		{20, "The Girl with the Dragon Tattoo", "Stieg Larsson", "Mystery"},
		{21, "Art in 1984", "George Orwell", "Literature"},
	}
	items := make([]*model.Item, 0, len(specs))
	for _, s := range specs {
		it, err := model.NewItem(s.id, s.title, s.author, s.genre)
		if err != nil {
			log.Fatal("sample item", zap.Int("id", s.id), zap.Error(err))
		}
		items = append(items, it)
	}
	return items
}

func sampleBorrowers(log *zap.Logger, limit int) []*model.Borrower {
	specs := []struct {
		id      int
		name    string
		age     int
		contact string
	}{
		{1, "Alice", 30, "alice@example.com"},
		{2, "Bob", 25, "bob@example.com"},
		{3, "Charlie", 35, "charlie@example.com"},
		{4, "David", 28, "david@example.com"},
		{5, "Eve", 22, "eve@example.com"},
		{6, "Frank", 40, "frank@example.com"},
		{7, "Grace", 27, "grace@example.com"},
	}
	borrowers := make([]*model.Borrower, 0, len(specs))
	for _, s := range specs {
		b, err := model.NewBorrower(s.id, s.name, s.age, s.contact, model.WithBorrowLimit(limit))
		if err != nil {
			log.Fatal("sample borrower", zap.Int("id", s.id), zap.Error(err))
		}
		borrowers = append(borrowers, b)
	}
	return borrowers
}

func banner(title string) {
	fmt.Printf("\n================== %s ==================\n", title)
}

func displayList[T fmt.Stringer](title string, list []T) {
	banner(title)
	if len(list) == 0 {
		fmt.Println("Nothing to display.")
		return
	}
	for _, v := range list {
		fmt.Println(v)
	}
}

func displayCounts(title string, counts map[string]int) {
	banner(title)
	if len(counts) == 0 {
		fmt.Println("No books in the library to count by genre.")
		return
	}
	for genre, count := range counts {
		fmt.Printf("%s: %d\n", genre, count)
	}
}

func displayHistory(cat *catalog.Catalog, it *model.Item) {
	banner(fmt.Sprintf("History for %q", it.Title))
	h := cat.History(it)
	status := "Available"
	if !h.Available {
		status = "Borrowed"
	}
	fmt.Printf("Book ID: %d\nTitle: %s\nCurrent Status: %s\n", h.ItemID, h.Title, status)
	if h.Borrow != nil {
		fmt.Printf("Borrowed At: %s by %s (ID: %d)\n", h.Borrow.At, h.Borrow.ActorName, h.Borrow.ActorID)
	}
	if h.Return != nil {
		fmt.Printf("Returned At: %s by %s (ID: %d)\n", h.Return.At, h.Return.ActorName, h.Return.ActorID)
	}
}
