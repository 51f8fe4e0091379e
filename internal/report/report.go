package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Astemirdum/circulation-service/internal/catalog"
	"github.com/Astemirdum/circulation-service/internal/model"
	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Generator renders the circulation state of a catalog into a PDF report:
// inventory, holdings, genre statistics and the per-item audit trail.
type Generator struct {
	log *zap.Logger
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog, log *zap.Logger) *Generator {
	return &Generator{
		log: log.Named("report"),
		cat: cat,
	}
}

const timeLayout = "2006-01-02 15:04:05"

func (g *Generator) Generate(path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Library Circulation Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Library Circulation Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, "Generated on: "+time.Now().Format(timeLayout), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.writeInventory(pdf)
	g.writeBorrowers(pdf)
	g.writeGenreStats(pdf)
	g.writeAuditTrail(pdf)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(err, "write report")
	}
	g.log.Info("report written", zap.String("path", path))
	return nil
}

func (g *Generator) writeInventory(pdf *fpdf.Fpdf) {
	heading(pdf, "Inventory")

	widths := []float64{14, 62, 50, 34, 30}
	cols := []string{"ID", "Title", "Author", "Genre", "Status"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(224, 230, 240)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range g.cat.Items() {
		status := "Available"
		if !it.Available() {
			status = "Issued"
		}
		cells := []string{
			fmt.Sprintf("%d", it.ID),
			it.Title,
			it.Author,
			it.Genre,
			status,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (g *Generator) writeBorrowers(pdf *fpdf.Fpdf) {
	heading(pdf, "Borrowers")

	pdf.SetFont("Helvetica", "", 10)
	for _, b := range g.cat.Borrowers() {
		titles := make([]string, 0, len(b.Held()))
		for _, it := range b.Held() {
			titles = append(titles, it.Title)
		}
		holding := "nothing"
		if len(titles) > 0 {
			holding = strings.Join(titles, ", ")
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("%s (ID: %d) - holding: %s", b.Name, b.ID, holding),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (g *Generator) writeGenreStats(pdf *fpdf.Fpdf) {
	heading(pdf, "Genre Statistics")

	pdf.SetFont("Helvetica", "", 10)
	total := g.cat.CountByGenre(false)
	issued := g.cat.CountByGenre(true)
	for _, genre := range sortedKeys(total) {
		pdf.CellFormat(0, 6,
			fmt.Sprintf("%s: %d in catalog, %d issued", genre, total[genre], issued[genre]),
			"", 1, "L", false, 0, "")
	}

	popular := g.cat.MostPopularIssuedGenre()
	pdf.Ln(2)
	if len(popular) > 0 {
		pdf.CellFormat(0, 6, "Most popular issued genre(s): "+strings.Join(popular, ", "),
			"", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "No items issued.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (g *Generator) writeAuditTrail(pdf *fpdf.Fpdf) {
	heading(pdf, "Audit Trail")

	pdf.SetFont("Helvetica", "", 10)
	wrote := false
	for _, it := range g.cat.Items() {
		h := g.cat.History(it)
		if h.Borrow == nil && h.Return == nil {
			continue
		}
		wrote = true
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s (ID: %d)", h.Title, h.ItemID), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		if h.Borrow != nil {
			pdf.CellFormat(0, 6, "  "+detailsLine("Borrowed", h.Borrow), "", 1, "L", false, 0, "")
		}
		if h.Return != nil {
			pdf.CellFormat(0, 6, "  "+detailsLine("Returned", h.Return), "", 1, "L", false, 0, "")
		}
	}
	if !wrote {
		pdf.CellFormat(0, 6, "No circulation activity recorded.", "", 1, "L", false, 0, "")
	}
}

func detailsLine(verb string, d *model.EventDetails) string {
	if d.ActorName == "" {
		return fmt.Sprintf("%s at %s", verb, d.At.Format(timeLayout))
	}
	return fmt.Sprintf("%s at %s by %s (ID: %d)", verb, d.At.Format(timeLayout), d.ActorName, d.ActorID)
}

func heading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
