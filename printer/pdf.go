package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/yeremiapane/lachapa-pdv/models"
)

// 80mm thermal roll.
const (
	rollWidth  = 80.0
	lineHeight = 5.0
	margin     = 4.0
)

// PDF writes each ticket as a PDF file into SpoolDir, where the print daemon picks it up.
type PDF struct {
	SpoolDir string
	Now      func() time.Time
}

func NewPDF(spoolDir string) (*PDF, error) {
	if err := os.MkdirAll(spoolDir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &PDF{SpoolDir: spoolDir, Now: time.Now}, nil
}

func (p *PDF) PrintKitchenTicket(ctx context.Context, order models.Order) error {
	return p.write(ctx, "kitchen-"+order.ID+".pdf", KitchenTicket(order))
}

func (p *PDF) PrintReceipt(ctx context.Context, order models.Order) error {
	return p.write(ctx, "receipt-"+order.ID+".pdf", CustomerReceipt(order, p.Now()))
}

func (p *PDF) write(ctx context.Context, name string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	height := margin*2 + lineHeight*float64(len(doc.Lines)+3)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: rollWidth, Ht: height},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Courier", "B", 11)
	pdf.CellFormat(0, lineHeight+1, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Courier", "", 9)
	for _, line := range doc.Lines {
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	path := filepath.Join(p.SpoolDir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
