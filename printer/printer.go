// Package printer renders kitchen tickets and receipts. Printing is best effort:
// callers go through a Spooler and never wait for the result.
package printer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/lachapa-pdv/display"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// Printer is the print collaborator.
type Printer interface {
	PrintKitchenTicket(ctx context.Context, order models.Order) error
	PrintReceipt(ctx context.Context, order models.Order) error
}

// Document is the printable text of a ticket, one entry per line.
type Document struct {
	Title string
	Lines []string
}

// KitchenTicket lists what the kitchen has to prepare. No prices.
func KitchenTicket(order models.Order) Document {
	doc := Document{Title: fmt.Sprintf("COMANDA #%s", order.ID)}
	doc.Lines = append(doc.Lines,
		"Horário: "+order.SubmittedAt,
		"Cliente: "+order.CustomerName,
		strings.Repeat("-", 32),
	)
	for _, item := range order.Items {
		doc.Lines = append(doc.Lines, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
		if item.Notes != "" {
			doc.Lines = append(doc.Lines, "   obs: "+item.Notes)
		}
	}
	if order.Notes != "" {
		doc.Lines = append(doc.Lines, strings.Repeat("-", 32), "Observações: "+order.Notes)
	}
	return doc
}

// CustomerReceipt is the priced receipt handed to the customer.
func CustomerReceipt(order models.Order, at time.Time) Document {
	r := models.NewReceipt(order, at)
	doc := Document{Title: "LaChapa - " + r.Number}
	doc.Lines = append(doc.Lines,
		"Pedido #"+order.ID+" - "+at.Format("02/01/2006 15:04"),
		"Cliente: "+order.CustomerName,
		strings.Repeat("-", 32),
	)
	for _, item := range order.Items {
		doc.Lines = append(doc.Lines, fmt.Sprintf("%dx %s  %s", item.Quantity, item.Name, utils.FormatCurrencyBRL(item.LineTotal())))
	}
	doc.Lines = append(doc.Lines,
		strings.Repeat("-", 32),
		"Subtotal: "+utils.FormatCurrencyBRL(r.Totals.Subtotal),
		"Taxa de serviço (5%): "+utils.FormatCurrencyBRL(r.Totals.Tax),
		"Total: "+utils.FormatCurrencyBRL(r.Totals.Total),
		"Pagamento: "+display.PaymentLabel(string(order.PaymentMethod)),
		"Obrigado pela preferência!",
	)
	return doc
}

// Log "prints" to the info logger. Used when no spool directory is configured.
type Log struct{}

func (Log) PrintKitchenTicket(_ context.Context, order models.Order) error {
	logDocument(KitchenTicket(order))
	return nil
}

func (Log) PrintReceipt(_ context.Context, order models.Order) error {
	logDocument(CustomerReceipt(order, time.Now()))
	return nil
}

func logDocument(doc Document) {
	utils.InfoLogger.Printf("[printer] %s\n%s", doc.Title, strings.Join(doc.Lines, "\n"))
}
