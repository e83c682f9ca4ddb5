package printer

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// Spooler runs print jobs in the background. Failures are logged and dropped.
type Spooler struct {
	printer Printer
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewSpooler(p Printer, timeout time.Duration) *Spooler {
	return &Spooler{printer: p, timeout: timeout}
}

// KitchenTicket queues "print kitchen ticket for order #id".
func (s *Spooler) KitchenTicket(order models.Order) {
	s.run("kitchen ticket", order, s.printer.PrintKitchenTicket)
}

func (s *Spooler) Receipt(order models.Order) {
	s.run("receipt", order, s.printer.PrintReceipt)
}

func (s *Spooler) run(kind string, order models.Order, job func(context.Context, models.Order) error) {
	order = order.Clone()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := job(ctx, order); err != nil {
			utils.ErrorLogger.Printf("Failed to print %s for order #%s: %v", kind, order.ID, err)
			return
		}
		utils.InfoLogger.Printf("Printed %s for order #%s", kind, order.ID)
	}()
}

// Wait blocks until queued jobs are done.
func (s *Spooler) Wait() {
	s.wg.Wait()
}
