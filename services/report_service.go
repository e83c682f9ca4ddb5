package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/lachapa-pdv/display"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

type ProductSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type PaymentShare struct {
	Method models.PaymentMethod `json:"method"`
	Label  string               `json:"label"`
	Orders int                  `json:"orders"`
	Total  decimal.Decimal      `json:"total"`
}

type HourlySales struct {
	Hour   int             `json:"hour"`
	Orders int             `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

// Dashboard is the day summary shown on the back-office home page.
type Dashboard struct {
	TotalSales         decimal.Decimal `json:"total_sales"`
	TotalSalesLabel    string          `json:"total_sales_label"`
	OrderCount         int             `json:"order_count"`
	OrdersInProgress   int             `json:"orders_in_progress"`
	AverageTicket      decimal.Decimal `json:"average_ticket"`
	AverageWaitMinutes int             `json:"average_wait_minutes"`
	TopProduct         string          `json:"top_product"`
	ProductRanking     []ProductSales  `json:"product_ranking"`
	PaymentBreakdown   []PaymentShare  `json:"payment_breakdown"`
	SalesByHour        []HourlySales   `json:"sales_by_hour"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// OrderLister is the read side of the order store.
type OrderLister interface {
	All() []models.Order
}

type ReportService struct {
	orders OrderLister
	now    func() time.Time
}

func NewReportService(orders OrderLister) *ReportService {
	return &ReportService{orders: orders, now: time.Now}
}

// WithClock replaces the time source used for wait times.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

func (s *ReportService) Dashboard() Dashboard {
	return Summarize(s.orders.All(), s.now())
}

// Summarize aggregates orders. Amounts stay exact; only the label is rounded
// for display. The average ticket is rounded to cents.
func Summarize(orders []models.Order, now time.Time) Dashboard {
	d := Dashboard{
		TotalSales:       decimal.Zero,
		AverageTicket:    decimal.Zero,
		ProductRanking:   []ProductSales{},
		PaymentBreakdown: []PaymentShare{},
		SalesByHour:      []HourlySales{},
		GeneratedAt:      now,
	}

	products := map[string]*ProductSales{}
	payments := map[models.PaymentMethod]*PaymentShare{}
	hours := map[int]*HourlySales{}
	waitSum, waiting := 0, 0

	for _, o := range orders {
		d.OrderCount++
		d.TotalSales = d.TotalSales.Add(o.Total)

		if o.Status == models.StatusEmAnalise || o.Status == models.StatusEmProducao {
			d.OrdersInProgress++
			waitSum += display.WaitTimeMinutes(o.SubmittedAt, now)
			waiting++
		}

		for _, item := range o.Items {
			p, ok := products[item.Name]
			if !ok {
				p = &ProductSales{Name: item.Name, Revenue: decimal.Zero}
				products[item.Name] = p
			}
			p.Quantity += item.Quantity
			p.Revenue = p.Revenue.Add(item.LineTotal())
		}

		share, ok := payments[o.PaymentMethod]
		if !ok {
			share = &PaymentShare{Method: o.PaymentMethod, Label: display.PaymentLabel(string(o.PaymentMethod)), Total: decimal.Zero}
			payments[o.PaymentMethod] = share
		}
		share.Orders++
		share.Total = share.Total.Add(o.Total)

		if hour, ok := submittedHour(o); ok {
			h, ok := hours[hour]
			if !ok {
				h = &HourlySales{Hour: hour, Total: decimal.Zero}
				hours[hour] = h
			}
			h.Orders++
			h.Total = h.Total.Add(o.Total)
		}
	}

	if d.OrderCount > 0 {
		d.AverageTicket = d.TotalSales.Div(decimal.NewFromInt(int64(d.OrderCount))).Round(2)
	}
	if waiting > 0 {
		d.AverageWaitMinutes = waitSum / waiting
	}
	d.TotalSalesLabel = utils.FormatCurrencyBRL(d.TotalSales)

	for _, p := range products {
		d.ProductRanking = append(d.ProductRanking, *p)
	}
	sort.SliceStable(d.ProductRanking, func(i, j int) bool {
		a, b := d.ProductRanking[i], d.ProductRanking[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(d.ProductRanking) > 0 {
		d.TopProduct = d.ProductRanking[0].Name
	}

	for _, p := range payments {
		d.PaymentBreakdown = append(d.PaymentBreakdown, *p)
	}
	sort.Slice(d.PaymentBreakdown, func(i, j int) bool {
		a, b := d.PaymentBreakdown[i], d.PaymentBreakdown[j]
		if a.Orders != b.Orders {
			return a.Orders > b.Orders
		}
		return a.Method < b.Method
	})

	for _, h := range hours {
		d.SalesByHour = append(d.SalesByHour, *h)
	}
	sort.Slice(d.SalesByHour, func(i, j int) bool { return d.SalesByHour[i].Hour < d.SalesByHour[j].Hour })
	return d
}

func submittedHour(o models.Order) (int, bool) {
	t, err := time.Parse("15:04", o.SubmittedAt)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}
