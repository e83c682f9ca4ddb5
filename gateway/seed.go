package gateway

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/lachapa-pdv/models"
)

func line(name string, qty int, price string) models.OrderLineSnapshot {
	return models.OrderLineSnapshot{Name: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

// DemoOrders is the board content used by the mock API on an empty day.
func DemoOrders(day time.Time) []models.Order {
	prefix := day.Format("20060102")
	at := func(hh, mm int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, day.Location())
	}

	return []models.Order{
		{
			ID: prefix + "-1234", CustomerName: "João Silva", Phone: "(11) 99999-9999", Address: "Av. Paulista, 1000",
			Total: decimal.RequireFromString("35.90"), PaymentMethod: models.PaymentCard, Status: models.StatusEmAnalise,
			SubmittedAt: "15:15", CreatedAt: at(15, 15),
			Items: []models.OrderLineSnapshot{line("X-Tudo", 1, "25.90"), line("Refrigerante Lata", 1, "6.00"), line("Batata Frita P", 1, "4.00")},
			Notes: "Sem cebola no X-Tudo. Entregar com guardanapos extras.",
		},
		{
			ID: prefix + "-5678", CustomerName: "Maria Oliveira", Phone: "(11) 98888-8888", Address: "Avenida Brigadeiro Faria Lima, 500",
			Total: decimal.RequireFromString("57.50"), PaymentMethod: models.PaymentCash, Status: models.StatusEmProducao,
			SubmittedAt: "15:17", CreatedAt: at(15, 17),
			Items: []models.OrderLineSnapshot{line("X-Bacon", 2, "22.90"), line("Batata Frita G", 1, "10.00"), line("Refrigerante 2L", 1, "12.00")},
		},
		{
			ID: prefix + "-9012", CustomerName: "Pedro Santos", Phone: "(11) 97777-7777", Address: "Rua Augusta, 200",
			Total: decimal.RequireFromString("42.80"), PaymentMethod: models.PaymentPix, Status: models.StatusEmAnalise,
			SubmittedAt: "15:25", CreatedAt: at(15, 25),
			Items: []models.OrderLineSnapshot{line("X-Salada", 1, "18.90"), line("X-Bacon", 1, "22.90"), line("Água Mineral", 1, "3.00")},
		},
		{
			ID: prefix + "-3456", CustomerName: "Ana Costa", Phone: "(11) 96666-6666", Address: "Rua Oscar Freire, 300",
			Total: decimal.RequireFromString("68.70"), PaymentMethod: models.PaymentCard, Status: models.StatusEmProducao,
			SubmittedAt: "15:30", CreatedAt: at(15, 30),
			Items: []models.OrderLineSnapshot{line("Combo Família", 1, "65.90"), line("Sobremesa", 1, "5.00")},
			Notes: "Cliente vai buscar no local.",
		},
		{
			ID: prefix + "-7890", CustomerName: "Carlos Mendes", Phone: "(11) 95555-5555", Address: "Alameda Santos, 700",
			Total: decimal.RequireFromString("29.90"), PaymentMethod: models.PaymentCash, Status: models.StatusEmEntrega,
			SubmittedAt: "15:10", CreatedAt: at(15, 10),
			Items: []models.OrderLineSnapshot{line("X-Tudo", 1, "25.90"), line("Refrigerante Lata", 1, "6.00")},
			Notes: "Troco para R$ 50,00",
		},
	}
}
