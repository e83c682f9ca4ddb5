// Package catalog holds the static list of products sold at the counter.
package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/lachapa-pdv/models"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is read-only after construction.
type Catalog struct {
	products   []models.Product
	categories []models.Category
	byID       map[int]int
}

// New copies the given products and categories. Product ids are trusted to be unique.
func New(products []models.Product, categories []models.Category) *Catalog {
	c := &Catalog{
		products:   append([]models.Product(nil), products...),
		categories: append([]models.Category(nil), categories...),
		byID:       make(map[int]int, len(products)),
	}
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Find looks a product up by id.
func (c *Catalog) Find(id int) (models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// Filter returns products of the category (or all of them for "" / "all") whose
// name contains term, ignoring case.
func (c *Catalog) Filter(category, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && category != models.CategoryAll && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default is the outlet's menu.
func Default() *Catalog {
	categories := []models.Category{
		{ID: models.CategoryAll, Name: "Todos", Icon: "bi-grid"},
		{ID: "burgers", Name: "Hambúrgueres", Icon: "bi-egg-fried"},
		{ID: "drinks", Name: "Bebidas", Icon: "bi-cup-straw"},
		{ID: "sides", Name: "Acompanhamentos", Icon: "bi-basket"},
		{ID: "desserts", Name: "Sobremesas", Icon: "bi-cake"},
		{ID: "combos", Name: "Combos", Icon: "bi-box"},
	}

	products := []models.Product{
		{ID: 1, Name: "X-Tudo", UnitPrice: price("25.90"), Category: "burgers", Image: "/products/x-tudo.jpg"},
		{ID: 2, Name: "X-Salada", UnitPrice: price("18.90"), Category: "burgers", Image: "/products/x-salada.jpg"},
		{ID: 3, Name: "X-Bacon", UnitPrice: price("22.90"), Category: "burgers", Image: "/products/x-bacon.jpg"},
		{ID: 4, Name: "Refrigerante Lata", UnitPrice: price("6.00"), Category: "drinks", Image: "/products/refrigerante.jpg"},
		{ID: 5, Name: "Suco Natural", UnitPrice: price("8.00"), Category: "drinks", Image: "/products/suco.jpg"},
		{ID: 6, Name: "Batata Frita P", UnitPrice: price("10.00"), Category: "sides", Image: "/products/batata-p.jpg"},
		{ID: 7, Name: "Batata Frita M", UnitPrice: price("15.00"), Category: "sides", Image: "/products/batata-m.jpg"},
		{ID: 8, Name: "Batata Frita G", UnitPrice: price("20.00"), Category: "sides", Image: "/products/batata-g.jpg"},
		{ID: 9, Name: "Sorvete", UnitPrice: price("8.00"), Category: "desserts", Image: "/products/sorvete.jpg"},
		{ID: 10, Name: "Combo 1", UnitPrice: price("35.90"), Category: "combos", Image: "/products/combo1.jpg"},
		{ID: 11, Name: "Combo 2", UnitPrice: price("45.90"), Category: "combos", Image: "/products/combo2.jpg"},
		{ID: 12, Name: "Combo Família", UnitPrice: price("65.90"), Category: "combos", Image: "/products/combo-familia.jpg"},
	}

	return New(products, categories)
}
