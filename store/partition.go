package store

import "github.com/yeremiapane/lachapa-pdv/models"

// Board holds one column per status.
type Board struct {
	EmAnalise  []models.Order `json:"em_analise"`
	EmProducao []models.Order `json:"em_producao"`
	EmEntrega  []models.Order `json:"em_entrega"`
}

// Column returns the orders of one status.
func (b Board) Column(status models.Status) []models.Order {
	switch status {
	case models.StatusEmAnalise:
		return b.EmAnalise
	case models.StatusEmProducao:
		return b.EmProducao
	case models.StatusEmEntrega:
		return b.EmEntrega
	}
	return nil
}

func (b Board) Len() int {
	return len(b.EmAnalise) + len(b.EmProducao) + len(b.EmEntrega)
}

// PartitionByStatus splits orders by status keeping their relative position.
// Orders with a status outside the pipeline are left out.
func PartitionByStatus(orders []models.Order) Board {
	b := Board{
		EmAnalise:  []models.Order{},
		EmProducao: []models.Order{},
		EmEntrega:  []models.Order{},
	}
	for _, o := range orders {
		switch o.Status {
		case models.StatusEmAnalise:
			b.EmAnalise = append(b.EmAnalise, o)
		case models.StatusEmProducao:
			b.EmProducao = append(b.EmProducao, o)
		case models.StatusEmEntrega:
			b.EmEntrega = append(b.EmEntrega, o)
		}
	}
	return b
}
