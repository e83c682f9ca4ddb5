package models

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestOrderRecord_TotalKeepsFourPlaces(t *testing.T) {
	s, err := schema.Parse(&OrderRecord{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	field := s.LookUpField("Total")
	require.NotNil(t, field)
	assert.Equal(t, "decimal(14,4)", field.TagSettings["TYPE"])

	// 25.95 * 1.05
	total := TotalsFromSubtotal(decimal.RequireFromString("25.95")).Total
	assert.Equal(t, "27.2475", total.String())

	o := Order{ID: "20251022-0001", Total: total, Status: StatusEmAnalise}
	assert.True(t, total.Equal(o.ToRecord().ToOrder().Total))
}
