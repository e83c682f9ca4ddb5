package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/lachapa-pdv/store"
)

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r := NewRegistry(store.New(), func(e *Engine) {
		e.WithClock(func() time.Time { return fixedNow })
	})

	a := r.Session("caixa-1")
	b := r.Session("caixa-2")
	assert.NotSame(t, a, b)
	assert.Same(t, a, r.Session("caixa-1"))

	a.AddItem(product(t, 1), 1, "")
	assert.Len(t, a.Snapshot().Lines, 1)
	assert.Empty(t, b.Snapshot().Lines)

	r.Close("caixa-1")
	assert.Empty(t, r.Session("caixa-1").Snapshot().Lines)
}

func TestRegistry_ReadsDoNotOpenSessions(t *testing.T) {
	r := NewRegistry(store.New())

	_, ok := r.Lookup("caixa-9")
	assert.False(t, ok)
	c := r.Snapshot("caixa-9")
	assert.Empty(t, c.Lines)
	assert.False(t, c.CanSubmit)
	assert.Equal(t, 0, r.Len())

	r.Session("caixa-9").AddItem(product(t, 2), 1, "")
	assert.Len(t, r.Snapshot("caixa-9").Lines, 1)
	assert.Equal(t, 1, r.Len())

	r.Close("caixa-9")
	assert.Equal(t, 0, r.Len())
}
