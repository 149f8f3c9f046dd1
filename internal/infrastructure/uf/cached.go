package uf

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ sii.RateProvider = (*CachedProvider)(nil)

// maxEntradasCache acota la memoria: al superarlo se descarta todo el mapa.
const maxEntradasCache = 4096

// CachedProvider memoriza en memoria los valores por fecha. El valor de la UF de un día no cambia
// una vez publicado, por eso las entradas no expiran. Los errores no se memorizan.
type CachedProvider struct {
	next sii.RateProvider

	mu    sync.RWMutex
	cache map[string]decimal.Decimal
}

// NewCachedProvider envuelve next.
func NewCachedProvider(next sii.RateProvider) *CachedProvider {
	return &CachedProvider{next: next, cache: make(map[string]decimal.Decimal)}
}

// ValorUF implementa sii.RateProvider.
func (p *CachedProvider) ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	key := fecha.Format(fechaISO)

	p.mu.RLock()
	if v, ok := p.cache[key]; ok {
		p.mu.RUnlock()
		return v, nil
	}
	p.mu.RUnlock()

	v, err := p.next.ValorUF(ctx, fecha)
	if err != nil {
		return decimal.Zero, err
	}

	p.mu.Lock()
	if len(p.cache) >= maxEntradasCache {
		p.cache = make(map[string]decimal.Decimal)
	}
	p.cache[key] = v
	p.mu.Unlock()
	return v, nil
}

// Len devuelve la cantidad de fechas memorizadas.
func (p *CachedProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}
