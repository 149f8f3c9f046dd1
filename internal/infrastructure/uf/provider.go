// Package uf implementa las fuentes del valor de la Unidad de Fomento (sii.RateProvider).
package uf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/internal/domain/repository"
	"github.com/jhoicas/tucontable-api/pkg/config"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

// Nombres de fuente (también usados como etiqueta de métricas y en uf_values.fuente).
const (
	FuenteBancoCentral = "bcentral"
	FuenteMindicador   = "mindicador"
	FuenteFija         = "fixed"
)

// ErrValorNoDisponible indica que la fuente no publica valor para la fecha pedida.
var ErrValorNoDisponible = errors.New("uf: valor no disponible para la fecha")

const fechaISO = "2006-01-02"

// NewProvider arma la cadena de providers según la configuración:
// fuente -> métricas -> (persistencia en uf_values) -> memoria.
// repo puede ser nil; en ese caso no se persiste.
func NewProvider(cfg config.UFConfig, repo repository.UFValueRepository, log *logger.Logger) (sii.RateProvider, error) {
	var (
		base   sii.RateProvider
		fuente string
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case FuenteBancoCentral:
		if cfg.BCUser == "" || cfg.BCPassword == "" {
			return nil, fmt.Errorf("uf: BCCH_USER y BCCH_PASSWORD son requeridos para el provider bcentral")
		}
		base, fuente = NewBancoCentralProvider(cfg.BCBaseURL, cfg.BCUser, cfg.BCPassword, cfg.Timeout), FuenteBancoCentral
	case FuenteMindicador, "":
		base, fuente = NewMindicadorProvider(cfg.MindicadorURL, cfg.Timeout), FuenteMindicador
	case FuenteFija:
		valor, err := decimal.NewFromString(strings.TrimSpace(cfg.FixedValue))
		if err != nil || !valor.IsPositive() {
			return nil, fmt.Errorf("uf: UF_FIXED_VALUE inválido: %q", cfg.FixedValue)
		}
		base, fuente = NewFixedProvider(valor), FuenteFija
	default:
		return nil, fmt.Errorf("uf: provider desconocido %q", cfg.Provider)
	}

	var p sii.RateProvider = NewInstrumentedProvider(base, fuente, log)
	if repo != nil && cfg.Persist && fuente != FuenteFija {
		p = NewStoredProvider(p, repo, fuente, log)
	}
	return NewCachedProvider(p), nil
}

// getJSON hace un GET y decodifica la respuesta JSON en out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("llamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrValorNoDisponible
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

func diaCivil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
