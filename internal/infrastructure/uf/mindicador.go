package uf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ sii.RateProvider = (*MindicadorProvider)(nil)

// MindicadorProvider consulta mindicador.cl, que republica los valores del Banco Central sin credenciales.
type MindicadorProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewMindicadorProvider construye el provider. baseURL suele ser "https://mindicador.cl/api".
func NewMindicadorProvider(baseURL string, timeout time.Duration) *MindicadorProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MindicadorProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type mindicadorResponse struct {
	Codigo string `json:"codigo"`
	Serie  []struct {
		Fecha string      `json:"fecha"`
		Valor json.Number `json:"valor"`
	} `json:"serie"`
}

// ValorUF implementa sii.RateProvider. Una serie vacía significa que no hay valor publicado.
func (p *MindicadorProvider) ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/uf/%s", p.baseURL, fecha.Format("02-01-2006"))
	var out mindicadorResponse
	if err := getJSON(ctx, p.httpClient, endpoint, &out); err != nil {
		return decimal.Zero, fmt.Errorf("mindicador: %w", err)
	}
	if len(out.Serie) == 0 {
		return decimal.Zero, ErrValorNoDisponible
	}
	v, err := decimal.NewFromString(out.Serie[0].Valor.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("mindicador: valor %q no numérico", out.Serie[0].Valor)
	}
	return v, nil
}
