package uf

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ sii.RateProvider = (*BancoCentralProvider)(nil)

// SerieUF es el código de la serie diaria de la UF en la Base de Datos Estadísticos del Banco Central.
const SerieUF = "F073.UFF.PRE.Z.D"

// BancoCentralProvider consulta la API SieteRestWS del Banco Central de Chile.
// Requiere credenciales de la BDE (usuario y clave).
type BancoCentralProvider struct {
	baseURL    string
	user       string
	password   string
	httpClient *http.Client
}

// NewBancoCentralProvider construye el provider. timeout acota cada llamada HTTP.
func NewBancoCentralProvider(baseURL, user, password string, timeout time.Duration) *BancoCentralProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BancoCentralProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		user:       user,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type bcentralResponse struct {
	Codigo      int    `json:"Codigo"`
	Descripcion string `json:"Descripcion"`
	Series      struct {
		SeriesID string `json:"seriesId"`
		Obs      []struct {
			IndexDateString string `json:"indexDateString"` // DD-MM-YYYY
			Value           string `json:"value"`
			StatusCode      string `json:"statusCode"`
		} `json:"Obs"`
	} `json:"Series"`
}

// ValorUF implementa sii.RateProvider.
func (p *BancoCentralProvider) ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	dia := fecha.Format(fechaISO)
	q := url.Values{}
	q.Set("user", p.user)
	q.Set("pass", p.password)
	q.Set("function", "GetSeries")
	q.Set("timeseries", SerieUF)
	q.Set("firstdate", dia)
	q.Set("lastdate", dia)

	var out bcentralResponse
	if err := getJSON(ctx, p.httpClient, p.baseURL+"?"+q.Encode(), &out); err != nil {
		return decimal.Zero, fmt.Errorf("banco central: %w", err)
	}
	if out.Codigo != 0 {
		return decimal.Zero, fmt.Errorf("banco central: código %d: %s", out.Codigo, out.Descripcion)
	}

	buscado := fecha.Format("02-01-2006")
	for _, obs := range out.Series.Obs {
		if obs.IndexDateString != buscado || !strings.EqualFold(obs.StatusCode, "OK") {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(obs.Value))
		if err != nil {
			return decimal.Zero, fmt.Errorf("banco central: valor %q no numérico", obs.Value)
		}
		return v, nil
	}
	return decimal.Zero, ErrValorNoDisponible
}
