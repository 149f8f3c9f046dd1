package sii

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FuenteBancoCentral es la procedencia informada en las conversiones UF.
const FuenteBancoCentral = "Banco Central de Chile"

// Direcciones de conversión.
const (
	DireccionUFAPesos = "UF_A_PESOS"
	DireccionPesosAUF = "PESOS_A_UF"
)

const defaultTimeoutUF = 5 * time.Second

// RateProvider obtiene el valor en pesos de 1 UF para una fecha.
// Las implementaciones reales consultan al Banco Central; en pruebas se usa una tabla fija.
type RateProvider interface {
	ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error)
}

// ConversionUF es el resultado de UFAPesos/PesosAUF. CantidadUF y TotalPesos son los dos lados
// de la conversión; según Direccion uno es la entrada y el otro el resultado.
type ConversionUF struct {
	Direccion     string          `json:"direccion"`
	CantidadUF    decimal.Decimal `json:"cantidad_uf"`
	TotalPesos    int64           `json:"total_pesos"`
	FechaConsulta string          `json:"fecha_consulta"`
	ValorUFPesos  decimal.Decimal `json:"valor_uf_pesos"`
	Fuente        string          `json:"fuente"`
	Success       bool            `json:"success"`
	Mensaje       string          `json:"mensaje"`
}

// ConversorUF convierte entre UF y pesos usando un RateProvider inyectado.
// Es seguro para uso concurrente si el provider lo es.
type ConversorUF struct {
	provider RateProvider
	clock    Clock
	loc      *time.Location
	timeout  time.Duration
	fuente   string
}

// OpcionUF configura un ConversorUF.
type OpcionUF func(*ConversorUF)

// WithClock fija el reloj usado para resolver la fecha por defecto.
func WithClock(c Clock) OpcionUF {
	return func(cv *ConversorUF) {
		if c != nil {
			cv.clock = c
		}
	}
}

// WithLocation fija la zona horaria con la que se decide "hoy".
func WithLocation(loc *time.Location) OpcionUF {
	return func(cv *ConversorUF) {
		if loc != nil {
			cv.loc = loc
		}
	}
}

// WithTimeout acota la consulta al provider.
func WithTimeout(d time.Duration) OpcionUF {
	return func(cv *ConversorUF) {
		if d > 0 {
			cv.timeout = d
		}
	}
}

// WithFuente cambia la procedencia informada en los resultados.
func WithFuente(fuente string) OpcionUF {
	return func(cv *ConversorUF) {
		if fuente != "" {
			cv.fuente = fuente
		}
	}
}

// NewConversorUF construye el conversor.
func NewConversorUF(provider RateProvider, opts ...OpcionUF) *ConversorUF {
	cv := &ConversorUF{
		provider: provider,
		clock:    time.Now,
		loc:      CargarZonaChile(),
		timeout:  defaultTimeoutUF,
		fuente:   FuenteBancoCentral,
	}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

// UFAPesos convierte una cantidad de UF a pesos: total = round(cantidad × valorUF).
// fecha vacía usa el día de hoy.
func (cv *ConversorUF) UFAPesos(ctx context.Context, cantidad decimal.Decimal, fecha string) ConversionUF {
	res := ConversionUF{Direccion: DireccionUFAPesos, CantidadUF: cantidad, Fuente: cv.fuente}
	if cantidad.IsNegative() {
		res.FechaConsulta = cv.fechaPorDefecto(fecha)
		res.Mensaje = "Cantidad de UF inválida"
		return res
	}
	dia, valor, ok := cv.resolver(ctx, fecha, &res)
	if !ok {
		return res
	}
	res.ValorUFPesos = valor
	total, ok := RedondearPesos(cantidad.Mul(valor))
	if !ok {
		res.Mensaje = MensajeFueraDeRango
		return res
	}
	res.TotalPesos = total
	res.Success = true
	res.Mensaje = fmt.Sprintf("%s UF = %s (%s)", cantidad.String(), FormatearPesos(res.TotalPesos), dia)
	return res
}

// PesosAUF convierte pesos a UF: cantidad = round(pesos / valorUF, 2).
func (cv *ConversorUF) PesosAUF(ctx context.Context, pesos int64, fecha string) ConversionUF {
	res := ConversionUF{Direccion: DireccionPesosAUF, TotalPesos: pesos, Fuente: cv.fuente}
	if pesos < 0 {
		res.FechaConsulta = cv.fechaPorDefecto(fecha)
		res.Mensaje = "Monto en pesos inválido"
		return res
	}
	dia, valor, ok := cv.resolver(ctx, fecha, &res)
	if !ok {
		return res
	}
	res.ValorUFPesos = valor
	res.CantidadUF = RedondearUF(decimal.NewFromInt(pesos).Div(valor))
	res.Success = true
	res.Mensaje = fmt.Sprintf("%s = %s UF (%s)", FormatearPesos(pesos), res.CantidadUF.StringFixed(2), dia)
	return res
}

// resolver interpreta la fecha y consulta el valor UF. Ante cualquier falla deja res listo
// para devolver y retorna ok=false.
func (cv *ConversorUF) resolver(ctx context.Context, fecha string, res *ConversionUF) (string, decimal.Decimal, bool) {
	dia, err := cv.parsearFecha(fecha)
	if err != nil {
		res.FechaConsulta = fecha
		res.Mensaje = "Fecha inválida (usar formato YYYY-MM-DD)"
		return "", decimal.Zero, false
	}
	res.FechaConsulta = dia.Format(time.DateOnly)

	valor, err := cv.consultar(ctx, dia)
	if err != nil {
		res.Mensaje = "Error al consultar valor UF"
		return "", decimal.Zero, false
	}
	return res.FechaConsulta, valor, true
}

func (cv *ConversorUF) consultar(ctx context.Context, dia time.Time) (decimal.Decimal, error) {
	if cv.provider == nil {
		return decimal.Zero, errors.New("sii: sin proveedor de valor UF")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cv.timeout)
	defer cancel()

	var valor decimal.Decimal
	err := llamarSeguro(func() error {
		var err error
		valor, err = cv.provider.ValorUF(ctx, dia)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	if !valor.IsPositive() {
		return decimal.Zero, fmt.Errorf("sii: valor UF no positivo (%s)", valor)
	}
	return valor, nil
}

func (cv *ConversorUF) parsearFecha(fecha string) (time.Time, error) {
	fecha = strings.TrimSpace(fecha)
	if fecha == "" {
		return fechaCivil(cv.clock.ahora(), cv.loc), nil
	}
	return time.Parse(time.DateOnly, strings.ReplaceAll(fecha, "/", "-"))
}

// Rechazo arma un resultado fallido con la fuente y la fecha que habría usado el conversor.
// Lo usan los bordes (HTTP, asistente) cuando la entrada ni siquiera pudo leerse como monto.
func (cv *ConversorUF) Rechazo(direccion, fecha, mensaje string) ConversionUF {
	return ConversionUF{
		Direccion:     direccion,
		FechaConsulta: cv.fechaPorDefecto(fecha),
		Fuente:        cv.fuente,
		Mensaje:       mensaje,
	}
}

func (cv *ConversorUF) fechaPorDefecto(fecha string) string {
	if strings.TrimSpace(fecha) != "" {
		return fecha
	}
	return fechaCivil(cv.clock.ahora(), cv.loc).Format(time.DateOnly)
}
