package sii

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// EstadoVencimiento clasifica la cercanía de un vencimiento.
type EstadoVencimiento string

const (
	EstadoVencido EstadoVencimiento = "VENCIDO"
	EstadoUrgente EstadoVencimiento = "URGENTE"
	EstadoProximo EstadoVencimiento = "PROXIMO"
	EstadoLejano  EstadoVencimiento = "LEJANO"
)

// Códigos de error de VencimientoF29. Con entrada inválida Estado sigue siendo VENCIDO, como
// siempre lo informó el cálculo; Valido=false y Error son los que distinguen el caso.
const (
	ErrorRUTInvalido     = "RUT_INVALIDO"
	ErrorPeriodoInvalido = "PERIODO_INVALIDO"
)

// diasVencimientoF29 indexa por último dígito del cuerpo del RUT.
var diasVencimientoF29 = [10]int{21, 12, 13, 14, 15, 16, 17, 18, 19, 20}

var periodoRe = regexp.MustCompile(`^\s*(\d{4})-(\d{1,2})\s*$`)

// VencimientoF29 es el resultado del cálculo de vencimiento de un F29.
type VencimientoF29 struct {
	RUT              string            `json:"rut"`
	Periodo          string            `json:"periodo"`
	UltimoDigito     string            `json:"ultimo_digito"`
	FechaVencimiento string            `json:"fecha_vencimiento"`
	DiasRestantes    int               `json:"dias_restantes"`
	Estado           EstadoVencimiento `json:"estado,omitempty"`
	Mensaje          string            `json:"mensaje"`
	Valido           bool              `json:"valido"`
	Error            string            `json:"error,omitempty"`

	Fecha time.Time `json:"-"`
}

// DiaVencimientoF29 devuelve el día del mes (antes del ajuste por fin de semana) que corresponde
// al último dígito del RUT: 1..9 -> 12..20 y 0 -> 21.
func DiaVencimientoF29(digito byte) int {
	if digito < '0' || digito > '9' {
		return diasVencimientoF29[0]
	}
	return diasVencimientoF29[digito-'0']
}

// ClasificarUrgencia: <0 VENCIDO, 0..3 URGENTE, 4..7 PROXIMO, >7 LEJANO.
func ClasificarUrgencia(dias int) EstadoVencimiento {
	switch {
	case dias < 0:
		return EstadoVencido
	case dias <= 3:
		return EstadoUrgente
	case dias <= 7:
		return EstadoProximo
	default:
		return EstadoLejano
	}
}

// AjustarFinDeSemana corre un sábado al lunes siguiente (+2) y un domingo al lunes (+1).
func AjustarFinDeSemana(fecha time.Time) time.Time {
	switch fecha.Weekday() {
	case time.Saturday:
		return fecha.AddDate(0, 0, 2)
	case time.Sunday:
		return fecha.AddDate(0, 0, 1)
	}
	return fecha
}

// CalendarioF29 calcula vencimientos del Formulario 29 relativos a "hoy".
type CalendarioF29 struct {
	clock Clock
	loc   *time.Location
}

// OpcionCalendario configura un CalendarioF29.
type OpcionCalendario func(*CalendarioF29)

// CalendarioConClock fija el reloj.
func CalendarioConClock(c Clock) OpcionCalendario {
	return func(cal *CalendarioF29) {
		if c != nil {
			cal.clock = c
		}
	}
}

// CalendarioConZona fija la zona con la que se decide qué día es hoy.
func CalendarioConZona(loc *time.Location) OpcionCalendario {
	return func(cal *CalendarioF29) {
		if loc != nil {
			cal.loc = loc
		}
	}
}

// NewCalendarioF29 construye el calendario (por defecto reloj del sistema y hora de Chile).
func NewCalendarioF29(opts ...OpcionCalendario) *CalendarioF29 {
	cal := &CalendarioF29{clock: time.Now, loc: CargarZonaChile()}
	for _, opt := range opts {
		opt(cal)
	}
	return cal
}

// Vencimiento calcula la fecha de vencimiento del F29 del período "YYYY-MM" para el RUT dado.
// El F29 vence el mes siguiente al período, en el día que fija el último dígito del RUT.
func (c *CalendarioF29) Vencimiento(rut, periodo string) VencimientoF29 {
	validacion := ValidarRUT(rut)
	r, ok := validacion.RUT()
	if !ok {
		return VencimientoF29{
			RUT:     rut,
			Periodo: periodo,
			Estado:  EstadoVencido,
			Mensaje: "RUT inválido: " + validacion.Mensaje,
			Error:   ErrorRUTInvalido,
		}
	}
	ultimo := string(r.UltimoDigito())

	anio, mes, ok := parsearPeriodo(periodo)
	if !ok {
		return VencimientoF29{
			RUT:          r.String(),
			Periodo:      periodo,
			UltimoDigito: ultimo,
			Estado:       EstadoVencido,
			Mensaje:      "Período inválido (usar formato YYYY-MM)",
			Error:        ErrorPeriodoInvalido,
		}
	}

	// time.Date normaliza el mes 13 a enero del año siguiente.
	venc := time.Date(anio, time.Month(mes+1), DiaVencimientoF29(r.UltimoDigito()), 0, 0, 0, 0, time.UTC)
	venc = AjustarFinDeSemana(venc)

	hoy := fechaCivil(c.clock.ahora(), c.loc)
	// ambas son medianoche UTC; time.Duration se satura pasados ~292 años
	dias := int((venc.Unix() - hoy.Unix()) / 86400)
	fechaStr := venc.Format(time.DateOnly)

	return VencimientoF29{
		RUT:              r.String(),
		Periodo:          periodo,
		UltimoDigito:     ultimo,
		FechaVencimiento: fechaStr,
		DiasRestantes:    dias,
		Estado:           ClasificarUrgencia(dias),
		Mensaje:          fmt.Sprintf("F29 período %s vence el %s (%s)", periodo, fechaStr, describirDias(dias)),
		Valido:           true,
		Fecha:            time.Date(venc.Year(), venc.Month(), venc.Day(), 0, 0, 0, 0, c.loc),
	}
}

// Hoy devuelve la fecha civil actual en la zona del calendario (medianoche UTC de ese día).
func (c *CalendarioF29) Hoy() time.Time {
	return fechaCivil(c.clock.ahora(), c.loc)
}

// PeriodoPorDeclarar devuelve el período "YYYY-MM" cuyo F29 se declara en el mes en curso,
// es decir, el mes anterior a hoy.
func (c *CalendarioF29) PeriodoPorDeclarar() string {
	hoy := c.Hoy()
	anterior := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return anterior.Format("2006-01")
}

// PeriodoValido indica si periodo tiene el formato YYYY-MM con un mes entre 1 y 12.
func PeriodoValido(periodo string) bool {
	_, _, ok := parsearPeriodo(periodo)
	return ok
}

func parsearPeriodo(periodo string) (anio, mes int, ok bool) {
	m := periodoRe.FindStringSubmatch(periodo)
	if m == nil {
		return 0, 0, false
	}
	anio, _ = strconv.Atoi(m[1])
	mes, _ = strconv.Atoi(m[2])
	if anio == 0 || mes < 1 || mes > 12 {
		return 0, 0, false
	}
	return anio, mes, true
}

func describirDias(dias int) string {
	switch {
	case dias == 0:
		return "vence hoy"
	case dias == 1:
		return "1 día restante"
	case dias > 1:
		return fmt.Sprintf("%d días restantes", dias)
	case dias == -1:
		return "1 día vencido"
	default:
		return fmt.Sprintf("%d días vencido", -dias)
	}
}
