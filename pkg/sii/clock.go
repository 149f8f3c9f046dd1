package sii

import (
	"fmt"
	"time"
)

// Clock entrega la hora actual. Se inyecta para poder fijar "hoy" en pruebas.
type Clock func() time.Time

// ZonaHorariaChile es la zona usada para decidir qué día es "hoy".
const ZonaHorariaChile = "America/Santiago"

// CargarZonaChile devuelve America/Santiago, o un offset fijo UTC-4 si la base tz no está disponible.
func CargarZonaChile() *time.Location {
	loc, err := time.LoadLocation(ZonaHorariaChile)
	if err != nil {
		return time.FixedZone("CLT", -4*60*60)
	}
	return loc
}

func (c Clock) ahora() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// fechaCivil normaliza t a medianoche UTC del mismo día calendario en loc,
// para contar días sin que los cambios de horario alteren la diferencia.
func fechaCivil(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// llamarSeguro ejecuta una llamada a una dependencia externa convirtiendo un pánico en error.
func llamarSeguro(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sii: pánico en dependencia externa: %v", r)
		}
	}()
	return fn()
}
