// seed_uf genera un script SQL para poblar uf_values a partir de la planilla de la UF que
// publica el Banco Central (CSV separado por ';', codificado en Latin-1).
//
// Uso: go run ./cmd/seed_uf [ruta/uf.csv] [salida.sql]
// Por defecto lee uf.csv del directorio actual y escribe
// internal/infrastructure/postgres/migrations/002_seed_uf.sql.
//
// Formato de cada línea: fecha;valor, con fecha DD-MM-YYYY o YYYY-MM-DD y valor en formato
// chileno (38.123,45) o con punto decimal (38123.45). Las líneas que no parsean se omiten.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type fila struct {
	fecha time.Time
	valor decimal.Decimal
}

func main() {
	csvPath := "uf.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_uf.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	filas, omitidas, err := leerFilas(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(filas) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no tiene valores UF válidos")
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := escribirSQL(out, filas, filepath.Base(csvPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d valores (%d líneas omitidas)\n", outPath, len(filas), omitidas)
}

// leerFilas parsea el CSV ya decodificado a UTF-8. Una fecha repetida conserva el último valor.
func leerFilas(r io.Reader) ([]fila, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	porFecha := make(map[time.Time]decimal.Decimal)
	omitidas := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if len(rec) < 2 {
			omitidas++
			continue
		}
		fecha, ok := parsearFecha(rec[0])
		if !ok {
			omitidas++ // encabezados y notas al pie
			continue
		}
		valor, ok := parsearValor(rec[1])
		if !ok {
			omitidas++
			continue
		}
		porFecha[fecha] = valor
	}

	filas := make([]fila, 0, len(porFecha))
	for fecha, valor := range porFecha {
		filas = append(filas, fila{fecha: fecha, valor: valor})
	}
	sort.Slice(filas, func(i, j int) bool { return filas[i].fecha.Before(filas[j].fecha) })
	return filas, omitidas, nil
}

func parsearFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
	for _, layout := range []string{"02-01-2006", "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parsearValor acepta 38.123,45 (separador de miles chileno) y 38123.45.
func parsearValor(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d.Round(2), true
}

func escribirSQL(w io.Writer, filas []fila, origen string) error {
	var b strings.Builder
	b.WriteString("-- Valores históricos de la UF\n")
	fmt.Fprintf(&b, "-- Generado desde %s (Banco Central de Chile)\n\n", origen)
	b.WriteString("INSERT INTO uf_values (fecha, valor, fuente) VALUES\n")
	for i, f := range filas {
		sep := ","
		if i == len(filas)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', %s, 'bcentral')%s\n", f.fecha.Format("2006-01-02"), f.valor.StringFixed(2), sep)
	}
	b.WriteString("ON CONFLICT (fecha) DO UPDATE SET valor = EXCLUDED.valor, fuente = EXCLUDED.fuente;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
