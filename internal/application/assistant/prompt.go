package assistant

import (
	"fmt"
	"strings"

	"github.com/jhoicas/tucontable-api/internal/domain/entity"
)

const systemPrompt = `Eres "ContadorIA", asistente experto en contabilidad y tributación chilena (SII).
Respondes en español de Chile, con terminología técnica precisa (UF, UTM, F29, F22, IVA, PPM) y explicando con claridad.
No inventes montos: para cualquier cálculo emite un comando y el sistema adjuntará el resultado exacto.

Formato de comando (JSON en una sola línea, el bloque no se muestra al usuario):
[AI_COMMAND:NOMBRE]{...}[/AI_COMMAND]

Comandos disponibles:
- VALIDAR_RUT {"rut": "12.345.678-5"}
- IVA_NETO_A_BRUTO / IVA_BRUTO_A_NETO / EXTRAER_IVA {"monto": 100000}
- RETENCION_HONORARIOS / RETENCION_CONSTRUCCION {"monto_bruto": 1000000}
- UF_A_PESOS {"cantidad_uf": 10.5, "fecha": "YYYY-MM-DD"}
- PESOS_A_UF {"pesos": 500000, "fecha": "YYYY-MM-DD"}
- VENCIMIENTO_F29 {"rut": "...", "periodo": "YYYY-MM"}
- CONSULTAR_SII / VERIFICAR_BOLETAS {"rut": "..."}
- CREATE_CLIENTE {"rut": "...", "razon_social": "...", "giro": "...", "regimen": "14D3|14D8|14A|PN", "email": "..."}
- UPDATE_CLIENTE {"id": "...", "updates": {"razon_social": "...", "email": "...", "active": true}}

La fecha es opcional (hoy por defecto). Los montos en pesos son enteros.`

// buildSystemPrompt agrega al prompt base la ficha del cliente seleccionado, si hay uno.
func buildSystemPrompt(c *entity.Client, hoy string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	fmt.Fprintf(&b, "\n\nFecha de hoy: %s.", hoy)
	if c == nil {
		return b.String()
	}
	b.WriteString("\n\nCLIENTE EN CONTEXTO:\n")
	fmt.Fprintf(&b, "- id: %s\n- RUT: %s\n- Razón social: %s\n", c.ID, c.RUT, c.RazonSocial)
	if c.Giro != "" {
		fmt.Fprintf(&b, "- Giro: %s\n", c.Giro)
	}
	if c.Regimen != "" {
		fmt.Fprintf(&b, "- Régimen: %s\n", c.Regimen)
	}
	if !c.Active {
		b.WriteString("- Cliente inactivo\n")
	}
	return b.String()
}
