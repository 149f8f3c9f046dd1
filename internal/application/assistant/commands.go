package assistant

import (
	"regexp"
	"strings"
)

// Nombres de comando que el modelo puede emitir dentro de su respuesta.
const (
	CmdValidarRUT            = "VALIDAR_RUT"
	CmdIVANetoABruto         = "IVA_NETO_A_BRUTO"
	CmdIVABrutoANeto         = "IVA_BRUTO_A_NETO"
	CmdExtraerIVA            = "EXTRAER_IVA"
	CmdRetencionHonorarios   = "RETENCION_HONORARIOS"
	CmdRetencionConstruccion = "RETENCION_CONSTRUCCION"
	CmdUFAPesos              = "UF_A_PESOS"
	CmdPesosAUF              = "PESOS_A_UF"
	CmdVencimientoF29        = "VENCIMIENTO_F29"
	CmdConsultarSII          = "CONSULTAR_SII"
	CmdVerificarBoletas      = "VERIFICAR_BOLETAS"
	CmdCreateCliente         = "CREATE_CLIENTE"
	CmdUpdateCliente         = "UPDATE_CLIENTE"
)

// Command es un bloque [AI_COMMAND:NOMBRE]{json}[/AI_COMMAND] extraído de la respuesta del modelo.
type Command struct {
	Name    string
	Payload string
}

var commandRe = regexp.MustCompile(`(?is)\[AI_COMMAND:(\w+)\](.*?)\[/AI_COMMAND\]`)

// ParseCommands devuelve los comandos en el orden en que aparecen. El nombre se normaliza a
// mayúsculas; el payload puede ocupar varias líneas.
func ParseCommands(text string) []Command {
	matches := commandRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Command, 0, len(matches))
	for _, m := range matches {
		out = append(out, Command{
			Name:    strings.ToUpper(m[1]),
			Payload: strings.TrimSpace(m[2]),
		})
	}
	return out
}

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// StripCommands quita los bloques de comando del texto que se muestra al usuario.
func StripCommands(text string) string {
	out := commandRe.ReplaceAllString(text, "")
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(out, "\n\n"))
}
