package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/tax"
)

// TaxHandler expone las calculadoras tributarias. Siempre responden 200 con el resultado
// estructurado (success/valido + mensaje); solo un body ilegible es 400.
type TaxHandler struct {
	uc *tax.UseCase
}

// NewTaxHandler construye el handler.
func NewTaxHandler(uc *tax.UseCase) *TaxHandler {
	return &TaxHandler{uc: uc}
}

// ValidarRUT godoc
// @Summary      Validar RUT
// @Tags         tax
// @Produce      json
// @Param        rut  query  string  true  "RUT en cualquier formato"
// @Success      200  {object}  sii.ValidacionRUT
// @Router       /api/tax/rut/validate [get]
func (h *TaxHandler) ValidarRUT(c *fiber.Ctx) error {
	return c.JSON(h.uc.ValidarRUT(c.Query("rut")))
}

// IVANetoABruto godoc
// @Summary      IVA: neto a bruto
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IVARequest  true  "monto neto en pesos"
// @Success      200   {object}  sii.DesgloseIVA
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/iva/neto-a-bruto [post]
func (h *TaxHandler) IVANetoABruto(c *fiber.Ctx) error {
	var in dto.IVARequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.IVANetoABruto(in))
}

// IVABrutoANeto godoc
// @Summary      IVA: bruto a neto
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IVARequest  true  "monto bruto en pesos"
// @Success      200   {object}  sii.DesgloseIVA
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/iva/bruto-a-neto [post]
func (h *TaxHandler) IVABrutoANeto(c *fiber.Ctx) error {
	var in dto.IVARequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.IVABrutoANeto(in))
}

// ExtraerIVA godoc
// @Summary      IVA incluido en un bruto
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IVARequest  true  "monto bruto en pesos"
// @Success      200   {object}  sii.DesgloseIVA
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/iva/extraer [post]
func (h *TaxHandler) ExtraerIVA(c *fiber.Ctx) error {
	var in dto.IVARequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.ExtraerIVA(in))
}

// RetencionHonorarios godoc
// @Summary      Retención de honorarios
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RetencionRequest  true  "monto bruto de la boleta"
// @Success      200   {object}  sii.Retencion
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/retenciones/honorarios [post]
func (h *TaxHandler) RetencionHonorarios(c *fiber.Ctx) error {
	var in dto.RetencionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.RetencionHonorarios(in))
}

// RetencionConstruccion godoc
// @Summary      Retención de construcción
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RetencionRequest  true  "monto bruto"
// @Success      200   {object}  sii.Retencion
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/retenciones/construccion [post]
func (h *TaxHandler) RetencionConstruccion(c *fiber.Ctx) error {
	var in dto.RetencionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.RetencionConstruccion(in))
}

// UFAPesos godoc
// @Summary      Convertir UF a pesos
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UFAPesosRequest  true  "cantidad de UF y fecha opcional"
// @Success      200   {object}  sii.ConversionUF
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/uf/a-pesos [post]
func (h *TaxHandler) UFAPesos(c *fiber.Ctx) error {
	var in dto.UFAPesosRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.UFAPesos(c.UserContext(), in))
}

// PesosAUF godoc
// @Summary      Convertir pesos a UF
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PesosAUFRequest  true  "pesos y fecha opcional"
// @Success      200   {object}  sii.ConversionUF
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/uf/desde-pesos [post]
func (h *TaxHandler) PesosAUF(c *fiber.Ctx) error {
	var in dto.PesosAUFRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.PesosAUF(c.UserContext(), in))
}

// VencimientoF29 godoc
// @Summary      Vencimiento del F29
// @Tags         tax
// @Produce      json
// @Param        rut      query  string  true  "RUT del contribuyente"
// @Param        periodo  query  string  true  "período YYYY-MM"
// @Success      200  {object}  sii.VencimientoF29
// @Router       /api/tax/f29 [get]
func (h *TaxHandler) VencimientoF29(c *fiber.Ctx) error {
	return c.JSON(h.uc.VencimientoF29(c.Query("rut"), c.Query("periodo")))
}

// ConsultarSII godoc
// @Summary      Situación tributaria en el SII
// @Tags         tax
// @Produce      json
// @Param        rut  query  string  true  "RUT del contribuyente"
// @Success      200  {object}  sii.ConsultaSII
// @Router       /api/tax/sii/estado [get]
func (h *TaxHandler) ConsultarSII(c *fiber.Ctx) error {
	return c.JSON(h.uc.ConsultarSII(c.UserContext(), c.Query("rut")))
}

// VerificarBoletas godoc
// @Summary      Autorización de boletas electrónicas
// @Tags         tax
// @Produce      json
// @Param        rut  query  string  true  "RUT del contribuyente"
// @Success      200  {object}  sii.ConsultaBoletas
// @Router       /api/tax/sii/boletas [get]
func (h *TaxHandler) VerificarBoletas(c *fiber.Ctx) error {
	return c.JSON(h.uc.VerificarBoletas(c.UserContext(), c.Query("rut")))
}
