package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/checkout"
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/application/receipt"
	"github.com/tu-usuario/punto-venta/internal/application/usecase"
)

// SaleHandler maneja el checkout y las lecturas del libro de ventas.
type SaleHandler struct {
	checkoutUC *checkout.UseCase
	saleUC     *usecase.SaleUseCase
	receiptUC  *receipt.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(checkoutUC *checkout.UseCase, saleUC *usecase.SaleUseCase, receiptUC *receipt.UseCase) *SaleHandler {
	return &SaleHandler{checkoutUC: checkoutUC, saleUC: saleUC, receiptUC: receiptUC}
}

// Checkout procesa el carrito como una unidad atómica. El cajero sale del
// token; el total siempre se calcula en el servidor. 409 con detalle de la
// primera línea sin stock suficiente.
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	cashierID := GetUserID(c)
	if cashierID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "cajero no identificado"})
	}
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkoutUC.Checkout(c.UserContext(), cashierID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene la cabecera de una venta.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	saleID, err := parseSaleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_id inválido"})
	}
	out, err := h.saleUC.GetByID(saleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Items obtiene las líneas de una venta (precio y nombre congelados).
func (h *SaleHandler) Items(c *fiber.Ctx) error {
	saleID, err := parseSaleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_id inválido"})
	}
	out, err := h.saleUC.Detail(saleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out.Items)
}

// Receipt genera el comprobante PDF de una venta.
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	saleID, err := parseSaleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_id inválido"})
	}
	pdfBytes, err := h.receiptUC.Generate(c.UserContext(), saleID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="venta-`+strconv.FormatInt(saleID, 10)+`.pdf"`)
	return c.Send(pdfBytes)
}

func parseSaleID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
