package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// TransferHandler listado de traslados de la tienda.
type TransferHandler struct {
	uc  *transfer.ListTransfersUseCase
	log *logger.Logger
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.ListTransfersUseCase, log *logger.Logger) *TransferHandler {
	return &TransferHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        first  query  int     false  "Tamaño de página (máx. 100)"  default(15)
// @Param        after  query  string  false  "Cursor de la página anterior"
// @Success      200  {object}  dto.TransferListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /app/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var req dto.CursorPageRequest
	if err := c.QueryParser(&req); err != nil {
		return respondError(c, h.log, domain.Errorf(domain.KindBadRequest, "http.transfers", "parámetros de paginación inválidos"))
	}
	out, err := h.uc.List(c.UserContext(), GetAdminAPI(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
