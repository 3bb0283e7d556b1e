package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// DDTHandler genera el documento de transporte de un traslado.
type DDTHandler struct {
	uc  *transfer.RenderDDTUseCase
	log *logger.Logger
}

// NewDDTHandler construye el handler.
func NewDDTHandler(uc *transfer.RenderDDTUseCase, log *logger.Logger) *DDTHandler {
	return &DDTHandler{uc: uc, log: log}
}

// Render godoc
// @Summary      Generar DDT de un traslado
// @Description  Recupera el traslado con todas sus líneas y devuelve la plantilla DDT evaluada.
// @Tags         ddt
// @Security     Bearer
// @Produce      json
// @Param        transferId  path  string  true  "ID numérico del traslado (o GID completo)"
// @Success      200  {object}  dto.DDTResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /app/{transferId}/ddttransfer [get]
func (h *DDTHandler) Render(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("transferId"))
	if id == "" {
		return respondError(c, h.log, domain.Errorf(domain.KindBadRequest, "http.ddt", "transferId es requerido"))
	}
	out, err := h.uc.Render(c.UserContext(), GetAdminAPI(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	requestLogger(c, h.log).Info().Str("shop", GetShop(c)).Str("transfer_id", id).Int("bytes", len(out.RenderedHTML)).Msg("DDT generado")
	return c.JSON(out)
}
