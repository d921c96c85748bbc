package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tnbcserp/invt-mgmt/internal/application/dto"
	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
	"github.com/tnbcserp/invt-mgmt/internal/domain"
)

// RawMaterialHandler maneja los endpoints del maestro de materias primas.
type RawMaterialHandler struct {
	uc *inventory.UseCase
}

// NewRawMaterialHandler construye el handler.
func NewRawMaterialHandler(uc *inventory.UseCase) *RawMaterialHandler {
	return &RawMaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materias primas
// @Tags         raw-materials
// @Produce      json
// @Success      200  {array}  entity.RawMaterial
// @Router       /api/v1/raw-materials [get]
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.RawMaterials(c.Context()))
}

// GetByID godoc
// @Summary      Obtener materia prima por RM ID
// @Tags         raw-materials
// @Produce      json
// @Param        id   path  string  true  "RM ID"
// @Success      200  {object}  entity.RawMaterial
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/raw-materials/{id} [get]
func (h *RawMaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.RawMaterialByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "materia prima no encontrada",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
