// internals/features/sitecontent/impact/controller/impact_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	impactDTO "aidjourney_backend/internals/features/sitecontent/impact/dto"
	impactModel "aidjourney_backend/internals/features/sitecontent/impact/model"
	helper "aidjourney_backend/internals/helpers"
)

type ImpactController struct {
	DB *gorm.DB
}

func (ctl *ImpactController) ordered() *gorm.DB {
	return ctl.DB.Model(&impactModel.ImpactStatModel{}).Order("sort_order ASC, id ASC")
}

// GET /api/impact
func (ctl *ImpactController) PublicList(c *fiber.Ctx) error {
	var rows []impactModel.ImpactStatModel
	if err := ctl.ordered().Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load impact stats")
	}
	return helper.JsonList(c, "Impact stats", impactDTO.ToPublicList(rows), len(rows))
}

// GET /api/admin/impact
func (ctl *ImpactController) List(c *fiber.Ctx) error {
	var rows []impactModel.ImpactStatModel
	if err := ctl.ordered().Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load impact stats")
	}
	return helper.JsonList(c, "Impact stats", impactDTO.ToAdminList(rows), len(rows))
}

// GET /api/admin/impact/:id
func (ctl *ImpactController) Get(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Impact stat", impactDTO.ToAdmin(*mm))
}

// POST /api/admin/impact
func (ctl *ImpactController) Create(c *fiber.Ctx) error {
	var req impactDTO.CreateImpactStatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create impact stat")
	}
	return helper.JsonCreated(c, "Impact stat created", impactDTO.ToAdmin(mm))
}

// PUT/PATCH /api/admin/impact/:id
func (ctl *ImpactController) Update(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req impactDTO.UpdateImpactStatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(mm)
	if err := ctl.DB.Save(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update impact stat")
	}
	return helper.JsonUpdated(c, "Impact stat updated", impactDTO.ToAdmin(*mm))
}

// DELETE /api/admin/impact/:id
func (ctl *ImpactController) Delete(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete impact stat")
	}
	return helper.JsonDeleted(c, "Impact stat deleted", fiber.Map{"id": mm.ID})
}

func (ctl *ImpactController) find(c *fiber.Ctx) (*impactModel.ImpactStatModel, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var mm impactModel.ImpactStatModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Impact stat not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}
