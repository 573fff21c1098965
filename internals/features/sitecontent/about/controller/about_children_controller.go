// internals/features/sitecontent/about/controller/about_children_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aboutDTO "aidjourney_backend/internals/features/sitecontent/about/dto"
	aboutModel "aidjourney_backend/internals/features/sitecontent/about/model"
	helper "aidjourney_backend/internals/helpers"
)

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

/* =========================================================
   WHAT WE DO (admin, under the singleton)
   ========================================================= */

// GET /api/admin/about/what-we-do
func (ctl *AboutController) ListWhatWeDo(c *fiber.Ctx) error {
	var rows []aboutModel.WhatWeDoItemModel
	if err := ctl.DB.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load items")
	}
	return helper.JsonList(c, "What we do", aboutDTO.ToWhatWeDoAdminList(rows), len(rows))
}

// POST /api/admin/about/what-we-do
func (ctl *AboutController) CreateWhatWeDo(c *fiber.Ctx) error {
	mm, err := ctl.section()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}

	var req aboutDTO.CreateWhatWeDoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	item := req.ToModel(mm.ID)
	if err := ctl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create item")
	}
	return helper.JsonCreated(c, "Item created", aboutDTO.ToWhatWeDoAdmin(item))
}

// PUT/PATCH /api/admin/about/what-we-do/:id
func (ctl *AboutController) UpdateWhatWeDo(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var item aboutModel.WhatWeDoItemModel
	if err := ctl.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var req aboutDTO.UpdateWhatWeDoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(&item)
	if err := ctl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update item")
	}
	return helper.JsonUpdated(c, "Item updated", aboutDTO.ToWhatWeDoAdmin(item))
}

// DELETE /api/admin/about/what-we-do/:id
func (ctl *AboutController) DeleteWhatWeDo(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&aboutModel.WhatWeDoItemModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	}
	return helper.JsonDeleted(c, "Item deleted", fiber.Map{"id": id})
}

/* =========================================================
   JOURNEY (admin, under the singleton)
   ========================================================= */

// GET /api/admin/about/journey
func (ctl *AboutController) ListJourney(c *fiber.Ctx) error {
	var rows []aboutModel.JourneyEntryModel
	if err := ctl.DB.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load entries")
	}
	return helper.JsonList(c, "Journey", aboutDTO.ToJourneyAdminList(rows), len(rows))
}

// POST /api/admin/about/journey
func (ctl *AboutController) CreateJourney(c *fiber.Ctx) error {
	mm, err := ctl.section()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}

	var req aboutDTO.CreateJourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	entry := req.ToModel(mm.ID)
	if err := ctl.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create entry")
	}
	return helper.JsonCreated(c, "Entry created", aboutDTO.ToJourneyAdmin(entry))
}

// PUT/PATCH /api/admin/about/journey/:id
func (ctl *AboutController) UpdateJourney(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var entry aboutModel.JourneyEntryModel
	if err := ctl.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var req aboutDTO.UpdateJourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(&entry)
	if err := ctl.DB.Save(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update entry")
	}
	return helper.JsonUpdated(c, "Entry updated", aboutDTO.ToJourneyAdmin(entry))
}

// DELETE /api/admin/about/journey/:id
func (ctl *AboutController) DeleteJourney(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&aboutModel.JourneyEntryModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete entry")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Entry not found")
	}
	return helper.JsonDeleted(c, "Entry deleted", fiber.Map{"id": id})
}
