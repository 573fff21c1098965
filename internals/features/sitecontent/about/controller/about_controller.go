// internals/features/sitecontent/about/controller/about_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/constants"
	aboutDTO "aidjourney_backend/internals/features/sitecontent/about/dto"
	aboutModel "aidjourney_backend/internals/features/sitecontent/about/model"
	helper "aidjourney_backend/internals/helpers"
)

type AboutController struct {
	DB *gorm.DB
}

// section materializes the singleton row on first access.
func (ctl *AboutController) section() (*aboutModel.AboutSectionModel, error) {
	return helper.FetchOrInitialize(ctl.DB, &aboutModel.AboutSectionModel{
		ID:       helper.SingletonID,
		IsActive: true,
	})
}

/* =========================================================
   PUBLIC
   ========================================================= */

// GET /api/about
func (ctl *AboutController) PublicGet(c *fiber.Ctx) error {
	mm, err := ctl.section()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}

	var items []aboutModel.WhatWeDoItemModel
	if err := ctl.DB.
		Where("about_id = ? AND is_active = ?", mm.ID, true).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}

	var journey []aboutModel.JourneyEntryModel
	if err := ctl.DB.
		Where("about_id = ? AND is_active = ?", mm.ID, true).
		Order("sort_order ASC, id ASC").
		Find(&journey).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}

	return helper.JsonOK(c, "About", aboutDTO.ToPublic(*mm, items, journey))
}

/* =========================================================
   ADMIN
   ========================================================= */

// GET /api/admin/about
func (ctl *AboutController) Get(c *fiber.Ctx) error {
	mm, err := ctl.section()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}
	return helper.JsonOK(c, "About", aboutDTO.ToAdmin(*mm))
}

// PUT/PATCH /api/admin/about
func (ctl *AboutController) Update(c *fiber.Ctx) error {
	mm, err := ctl.section()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load about section")
	}

	var req aboutDTO.UpdateAboutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	for field, dst := range map[string]**string{
		"image_file":         &req.Image,
		"mission_image_file": &req.MissionImage,
		"vision_image_file":  &req.VisionImage,
		"values_image_file":  &req.ValuesImage,
	} {
		fh, err := c.FormFile(field)
		if err != nil || fh == nil {
			continue
		}
		stored, err := helper.SaveImage(constants.FolderAbout, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		*dst = &stored
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(mm)
	if err := ctl.DB.Save(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update about section")
	}
	return helper.JsonUpdated(c, "About updated", aboutDTO.ToAdmin(*mm))
}
