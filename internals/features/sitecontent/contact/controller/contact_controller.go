// internals/features/sitecontent/contact/controller/contact_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactDTO "aidjourney_backend/internals/features/sitecontent/contact/dto"
	contactModel "aidjourney_backend/internals/features/sitecontent/contact/model"
	helper "aidjourney_backend/internals/helpers"
)

type ContactController struct {
	DB *gorm.DB
}

/* =========================================================
   CONTACT MESSAGES
   ========================================================= */

// POST /api/contact — the one public write in the system.
func (ctl *ContactController) CreateMessage(c *fiber.Ctx) error {
	var req contactDTO.CreateContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}
	return helper.JsonCreated(c, "Message sent", fiber.Map{"id": mm.ID})
}

// GET /api/admin/contacts
func (ctl *ContactController) ListMessages(c *fiber.Ctx) error {
	var rows []contactModel.ContactMessageModel
	if err := ctl.DB.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load messages")
	}
	return helper.JsonList(c, "Messages", contactDTO.ToMessageAdminList(rows), len(rows))
}

// GET /api/admin/contacts/:id
func (ctl *ContactController) GetMessage(c *fiber.Ctx) error {
	mm, err := ctl.findMessage(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Message", contactDTO.ToMessageAdmin(*mm))
}

// DELETE /api/admin/contacts/:id
func (ctl *ContactController) DeleteMessage(c *fiber.Ctx) error {
	mm, err := ctl.findMessage(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"id": mm.ID})
}

func (ctl *ContactController) findMessage(c *fiber.Ctx) (*contactModel.ContactMessageModel, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var mm contactModel.ContactMessageModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Message not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}

/* =========================================================
   CONTACT INFO (singleton)
   ========================================================= */

func (ctl *ContactController) info() (*contactModel.ContactInfoModel, error) {
	return helper.FetchOrInitialize(ctl.DB, &contactModel.ContactInfoModel{
		ID: helper.SingletonID,
	})
}

// GET /api/contact-info
func (ctl *ContactController) PublicGetInfo(c *fiber.Ctx) error {
	mm, err := ctl.info()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact info")
	}
	return helper.JsonOK(c, "Contact info", contactDTO.ToInfoPublic(*mm))
}

// GET /api/admin/contact-info
func (ctl *ContactController) GetInfo(c *fiber.Ctx) error {
	mm, err := ctl.info()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact info")
	}
	return helper.JsonOK(c, "Contact info", contactDTO.ToInfoAdmin(*mm))
}

// PUT/PATCH /api/admin/contact-info
func (ctl *ContactController) UpdateInfo(c *fiber.Ctx) error {
	mm, err := ctl.info()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact info")
	}

	var req contactDTO.UpdateContactInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(mm)
	if err := ctl.DB.Save(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contact info")
	}
	return helper.JsonUpdated(c, "Contact info updated", contactDTO.ToInfoAdmin(*mm))
}
