// internals/features/sitecontent/program/controller/program_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/constants"
	programDTO "aidjourney_backend/internals/features/sitecontent/program/dto"
	programModel "aidjourney_backend/internals/features/sitecontent/program/model"
	helper "aidjourney_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

func (ctl *ProgramController) ordered() *gorm.DB {
	return ctl.DB.Model(&programModel.ProgramModel{}).Order("sort_order ASC, id ASC")
}

/* =========================================================
   PUBLIC
   ========================================================= */

// GET /api/projects (alias /api/programs)
func (ctl *ProgramController) PublicList(c *fiber.Ctx) error {
	var rows []programModel.ProgramModel
	if err := ctl.ordered().Where("is_active = ?", true).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load programs")
	}
	return helper.JsonList(c, "Programs", programDTO.ToPublicList(rows), len(rows))
}

/* =========================================================
   ADMIN
   ========================================================= */

// GET /api/admin/projects
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	var rows []programModel.ProgramModel
	if err := ctl.ordered().Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load programs")
	}
	return helper.JsonList(c, "Programs", programDTO.ToAdminList(rows), len(rows))
}

// GET /api/admin/projects/:id
func (ctl *ProgramController) Get(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Program", programDTO.ToAdmin(*mm))
}

// POST /api/admin/projects
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req programDTO.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)

	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderPrograms, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		req.Image = stored
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}
	if strings.TrimSpace(req.Image) == "" {
		return helper.RequireField(c, "image")
	}

	// Slug is derived from the title only when absent, and a taken slug is
	// a conflict, not an auto-suffix.
	if req.Slug == "" {
		req.Slug = helper.Slugify(req.Title, 160)
	}
	taken, err := helper.SlugTaken(ctl.DB, "programs", "slug", req.Slug, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create program")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create program")
	}
	return helper.JsonCreated(c, "Program created", programDTO.ToAdmin(mm))
}

// PUT/PATCH /api/admin/projects/:id
func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req programDTO.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderPrograms, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		req.Image = &stored
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(mm)
	if err := ctl.DB.Save(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update program")
	}
	return helper.JsonUpdated(c, "Program updated", programDTO.ToAdmin(*mm))
}

// DELETE /api/admin/projects/:id
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	helper.RemoveImage(mm.Image)
	return helper.JsonDeleted(c, "Program deleted", fiber.Map{"id": mm.ID})
}

func (ctl *ProgramController) find(c *fiber.Ctx) (*programModel.ProgramModel, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var mm programModel.ProgramModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}
