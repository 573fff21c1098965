// internals/features/sitecontent/news/controller/news_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/constants"
	newsDTO "aidjourney_backend/internals/features/sitecontent/news/dto"
	newsModel "aidjourney_backend/internals/features/sitecontent/news/model"
	helper "aidjourney_backend/internals/helpers"
)

type NewsController struct {
	DB *gorm.DB
}

// Newest first, insertion order breaking same-day ties.
func (ctl *NewsController) ordered() *gorm.DB {
	return ctl.DB.Model(&newsModel.NewsModel{}).Order("date DESC, id DESC")
}

/* =========================================================
   PUBLIC
   ========================================================= */

// GET /api/news
func (ctl *NewsController) PublicList(c *fiber.Ctx) error {
	var rows []newsModel.NewsModel
	if err := ctl.ordered().Where("published = ?", true).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}
	return helper.JsonList(c, "News", newsDTO.ToPublicList(rows), len(rows))
}

// GET /api/news/:slug
func (ctl *NewsController) PublicGetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slug")
	}
	var mm newsModel.NewsModel
	err := ctl.DB.
		Where("slug = ? AND published = ?", slug, true).
		First(&mm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "News not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}
	return helper.JsonOK(c, "News", newsDTO.ToPublic(mm))
}

/* =========================================================
   ADMIN
   ========================================================= */

// GET /api/admin/news
func (ctl *NewsController) List(c *fiber.Ctx) error {
	var rows []newsModel.NewsModel
	if err := ctl.ordered().Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}
	return helper.JsonList(c, "News", newsDTO.ToAdminList(rows), len(rows))
}

// GET /api/admin/news/:id
func (ctl *NewsController) Get(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "News", newsDTO.ToAdmin(*mm))
}

// POST /api/admin/news
func (ctl *NewsController) Create(c *fiber.Ctx) error {
	var req newsDTO.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)

	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderNews, fh)
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
	date, ok := req.ParseDate()
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{"date": {"must be a YYYY-MM-DD date"}})
	}

	if req.Slug == "" {
		req.Slug = helper.Slugify(req.Title, 200)
	}
	taken, err := helper.SlugTaken(ctl.DB, "news", "slug", req.Slug, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
	}

	mm := req.ToModel(date)
	mm.Slug = req.Slug
	if err := ctl.DB.Create(&mm).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	return helper.JsonCreated(c, "News created", newsDTO.ToAdmin(mm))
}

// PUT/PATCH /api/admin/news/:id
func (ctl *NewsController) Update(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req newsDTO.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderNews, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		req.Image = &stored
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	if !req.Apply(mm) {
		return helper.JsonValidationError(c, map[string][]string{"date": {"must be a YYYY-MM-DD date"}})
	}
	if err := ctl.DB.Save(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update news")
	}
	return helper.JsonUpdated(c, "News updated", newsDTO.ToAdmin(*mm))
}

// DELETE /api/admin/news/:id
func (ctl *NewsController) Delete(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete news")
	}
	helper.RemoveImage(mm.Image)
	return helper.JsonDeleted(c, "News deleted", fiber.Map{"id": mm.ID})
}

func (ctl *NewsController) find(c *fiber.Ctx) (*newsModel.NewsModel, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var mm newsModel.NewsModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "News not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}
