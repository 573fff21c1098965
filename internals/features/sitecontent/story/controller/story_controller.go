// internals/features/sitecontent/story/controller/story_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/constants"
	storyDTO "aidjourney_backend/internals/features/sitecontent/story/dto"
	storyModel "aidjourney_backend/internals/features/sitecontent/story/model"
	helper "aidjourney_backend/internals/helpers"
)

type StoryController struct {
	DB *gorm.DB
}

func (ctl *StoryController) ordered() *gorm.DB {
	return ctl.DB.Model(&storyModel.StoryModel{}).Order("sort_order ASC, id ASC")
}

// GET /api/stories
func (ctl *StoryController) PublicList(c *fiber.Ctx) error {
	var rows []storyModel.StoryModel
	if err := ctl.ordered().Where("is_active = ?", true).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stories")
	}
	return helper.JsonList(c, "Stories", storyDTO.ToPublicList(rows), len(rows))
}

// GET /api/admin/stories
func (ctl *StoryController) List(c *fiber.Ctx) error {
	var rows []storyModel.StoryModel
	if err := ctl.ordered().Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stories")
	}
	return helper.JsonList(c, "Stories", storyDTO.ToAdminList(rows), len(rows))
}

// GET /api/admin/stories/:id
func (ctl *StoryController) Get(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Story", storyDTO.ToAdmin(*mm))
}

// POST /api/admin/stories
func (ctl *StoryController) Create(c *fiber.Ctx) error {
	var req storyDTO.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Href = strings.TrimSpace(req.Href)

	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderStories, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		req.Image = stored
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create story")
	}
	return helper.JsonCreated(c, "Story created", storyDTO.ToAdmin(mm))
}

// PUT/PATCH /api/admin/stories/:id
func (ctl *StoryController) Update(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req storyDTO.UpdateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderStories, fh)
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update story")
	}
	return helper.JsonUpdated(c, "Story updated", storyDTO.ToAdmin(*mm))
}

// DELETE /api/admin/stories/:id
func (ctl *StoryController) Delete(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete story")
	}
	helper.RemoveImage(mm.Image)
	return helper.JsonDeleted(c, "Story deleted", fiber.Map{"id": mm.ID})
}

func (ctl *StoryController) find(c *fiber.Ctx) (*storyModel.StoryModel, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var mm storyModel.StoryModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Story not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}
