// internals/features/sitecontent/events/controller/event_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/constants"
	eventDTO "aidjourney_backend/internals/features/sitecontent/events/dto"
	eventModel "aidjourney_backend/internals/features/sitecontent/events/model"
	helper "aidjourney_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

/* =========================================================
   CATEGORIES
   ========================================================= */

// GET /api/events/categories
func (ctl *EventController) PublicListCategories(c *fiber.Ctx) error {
	var rows []eventModel.EventCategoryModel
	err := ctl.DB.
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load categories")
	}
	return helper.JsonList(c, "Event categories", eventDTO.ToCategoryPublicList(rows), len(rows))
}

// GET /api/admin/events/categories
func (ctl *EventController) ListCategories(c *fiber.Ctx) error {
	var rows []eventModel.EventCategoryModel
	if err := ctl.DB.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load categories")
	}
	return helper.JsonList(c, "Event categories", eventDTO.ToCategoryAdminList(rows), len(rows))
}

// GET /api/admin/events/categories/:id
func (ctl *EventController) GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var mm eventModel.EventCategoryModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "Event category", eventDTO.ToCategoryAdmin(mm))
}

// POST /api/admin/events/categories
func (ctl *EventController) CreateCategory(c *fiber.Ctx) error {
	var req eventDTO.CreateEventCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)

	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	if req.Slug == "" {
		req.Slug = helper.Slugify(req.Name, 140)
	}
	taken, err := helper.SlugTaken(ctl.DB, "event_categories", "slug", req.Slug, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", eventDTO.ToCategoryAdmin(mm))
}

// PUT/PATCH /api/admin/events/categories/:id
func (ctl *EventController) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var mm eventModel.EventCategoryModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var req eventDTO.UpdateEventCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(&mm)
	if err := ctl.DB.Save(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonUpdated(c, "Category updated", eventDTO.ToCategoryAdmin(mm))
}

// DELETE /api/admin/events/categories/:id — the category, its events and
// their photos go in one transaction.
func (ctl *EventController) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var mm eventModel.EventCategoryModel
	if err := ctl.DB.First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var images []string
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var eventIDs []uint
		if err := tx.Model(&eventModel.EventModel{}).
			Where("category_id = ?", mm.ID).
			Pluck("id", &eventIDs).Error; err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := tx.Model(&eventModel.EventPhotoModel{}).
				Where("event_id IN ?", eventIDs).
				Pluck("image", &images).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id IN ?", eventIDs).
				Delete(&eventModel.EventPhotoModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", mm.ID).
				Delete(&eventModel.EventModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&mm).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	for _, img := range images {
		helper.RemoveImage(img)
	}
	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"id": mm.ID})
}

/* =========================================================
   EVENTS
   ========================================================= */

// GET /api/events?category=<slug>&year=<n>
func (ctl *EventController) PublicListEvents(c *fiber.Ctx) error {
	q := ctl.DB.Model(&eventModel.EventModel{}).
		Joins("JOIN event_categories ON event_categories.id = events.category_id").
		Where("events.is_active = ? AND event_categories.is_active = ?", true, true).
		Preload("Category").
		Preload("Photos").
		Order("events.sort_order ASC, events.id ASC")

	if slug := strings.TrimSpace(c.Query("category")); slug != "" {
		q = q.Where("event_categories.slug = ?", slug)
	}
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("events.year = ?", year)
	}

	var rows []eventModel.EventModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	out := make([]eventDTO.EventPublic, 0, len(rows))
	for _, mm := range rows {
		out = append(out, eventDTO.ToEventPublic(mm, len(mm.Photos)))
	}
	return helper.JsonList(c, "Events", out, len(out))
}

// GET /api/admin/events
func (ctl *EventController) ListEvents(c *fiber.Ctx) error {
	var rows []eventModel.EventModel
	err := ctl.DB.
		Preload("Category").
		Preload("Photos").
		Order("sort_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	out := make([]eventDTO.EventAdmin, 0, len(rows))
	for _, mm := range rows {
		out = append(out, eventDTO.ToEventAdmin(mm, len(mm.Photos)))
	}
	return helper.JsonList(c, "Events", out, len(out))
}

// GET /api/admin/events/:id
func (ctl *EventController) GetEvent(c *fiber.Ctx) error {
	mm, err := ctl.findEvent(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Event", eventDTO.ToEventAdmin(*mm, len(mm.Photos)))
}

// POST /api/admin/events
func (ctl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var cat eventModel.EventCategoryModel
	if err := ctl.DB.First(&cat, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonValidationError(c, map[string][]string{"category_id": {"unknown category"}})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	mm.Category = cat
	return helper.JsonCreated(c, "Event created", eventDTO.ToEventAdmin(mm, 0))
}

// PUT/PATCH /api/admin/events/:id
func (ctl *EventController) UpdateEvent(c *fiber.Ctx) error {
	mm, err := ctl.findEvent(c)
	if err != nil {
		return err
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}
	if req.CategoryID != nil {
		var cat eventModel.EventCategoryModel
		if err := ctl.DB.First(&cat, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonValidationError(c, map[string][]string{"category_id": {"unknown category"}})
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
		}
		mm.Category = cat
	}

	req.Apply(mm)
	if err := ctl.DB.Save(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", eventDTO.ToEventAdmin(*mm, len(mm.Photos)))
}

// DELETE /api/admin/events/:id — event plus photos in one transaction.
func (ctl *EventController) DeleteEvent(c *fiber.Ctx) error {
	mm, err := ctl.findEvent(c)
	if err != nil {
		return err
	}

	var images []string
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&eventModel.EventPhotoModel{}).
			Where("event_id = ?", mm.ID).
			Pluck("image", &images).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", mm.ID).
			Delete(&eventModel.EventPhotoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&eventModel.EventModel{}, mm.ID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	for _, img := range images {
		helper.RemoveImage(img)
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"id": mm.ID})
}

func (ctl *EventController) findEvent(c *fiber.Ctx) (*eventModel.EventModel, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}
	var mm eventModel.EventModel
	if err := ctl.DB.Preload("Category").Preload("Photos").First(&mm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}

/* =========================================================
   PHOTOS
   ========================================================= */

// GET /api/events/:id/photos
func (ctl *EventController) PublicListPhotos(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var ev eventModel.EventModel
	if err := ctl.DB.Where("id = ? AND is_active = ?", id, true).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load photos")
	}

	var rows []eventModel.EventPhotoModel
	err = ctl.DB.
		Where("event_id = ?", ev.ID).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load photos")
	}
	return helper.JsonList(c, "Event photos", eventDTO.ToPhotoPublicList(rows), len(rows))
}

// GET /api/admin/events/:id/photos
func (ctl *EventController) ListPhotos(c *fiber.Ctx) error {
	mm, err := ctl.findEvent(c)
	if err != nil {
		return err
	}
	var rows []eventModel.EventPhotoModel
	err = ctl.DB.
		Where("event_id = ?", mm.ID).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load photos")
	}
	return helper.JsonList(c, "Event photos", eventDTO.ToPhotoAdminList(rows), len(rows))
}

// POST /api/admin/events/:id/photos
func (ctl *EventController) CreatePhoto(c *fiber.Ctx) error {
	mm, err := ctl.findEvent(c)
	if err != nil {
		return err
	}

	var req eventDTO.CreateEventPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderEvents, fh)
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

	photo := req.ToModel(mm.ID)
	if err := ctl.DB.Create(&photo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create photo")
	}
	return helper.JsonCreated(c, "Photo created", eventDTO.ToPhotoAdmin(photo))
}

// PUT/PATCH /api/admin/events/photos/:id
func (ctl *EventController) UpdatePhoto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var photo eventModel.EventPhotoModel
	if err := ctl.DB.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Photo not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var req eventDTO.UpdateEventPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	req.Apply(&photo)
	if err := ctl.DB.Save(&photo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update photo")
	}
	return helper.JsonUpdated(c, "Photo updated", eventDTO.ToPhotoAdmin(photo))
}

// DELETE /api/admin/events/photos/:id
func (ctl *EventController) DeletePhoto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var photo eventModel.EventPhotoModel
	if err := ctl.DB.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Photo not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if err := ctl.DB.Delete(&photo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete photo")
	}
	helper.RemoveImage(photo.Image)
	return helper.JsonDeleted(c, "Photo deleted", fiber.Map{"id": photo.ID})
}
