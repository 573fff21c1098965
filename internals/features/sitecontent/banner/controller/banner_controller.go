// internals/features/sitecontent/banner/controller/banner_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aidjourney_backend/internals/access"
	"aidjourney_backend/internals/constants"
	bannerDTO "aidjourney_backend/internals/features/sitecontent/banner/dto"
	bannerModel "aidjourney_backend/internals/features/sitecontent/banner/model"
	helper "aidjourney_backend/internals/helpers"
)

type BannerController struct {
	DB *gorm.DB
}

// scope reproduces the role-dependent queryset: only a staff caller on a
// non-read request sees inactive slides. Read requests — staff included —
// get the active subset.
func (ctl *BannerController) scope(staff bool, method string) *gorm.DB {
	q := ctl.DB.Model(&bannerModel.BannerModel{})
	if !access.IncludeInactive(staff, method) {
		q = q.Where("is_active = ?", true)
	}
	return q.Order("sort_order ASC, id ASC")
}

/* =========================================================
   PUBLIC
   ========================================================= */

// GET /api/banner
func (ctl *BannerController) PublicList(c *fiber.Ctx) error {
	var rows []bannerModel.BannerModel
	if err := ctl.scope(false, c.Method()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load banners")
	}
	return helper.JsonList(c, "Banners", bannerDTO.ToPublicList(rows), len(rows))
}

/* =========================================================
   ADMIN
   ========================================================= */

// GET /api/admin/banners
func (ctl *BannerController) List(c *fiber.Ctx) error {
	var rows []bannerModel.BannerModel
	if err := ctl.scope(true, c.Method()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load banners")
	}
	return helper.JsonList(c, "Banners", bannerDTO.ToAdminList(rows), len(rows))
}

// GET /api/admin/banners/:id
func (ctl *BannerController) Get(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Banner", bannerDTO.ToAdmin(*mm))
}

// POST /api/admin/banners
func (ctl *BannerController) Create(c *fiber.Ctx) error {
	var req bannerDTO.CreateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.CtaHref = strings.TrimSpace(req.CtaHref)

	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderBanners, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		req.Image = stored
	}
	if fh, err := c.FormFile("mobile_image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderBanners, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		req.MobileImage = stored
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}
	if strings.TrimSpace(req.Image) == "" {
		return helper.RequireField(c, "image")
	}

	mm := req.ToModel()
	if err := ctl.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create banner")
	}
	return helper.JsonCreated(c, "Banner created", bannerDTO.ToAdmin(mm))
}

// PUT/PATCH /api/admin/banners/:id
func (ctl *BannerController) Update(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req bannerDTO.UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		stored, err := helper.SaveImage(constants.FolderBanners, fh)
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update banner")
	}
	return helper.JsonUpdated(c, "Banner updated", bannerDTO.ToAdmin(*mm))
}

// DELETE /api/admin/banners/:id
func (ctl *BannerController) Delete(c *fiber.Ctx) error {
	mm, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete banner")
	}
	helper.RemoveImage(mm.Image)
	helper.RemoveImage(mm.MobileImage)
	return helper.JsonDeleted(c, "Banner deleted", fiber.Map{"id": mm.ID})
}

// find loads :id through the role/method scope, so a staff read of an
// inactive slide is a 404 while a staff write can reach it.
func (ctl *BannerController) find(c *fiber.Ctx) (*bannerModel.BannerModel, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var mm bannerModel.BannerModel
	if err := ctl.scope(true, c.Method()).Where("id = ?", id).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Banner not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return &mm, nil
}
