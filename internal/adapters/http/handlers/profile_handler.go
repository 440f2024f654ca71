package handlers

import (
	"rupivo-partner/internal/core/services"
	"rupivo-partner/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles partner profile endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the partner profile
// @Summary Get profile
// @Description Get partner details and bank account (account number masked)
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	return response.Success(c, "Profile retrieved successfully", fiber.Map{
		"profile": h.profileService.GetProfile(),
	})
}

// GetQRCode returns the QR code links
// @Summary Get QR code
// @Description Get the app install link and QR image URL for the partner
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Response
// @Router /profile/qr [get]
func (h *ProfileHandler) GetQRCode(c *fiber.Ctx) error {
	return response.Success(c, "QR code retrieved successfully", h.profileService.QRCode())
}

// DownloadQRCode downloads the QR image
// @Summary Download QR code
// @Description Download the QR image as PNG. Redirects to the image URL when it cannot be fetched.
// @Tags Profile
// @Produce png
// @Success 200 {file} file
// @Success 302
// @Router /profile/qr/image [get]
func (h *ProfileHandler) DownloadQRCode(c *fiber.Ctx) error {
	dl := h.profileService.DownloadQR(c.UserContext())
	if dl.Image == nil {
		return c.Redirect(dl.FallbackURL, fiber.StatusFound)
	}

	c.Attachment(dl.FileName)
	if dl.ContentType != "" {
		c.Set(fiber.HeaderContentType, dl.ContentType)
	}
	return c.Send(dl.Image)
}
