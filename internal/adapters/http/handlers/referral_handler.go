package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"rupivo-partner/internal/core/domain"
	"rupivo-partner/internal/core/services"
	"rupivo-partner/internal/pkg/pagination"
	"rupivo-partner/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// MaxBulkUploadSize is the largest accepted bulk upload file
const MaxBulkUploadSize = 5 << 20

var bulkUploadExtensions = map[string]bool{".csv": true, ".xlsx": true}

// ReferralHandler handles referral endpoints
type ReferralHandler struct {
	referralService *services.ReferralService
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralService *services.ReferralService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// CreateReferralRequest represents a single lead submission
type CreateReferralRequest struct {
	LeadName string `json:"leadName" form:"leadName"`
	Mobile   string `json:"mobile" form:"mobile"`
	LoanType string `json:"loanType,omitempty" form:"loanType"`
}

// BulkReferralRequest represents already-parsed bulk rows
type BulkReferralRequest struct {
	Rows []services.BulkReferralRow `json:"rows"`
}

// List lists referrals
// @Summary List referrals
// @Description Search referrals by name or mobile and filter by loan type
// @Tags Referrals
// @Accept json
// @Produce json
// @Param q query string false "Name or mobile substring"
// @Param category query string false "Loan type" default(All)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /referrals [get]
func (h *ReferralHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	refs := h.referralService.List(c.Query("q"), c.Query("category", domain.CategoryAll))

	return response.Success(c, "Referrals retrieved successfully",
		pagination.NewResponse(pagination.Page(refs, params), params, len(refs)))
}

// Categories lists loan type filters
// @Summary List referral categories
// @Description Get "All" followed by every loan type present in the referrals
// @Tags Referrals
// @Produce json
// @Success 200 {object} response.Response
// @Router /referrals/categories [get]
func (h *ReferralHandler) Categories(c *fiber.Ctx) error {
	return response.Success(c, "Categories retrieved successfully", fiber.Map{
		"categories": h.referralService.Categories(),
	})
}

// GetByID gets a referral with its timeline
// @Summary Get referral
// @Description Get a referral with its application timeline
// @Tags Referrals
// @Produce json
// @Param id path string true "Referral ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /referrals/{id} [get]
func (h *ReferralHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.referralService.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReferralNotFound) {
			return response.NotFound(c, "Referral not found")
		}
		return response.InternalServerError(c, "Failed to get referral")
	}

	return response.Success(c, "Referral retrieved successfully", detail)
}

// Create adds a single lead
// @Summary Add lead
// @Description Register a new lead. Mobile must be exactly 10 digits.
// @Tags Referrals
// @Accept json
// @Produce json
// @Param body body CreateReferralRequest true "Lead data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /referrals [post]
func (h *ReferralHandler) Create(c *fiber.Ctx) error {
	var req CreateReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Form values alias the request buffer, copy before storing
	ref, err := h.referralService.Create(&services.CreateReferralInput{
		LeadName: utils.CopyString(req.LeadName),
		Mobile:   utils.CopyString(req.Mobile),
		LoanType: utils.CopyString(req.LoanType),
	})
	if err != nil {
		return referralWriteError(c, err, "Failed to create referral")
	}

	return response.Created(c, "Lead added successfully", fiber.Map{
		"referral": ref,
	})
}

// BulkCreate imports several leads
// @Summary Bulk add leads
// @Description Import leads from JSON rows or an uploaded .csv/.xlsx file (max 5MB)
// @Tags Referrals
// @Accept json,mpfd
// @Produce json
// @Param body body BulkReferralRequest false "Parsed rows"
// @Param file formData file false "Lead spreadsheet"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /referrals/bulk [post]
func (h *ReferralHandler) BulkCreate(c *fiber.Ctx) error {
	var rows []services.BulkReferralRow

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		file, err := c.FormFile("file")
		if err != nil {
			return response.BadRequest(c, "File is required")
		}
		if !bulkUploadExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
			return response.BadRequest(c, domain.ErrUnsupportedFile.Error())
		}
		if file.Size > MaxBulkUploadSize {
			return response.RequestEntityTooLarge(c, domain.ErrFileTooLarge.Error())
		}
		rows = services.SimulatedBulkRows()
	} else {
		var req BulkReferralRequest
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
		rows = req.Rows
	}

	created, err := h.referralService.BulkCreate(rows)
	if err != nil {
		return referralWriteError(c, err, "Failed to import referrals")
	}

	return response.Created(c, "Leads imported successfully", fiber.Map{
		"referrals": created,
		"count":     len(created),
	})
}

func referralWriteError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrLeadNameRequired),
		errors.Is(err, domain.ErrInvalidMobile),
		errors.Is(err, domain.ErrNoBulkRows):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, "Referral already exists")
	default:
		return response.InternalServerError(c, fallback)
	}
}
