package handlers

import (
	"errors"

	"rupivo-partner/internal/core/domain"
	"rupivo-partner/internal/core/services"
	"rupivo-partner/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MarketingHandler handles AI marketing tool endpoints
type MarketingHandler struct {
	marketingService *services.MarketingService
}

// NewMarketingHandler creates a new marketing handler
func NewMarketingHandler(marketingService *services.MarketingService) *MarketingHandler {
	return &MarketingHandler{
		marketingService: marketingService,
	}
}

// GenerateMessageRequest represents a message generation request
type GenerateMessageRequest struct {
	Tone string `json:"tone"`
}

// GenerateIdeasRequest represents a banner idea request
type GenerateIdeasRequest struct {
	Audience string `json:"audience"`
}

// GetLink returns the partner's referral link
// @Summary Referral link
// @Description Get the loan application link carrying the partner's referral code
// @Tags Marketing
// @Produce json
// @Success 200 {object} response.Response
// @Router /marketing/link [get]
func (h *MarketingHandler) GetLink(c *fiber.Ctx) error {
	return response.Success(c, "Referral link retrieved successfully", fiber.Map{
		"link": h.marketingService.ReferralLink(),
	})
}

// GenerateMessage writes a WhatsApp message
// @Summary Generate WhatsApp message
// @Description Generate a short share message in the given tone. Falls back to a fixed message when the AI is unavailable.
// @Tags Marketing
// @Accept json
// @Produce json
// @Param body body GenerateMessageRequest true "Tone: professional, casual or urgent"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /marketing/message [post]
func (h *MarketingHandler) GenerateMessage(c *fiber.Ctx) error {
	var req GenerateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tone, err := services.ParseTone(req.Tone)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Message generated successfully",
		h.marketingService.GenerateMessage(c.UserContext(), tone))
}

// GenerateIdeas proposes banner ideas
// @Summary Generate banner ideas
// @Description Generate banner concepts and taglines for a target audience
// @Tags Marketing
// @Accept json
// @Produce json
// @Param body body GenerateIdeasRequest true "Target audience"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /marketing/ideas [post]
func (h *MarketingHandler) GenerateIdeas(c *fiber.Ctx) error {
	var req GenerateIdeasRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	ideas, err := h.marketingService.GenerateIdeas(c.UserContext(), req.Audience)
	if err != nil {
		if errors.Is(err, domain.ErrAudienceRequired) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to generate ideas")
	}

	return response.Success(c, "Ideas generated successfully", ideas)
}
