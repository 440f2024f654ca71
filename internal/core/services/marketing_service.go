package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/core/domain"
	"rupivo-partner/internal/pkg/qrcode"
)

// Tone is the voice of a generated marketing message
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneUrgent       Tone = "urgent"
)

// ParseTone validates a tone, defaulting to casual when empty
func ParseTone(raw string) (Tone, error) {
	switch t := Tone(strings.ToLower(strings.TrimSpace(raw))); t {
	case "":
		return ToneCasual, nil
	case ToneProfessional, ToneCasual, ToneUrgent:
		return t, nil
	}
	return "", domain.ErrInvalidTone
}

var bannerIdeasSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"concept": map[string]any{"type": "STRING"},
			"tagline": map[string]any{"type": "STRING"},
		},
		"required": []string{"concept", "tagline"},
	},
}

// MarketingService generates shareable marketing copy for the partner
type MarketingService struct {
	generator TextGenerator
	profiles  repositories.ProfileRepository
	applyURL  string
}

// NewMarketingService creates a new marketing service. generator may be nil,
// in which case every request is served from the local fallbacks.
func NewMarketingService(generator TextGenerator, profiles repositories.ProfileRepository, applyURL string) *MarketingService {
	return &MarketingService{
		generator: generator,
		profiles:  profiles,
		applyURL:  applyURL,
	}
}

// GeneratedMessage is a share-ready message
type GeneratedMessage struct {
	Message  string `json:"message"`
	ShareURL string `json:"shareUrl"`
	Fallback bool   `json:"fallback"`
}

// GeneratedIdeas is a set of banner ideas
type GeneratedIdeas struct {
	Ideas    []domain.BannerIdea `json:"ideas"`
	Fallback bool                `json:"fallback"`
}

// ReferralLink returns the partner's loan application link
func (s *MarketingService) ReferralLink() string {
	return qrcode.ReferralLink(s.applyURL, s.profiles.Get().ReferralCode)
}

// WhatsAppShareURL returns a wa.me link prefilled with msg
func WhatsAppShareURL(msg string) string {
	return "https://wa.me/?text=" + url.QueryEscape(msg)
}

// GenerateMessage writes a short WhatsApp message in the given tone.
// Generator failures resolve to a fixed message containing the referral link.
func (s *MarketingService) GenerateMessage(ctx context.Context, tone Tone) *GeneratedMessage {
	link := s.ReferralLink()
	msg, fallback := s.generateMessage(ctx, tone, link)
	return &GeneratedMessage{
		Message:  msg,
		ShareURL: WhatsAppShareURL(msg),
		Fallback: fallback,
	}
}

func (s *MarketingService) generateMessage(ctx context.Context, tone Tone, link string) (string, bool) {
	if s.generator == nil {
		log.Println("⚠️ Gemini API key is missing, using fallback message")
		return unconfiguredMessage(link), true
	}

	text, err := s.generator.GenerateText(ctx, messagePrompt(tone, link))
	if err != nil {
		log.Printf("❌ Error generating marketing message: %v", err)
		return failedMessage(link), true
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return unconfiguredMessage(link), true
	}
	return text, false
}

// GenerateIdeas proposes banner concepts for audience.
// Generator failures and malformed output resolve to fixed ideas.
func (s *MarketingService) GenerateIdeas(ctx context.Context, audience string) (*GeneratedIdeas, error) {
	audience = strings.TrimSpace(audience)
	if audience == "" {
		return nil, domain.ErrAudienceRequired
	}

	if s.generator == nil {
		log.Println("⚠️ Gemini API key is missing, using fallback banner ideas")
		return &GeneratedIdeas{Ideas: FallbackBannerIdeas(), Fallback: true}, nil
	}

	raw, err := s.generator.GenerateJSON(ctx, ideasPrompt(audience, s.ReferralLink()), bannerIdeasSchema)
	if err != nil {
		log.Printf("❌ Error generating banner ideas: %v", err)
		return &GeneratedIdeas{Ideas: FallbackBannerIdeas(), Fallback: true}, nil
	}

	ideas, err := parseBannerIdeas(raw)
	if err != nil {
		log.Printf("❌ Malformed banner ideas: %v", err)
		return &GeneratedIdeas{Ideas: FallbackBannerIdeas(), Fallback: true}, nil
	}
	return &GeneratedIdeas{Ideas: ideas}, nil
}

func parseBannerIdeas(raw string) ([]domain.BannerIdea, error) {
	var ideas []domain.BannerIdea
	if err := json.Unmarshal([]byte(raw), &ideas); err != nil {
		return nil, err
	}

	out := make([]domain.BannerIdea, 0, len(ideas))
	for _, idea := range ideas {
		idea.Concept = strings.TrimSpace(idea.Concept)
		idea.Tagline = strings.TrimSpace(idea.Tagline)
		if idea.Concept == "" || idea.Tagline == "" {
			continue
		}
		out = append(out, idea)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no complete ideas in response")
	}
	return out, nil
}

// FallbackBannerIdeas are served when generation is unavailable
func FallbackBannerIdeas() []domain.BannerIdea {
	return []domain.BannerIdea{
		{Concept: "A happy person holding a phone with a green checkmark", Tagline: "Quick loans, simpler life."},
		{Concept: "A handshake between two professionals", Tagline: "Trusted partners in your growth."},
	}
}

func unconfiguredMessage(link string) string {
	return "Check out Rupivo for your financial needs! Apply here: " + link
}

func failedMessage(link string) string {
	return fmt.Sprintf("Hey! I found a great platform for loans called Rupivo. It's fast and reliable. Check it out here: %s", link)
}

func messagePrompt(tone Tone, link string) string {
	return fmt.Sprintf(`You are a marketing assistant for a Referral Partner of a lending platform called "Rupivo".
The partner wants to share their referral link with their network.

Goal: Create a short, engaging WhatsApp message that the partner can send to friends or clients.
Constraint:
- Do NOT mention specific interest rates.
- Do NOT promise guaranteed approval.
- Do NOT mention EMI calculations.
- Focus on ease, speed, and trust.
- The tone should be %s.
- Include the referral link: %s at the end.

Keep it under 60 words. Use emojis where appropriate.`, tone, link)
}

func ideasPrompt(audience, link string) string {
	return fmt.Sprintf(`You are a creative marketing expert for "Rupivo", a fast and reliable lending platform.
Generate 3 creative banner advertisement ideas for a referral partner targeting: %s.

The banner is intended to drive traffic to this specific referral link: %s

For each idea, provide:
1. A visual concept description (describe the image, colors, and mood).
2. A catchy tagline that motivates the user to click the link/apply.`, audience, link)
}
