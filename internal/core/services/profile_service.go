package services

import (
	"context"
	"log"
	"strings"

	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/core/domain"
	"rupivo-partner/internal/pkg/qrcode"
)

// ProfileService handles the partner profile and QR code
type ProfileService struct {
	profiles     repositories.ProfileRepository
	installURL   string
	qrServiceURL string
	fetcher      ImageFetcher
}

// NewProfileService creates a new profile service
func NewProfileService(profiles repositories.ProfileRepository, installURL, qrServiceURL string, fetcher ImageFetcher) *ProfileService {
	return &ProfileService{
		profiles:     profiles,
		installURL:   installURL,
		qrServiceURL: qrServiceURL,
		fetcher:      fetcher,
	}
}

// QRCodeInfo describes the partner's app-install QR code
type QRCodeInfo struct {
	ReferralCode string `json:"referralCode"`
	InstallLink  string `json:"installLink"`
	ImageURL     string `json:"imageUrl"`
	FileName     string `json:"fileName"`
}

// QRDownload is the result of fetching the QR image.
// Image is nil when the fetch failed and FallbackURL should be opened instead.
type QRDownload struct {
	Image       []byte
	ContentType string
	FileName    string
	FallbackURL string
}

// GetProfile returns the partner with the bank account number masked
func (s *ProfileService) GetProfile() domain.UserProfile {
	p := s.profiles.Get()
	if p.BankDetails != nil {
		bank := *p.BankDetails
		bank.AccountNumber = MaskAccountNumber(bank.AccountNumber)
		p.BankDetails = &bank
	}
	return p
}

// QRCode returns the QR links for the partner
func (s *ProfileService) QRCode() QRCodeInfo {
	code := s.profiles.Get().ReferralCode
	link := qrcode.ReferralLink(s.installURL, code)
	return QRCodeInfo{
		ReferralCode: code,
		InstallLink:  link,
		ImageURL:     qrcode.ImageURL(s.qrServiceURL, link),
		FileName:     qrcode.FileName(code),
	}
}

// DownloadQR fetches the QR image, falling back to its URL on failure
func (s *ProfileService) DownloadQR(ctx context.Context) *QRDownload {
	info := s.QRCode()
	out := &QRDownload{FileName: info.FileName, FallbackURL: info.ImageURL}
	if s.fetcher == nil {
		return out
	}

	data, contentType, err := s.fetcher.Fetch(ctx, info.ImageURL)
	if err != nil {
		log.Printf("❌ QR download failed, falling back to image URL: %v", err)
		return out
	}
	out.Image = data
	out.ContentType = contentType
	return out
}

// MaskAccountNumber keeps the last 4 characters and masks the rest with X
func MaskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("X", len(number)-4) + number[len(number)-4:]
}
