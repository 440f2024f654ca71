package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// CronService runs the partner's daily summary
type CronService struct {
	cron      *cron.Cron
	schedule  string
	dashboard *DashboardService
	earnings  *EarningsService
}

// NewCronService creates a new cron service
func NewCronService(schedule string, dashboard *DashboardService, earnings *EarningsService) *CronService {
	logger := cron.PrintfLogger(log.Default())
	return &CronService{
		cron:      cron.New(cron.WithChain(cron.Recover(logger))),
		schedule:  schedule,
		dashboard: dashboard,
		earnings:  earnings,
	}
}

// Start registers the summary job and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.LogDailySummary); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("⏰ Daily summary scheduled [%s]", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 Cron service stopped")
}

// LogDailySummary logs the current KPIs and pending payouts
func (s *CronService) LogDailySummary() {
	kpis := s.dashboard.KPIs()
	pendingCount, pendingTotal := s.earnings.PendingSummary()

	log.Printf("📊 Daily summary: referrals=%d applied=%d approved=%d disbursed=%d earnings=%s",
		kpis.TotalReferrals, kpis.Applied, kpis.Approved, kpis.Disbursed, kpis.TotalEarnings)
	log.Printf("💰 Pending payouts: %d totalling %s", pendingCount, pendingTotal)
}
