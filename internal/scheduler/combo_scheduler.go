package scheduler

import (
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ComboScheduler retires combo bundles whose validity date has passed.
// The public listing filters by wall clock anyway; the sweep keeps the
// admin view consistent with what customers can see.
type ComboScheduler struct {
	cron         *cron.Cron
	comboService service.ComboService
}

func NewComboScheduler(comboService service.ComboService) *ComboScheduler {
	return &ComboScheduler{
		cron:         cron.New(),
		comboService: comboService,
	}
}

// Start registers the hourly sweep and starts the cron loop.
func (s *ComboScheduler) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", func() {
		logger.Debug("Starting scheduled combo expiry sweep", nil)

		count, err := s.comboService.DeactivateExpired()
		if err != nil {
			logger.Error("Failed to deactivate expired combos from scheduler", err)
			return
		}

		if count > 0 {
			logger.Info("Combo expiry sweep finished", map[string]interface{}{
				"deactivated": count,
			})
		}
	})

	if err != nil {
		logger.Error("Failed to add cron job for combo expiry sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Combo scheduler started successfully (hourly sweep)", nil)

	return nil
}

func (s *ComboScheduler) Stop() {
	logger.Info("Stopping combo scheduler...", nil)
	s.cron.Stop()
	logger.Info("Combo scheduler stopped", nil)
}
