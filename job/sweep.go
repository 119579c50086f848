package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/skeptikoss/legalflow-ai-assistant/pkg/logger"
	"github.com/skeptikoss/legalflow-ai-assistant/service"
)

// StartSweep schedules periodic eviction of expired cache entries. Expiry is
// otherwise passive, so without the sweep the maps only shrink on an
// explicit clear. Returns the scheduler so the caller can stop it on
// shutdown.
func StartSweep(caches *service.Caches, interval time.Duration) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		removed := caches.Sweep()
		if removed > 0 {
			logger.Debug(context.Background(), "evicted expired cache entries", "removed", removed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule cache sweep: %w", err)
	}

	c.Start()
	return c, nil
}
