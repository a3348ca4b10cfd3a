package api

import (
	"context"
	"errors"
	"github.com/rs/zerolog/log"
	"github.com/skybi/translation-portal/internal/api/portal"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/skybi/translation-portal/internal/config"
	"github.com/skybi/translation-portal/internal/task"
	"github.com/skybi/translation-portal/internal/upstream"
	"net/http"
	"time"
)

// PurgeInterval is the interval expired sessions are purged from the session storage in
const PurgeInterval = time.Minute

// Service represents the translation portal service
type Service struct {
	Config   *config.Config
	Sessions session.Storage

	portal *portal.Service
	purge  *task.RepeatingTask
}

// Startup starts up the portal and the background task purging expired sessions
func (service *Service) Startup(errs chan<- error) {
	portalService := &portal.Service{
		Config:   service.Config,
		Sessions: service.Sessions,
		Platform: upstream.New(service.Config),
	}
	service.portal = portalService
	go func() {
		if err := portalService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	service.purge = task.NewRepeating(service.purgeExpiredSessions, PurgeInterval)
	service.purge.Start()
}

// Shutdown shuts down the portal and stops the purging task
func (service *Service) Shutdown() {
	if service.purge != nil {
		service.purge.Stop(false)
		service.purge = nil
	}
	if service.portal != nil {
		service.portal.Shutdown()
		service.portal = nil
	}
}

func (service *Service) purgeExpiredSessions(ctx context.Context) {
	n, err := service.Sessions.TerminateExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not terminate expired sessions")
	} else if n > 0 {
		log.Info().Int("amount", n).Msg("terminated expired sessions")
	}
}
