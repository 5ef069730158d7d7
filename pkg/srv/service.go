package srv

import (
	"context"
	"errors"

	"github.com/sandevgo/blaster/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Start runs the service and may block until it stops.
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is done or one of them
// fails, then shuts all of them down in reverse order.
func Run(ctx context.Context, services []Service) error {
	logger := log.FromCtx(ctx)
	g, gctx := errgroup.WithContext(ctx)

	for _, service := range services {
		g.Go(func() error {
			if err := service.Start(gctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				return err
			}
			return nil
		})
	}

	<-gctx.Done()

	// Services are shut down with a fresh context, the run context is done
	var errs []error
	shutdownCtx := context.WithoutCancel(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", services[i])
			errs = append(errs, err)
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
