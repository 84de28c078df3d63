package workers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/rhoconnect-go/client"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

// callbackWorker tells RhoConnect where to authenticate users and where to
// query each resource.
type callbackWorker struct {
	registrar CallbackRegistrar
	baseURL   string
	resources []string

	logger *logger.Logger
}

// NewCallbackWorker builds a [Worker] registering baseURL+"/authenticate" as
// the auth callback and baseURL+"/query" as the query callback of every
// resource.
func NewCallbackWorker(registrar CallbackRegistrar, baseURL string, resources []string, logger *logger.Logger) Worker {
	return &callbackWorker{
		registrar: registrar,
		baseURL:   strings.TrimRight(baseURL, "/"),
		resources: resources,
		logger:    logger,
	}
}

func (w *callbackWorker) Run(ctx context.Context) error {
	var errs []error

	authURL := w.baseURL + "/authenticate"
	if err := checked(w.registrar.SetAuthCallback(ctx, authURL)); err != nil {
		errs = append(errs, fmt.Errorf("error registering auth callback: %w", err))
	} else {
		w.logger.Info().Str("url", authURL).Msg("auth callback registered")
	}

	queryURL := w.baseURL + "/query"
	for _, name := range w.resources {
		if err := checked(w.registrar.SetQueryCallback(ctx, name, queryURL)); err != nil {
			errs = append(errs, fmt.Errorf("error registering query callback for %s: %w", name, err))
			continue
		}
		w.logger.Info().Str("resource", name).Str("url", queryURL).Msg("query callback registered")
	}

	return errors.Join(errs...)
}

func checked(resp *client.Response, err error) error {
	if err != nil {
		return err
	}
	return client.CheckResponse(resp)
}
