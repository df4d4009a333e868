// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/webhook-service/internal/http/types"
	"github.com/canonical/webhook-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.status)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	st := a.service.Check(r.Context())

	code := http.StatusOK
	if !st.Healthy {
		code = http.StatusServiceUnavailable
	}

	if err := httptypes.WriteJSON(w, code, "status", st); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
