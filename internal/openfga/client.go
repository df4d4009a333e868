// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) setDependencyAvailability(ok bool) {
	v := 0.0
	if ok {
		v = 1.0
	}
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, v)
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		keys := make([]client.ClientContextualTupleKey, 0, len(contextualTuples))
		for _, t := range contextualTuples {
			keys = append(keys, t.ToOpenFGATupleKey())
		}
		body.ContextualTuples = keys
	}

	r, err := c.c.Check(ctx).Body(body).Execute()
	c.setDependencyAvailability(err == nil)
	if err != nil {
		c.logger.Errorf("issues performing check operation: %s", err)
		return false, err
	}

	return r.GetAllowed(), nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	authModel, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	model := authModel.GetAuthorizationModel()

	return &model, nil
}

// CompareModel reports whether the store's current model has the same type definitions as model.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if current.SchemaVersion != model.SchemaVersion {
		c.logger.Error("invalid authorization model schema version")
		return false, nil
	}

	left, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, fmt.Errorf("failed to encode current model: %w", err)
	}

	right, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, fmt.Errorf("failed to encode expected model: %w", err)
	}

	return string(left) == string(right), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).Body(client.ClientWriteTuplesBody{
		client.ClientTupleKey{User: user, Relation: relation, Object: object},
	}).Execute()
	if err != nil {
		c.logger.Errorf("issues performing write operation: %s", err)
		return err
	}

	return nil
}

func (c *Client) CreateStore(ctx context.Context, storeName string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	store, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: storeName}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store %s: %w", storeName, err)
	}

	return store.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	if err := c.c.SetStoreId(storeID); err != nil {
		c.logger.Errorf("failed to set store id: %s", err)
	}
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	data, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write authorization model: %w", err)
	}

	return data.GetAuthorizationModelId(), nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               cfg.ApiURL(),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
		HTTPClient:           &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	sdk, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		c.logger.Fatalf("issues setting up openfga client: %s", err)
	}

	c.c = sdk

	return c
}
