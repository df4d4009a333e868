// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/webhook-service/internal/authorization"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/openfga"
	"github.com/canonical/webhook-service/internal/tracing"
)

const StoreName = "webhook-service"

// keys read by serve through envconfig
const (
	configMapStoreKey = "OPENFGA_STORE_ID"
	configMapModelKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaModelResult struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
	Created bool   `json:"store_created"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the openfga model for workspace roles",
	Long:  `Writes the workspace role model to openfga, creating the store when none is given, and optionally publishes the ids to a configmap`,
	Run: func(cmd *cobra.Command, args []string) {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMap, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfig, _ := cmd.Flags().GetString("kubeconfig")

		result, err := createModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		if configMap != "" {
			if err := publishModel(cmd.Context(), kubeconfig, configMap, result); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to update configmap: %w", err))
				os.Exit(1)
			}
		}

		if format == "json" {
			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to encode output: %w", err))
				os.Exit(1)
			}
			return
		}

		out := cmd.OutOrStdout()
		if result.Created {
			fmt.Fprintf(out, "Created store: %s\n", result.StoreID)
		}
		fmt.Fprintf(out, "Created model: %s\n", result.ModelID)
		if configMap != "" {
			fmt.Fprintf(out, "ConfigMap %s updated\n", configMap)
		}
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap to store the FGA Store ID and Model ID in, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func createModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (*fgaModelResult, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()

	fgaClient := openfga.NewClient(openfga.NewConfig(u.Scheme, u.Host, storeID, apiToken, "", verbose, tracer, monitoring.NewNoopMonitor(StoreName, logger), logger))

	result := &fgaModelResult{StoreID: storeID}

	if storeID == "" {
		if result.StoreID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		result.Created = true
		fgaClient.SetStoreID(ctx, result.StoreID)
	}

	model := authorization.NewAuthorizationModelProvider("v0").GetModel()

	result.ModelID, err = fgaClient.WriteModel(ctx, &client.ClientWriteAuthorizationModelRequest{
		TypeDefinitions: model.TypeDefinitions,
		SchemaVersion:   model.SchemaVersion,
		Conditions:      model.Conditions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return result, nil
}

func kubeConfig(path string) (*rest.Config, error) {
	if path != "" {
		return clientcmd.BuildConfigFromFlags("", path)
	}

	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}

	// running outside a cluster without --kubeconfig
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

// publishModel upserts the store and model ids into namespace/name.
func publishModel(ctx context.Context, kubeconfigPath, resource string, result *fgaModelResult) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource %q, expected namespace/name", resource)
	}

	cfg, err := kubeConfig(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return upsertModelConfigMap(ctx, clientset, namespace, name, result)
}

func upsertModelConfigMap(ctx context.Context, clientset kubernetes.Interface, namespace, name string, result *fgaModelResult) error {
	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       map[string]string{configMapStoreKey: result.StoreID, configMapModelKey: result.ModelID},
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s/%s: %w", namespace, name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s/%s: %w", namespace, name, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}
	cm.Data[configMapStoreKey] = result.StoreID
	cm.Data[configMapModelKey] = result.ModelID

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s/%s: %w", namespace, name, err)
	}

	return nil
}
