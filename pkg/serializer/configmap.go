// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bmicalc/bmicalc/pkg/defaults"
	"github.com/bmicalc/bmicalc/pkg/header"
	"github.com/bmicalc/bmicalc/pkg/k8s/client"
	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	configMapDataPrefix   = "bmi"
	configMapFieldManager = "bmicalc"
)

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithKubeClient sets the client used to apply the ConfigMap. Without it
// the shared client from client.GetKubeClient is used.
func WithKubeClient(c client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = c
	}
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize applies a ConfigMap holding:
//   - data.bmi.{json|yaml|txt}: the serialized value
//   - data.format: the format used
//   - data.timestamp: the value's header timestamp, or now
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	kc := w.client
	if kc == nil {
		var err error
		kc, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	content, err := marshal(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	kind, version, timestamp := headerInfo(v)

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "bmicalc",
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			dataKey(w.format): string(content),
			"format":          string(w.format),
			"timestamp":       timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	// Server-side apply is an atomic create-or-update.
	_, err = kc.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, configMap, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func dataKey(format Format) string {
	ext := string(format)
	if format == FormatTable {
		ext = "txt"
	}
	return configMapDataPrefix + "." + ext
}

// headerInfo reads kind, version and timestamp from values carrying a header.
func headerInfo(v any) (kind, version, timestamp string) {
	kind, version = "unknown", "unknown"
	timestamp = time.Now().UTC().Format(time.RFC3339)

	h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	})
	if !ok {
		return kind, version, timestamp
	}
	if k := h.GetKind(); k != "" {
		kind = k.String()
	}
	md := h.GetMetadata()
	if ver, exists := md["version"]; exists && ver != "" {
		version = ver
	}
	if ts, exists := md["timestamp"]; exists && ts != "" {
		timestamp = ts
	}
	return kind, version, timestamp
}

// fromConfigMap reads bmi.yaml (or bmi.json) from a ConfigMap into T.
func fromConfigMap[T any](namespace, name string, kc client.Interface) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.ConfigMapWriteTimeout)
	defer cancel()

	if kc == nil {
		var err error
		kc, _, err = client.GetKubeClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	cm, err := kc.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	// YAML is a superset of JSON, so one decoder covers both keys.
	for _, key := range []string{dataKey(FormatYAML), dataKey(FormatJSON)} {
		content, ok := cm.Data[key]
		if !ok {
			continue
		}
		var v T
		if err := yaml.Unmarshal([]byte(content), &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s from ConfigMap %s/%s: %w", key, namespace, name, err)
		}
		return &v, nil
	}
	return nil, fmt.Errorf("ConfigMap %s/%s has no %s or %s data", namespace, name,
		dataKey(FormatYAML), dataKey(FormatJSON))
}

// ParseConfigMapURI splits a ConfigMap URI of the form cm://namespace/name.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
