// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestStoreModelIDs(t *testing.T) {
	testCases := []struct {
		name     string
		resource string
		existing *corev1.ConfigMap
		wantErr  bool
		wantData map[string]string
	}{
		{
			name:     "creates a missing configmap",
			resource: "tenantflow/fga",
			wantData: map[string]string{storeIDKey: "store", modelIDKey: "model"},
		},
		{
			name:     "updates an existing configmap and keeps other keys",
			resource: "tenantflow/fga",
			existing: &corev1.ConfigMap{
				ObjectMeta: metav1.ObjectMeta{Name: "fga", Namespace: "tenantflow"},
				Data:       map[string]string{"OTHER": "x", storeIDKey: "old"},
			},
			wantData: map[string]string{"OTHER": "x", storeIDKey: "store", modelIDKey: "model"},
		},
		{
			name:     "rejects a malformed resource",
			resource: "fga",
			wantErr:  true,
		},
		{
			name:     "rejects a nested resource",
			resource: "a/b/c",
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clientset := fake.NewSimpleClientset()
			if tc.existing != nil {
				clientset = fake.NewSimpleClientset(tc.existing)
			}

			err := storeModelIDs(context.Background(), clientset, tc.resource, "store", "model")
			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}

			if tc.wantErr {
				return
			}

			cm, err := clientset.CoreV1().ConfigMaps("tenantflow").Get(context.Background(), "fga", metav1.GetOptions{})
			if err != nil {
				t.Fatalf("failed to get configmap: %v", err)
			}

			if len(cm.Data) != len(tc.wantData) {
				t.Fatalf("expected data %v, got %v", tc.wantData, cm.Data)
			}

			for k, v := range tc.wantData {
				if cm.Data[k] != v {
					t.Errorf("expected %s=%s, got %s", k, v, cm.Data[k])
				}
			}
		})
	}
}
