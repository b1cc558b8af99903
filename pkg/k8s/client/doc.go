// Package client provides a cached Kubernetes client.
//
// The client is only needed when results are written to, or requests read
// from, a ConfigMap (cm://namespace/name):
//
//	kc, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// Configuration discovery order:
//  1. KUBECONFIG environment variable
//  2. ~/.kube/config
//  3. In-cluster service account
package client
