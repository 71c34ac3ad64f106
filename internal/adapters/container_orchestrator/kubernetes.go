package container_orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"patchverk/internal/core"
	"patchverk/internal/core/domain"
	"patchverk/internal/ports"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

var _ ports.ContainerOrchestrator = (*Kubernetes)(nil)

type patchFunc func(
	ctx context.Context,
	clientSet kubernetes.Interface,
	operation domain.PatchOperation,
	options metav1.PatchOptions,
) error

// patchFuncs binds every appliable kind to its typed client call.
var patchFuncs = map[domain.ResourceKind]patchFunc{
	domain.Configmap: func(ctx context.Context, clientSet kubernetes.Interface, op domain.PatchOperation, options metav1.PatchOptions) error {
		_, err := clientSet.CoreV1().ConfigMaps(op.Namespace).Patch(ctx, op.ResourceName, op.PatchType, op.Patch, options)
		return err
	},
	domain.Deployment: func(ctx context.Context, clientSet kubernetes.Interface, op domain.PatchOperation, options metav1.PatchOptions) error {
		_, err := clientSet.AppsV1().Deployments(op.Namespace).Patch(ctx, op.ResourceName, op.PatchType, op.Patch, options)
		return err
	},
	domain.Statefulset: func(ctx context.Context, clientSet kubernetes.Interface, op domain.PatchOperation, options metav1.PatchOptions) error {
		_, err := clientSet.AppsV1().StatefulSets(op.Namespace).Patch(ctx, op.ResourceName, op.PatchType, op.Patch, options)
		return err
	},
	domain.Daemonset: func(ctx context.Context, clientSet kubernetes.Interface, op domain.PatchOperation, options metav1.PatchOptions) error {
		_, err := clientSet.AppsV1().DaemonSets(op.Namespace).Patch(ctx, op.ResourceName, op.PatchType, op.Patch, options)
		return err
	},
}

// Kubernetes represents a client for interacting with Kubernetes
type Kubernetes struct {
	clientSet    kubernetes.Interface
	fieldManager string
	dryRun       bool
}

func ProvideKubernetes(configRepository core.ConfigRepository) (*Kubernetes, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	restConfig, err := buildRestConfig(config.Kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes config: %v", err)
	}

	clientSet, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %v", err)
	}

	return NewKubernetes(clientSet, config.FieldManager, config.DryRun), nil
}

func NewKubernetes(clientSet kubernetes.Interface, fieldManager string, dryRun bool) *Kubernetes {
	return &Kubernetes{
		clientSet:    clientSet,
		fieldManager: fieldManager,
		dryRun:       dryRun,
	}
}

// buildRestConfig uses the given kubeconfig, or the default loading rules (KUBECONFIG, ~/.kube/config) when empty.
func buildRestConfig(kubeconfig string) (*rest.Config, error) {
	if kubeconfig == "" {
		return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			clientcmd.NewDefaultClientConfigLoadingRules(),
			&clientcmd.ConfigOverrides{},
		).ClientConfig()
	}

	kubeconfig, err := expandHome(kubeconfig)
	if err != nil {
		return nil, err
	}
	return clientcmd.BuildConfigFromFlags("", kubeconfig)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ServerVersion returns the git version reported by the API server.
func (k *Kubernetes) ServerVersion(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := k.clientSet.Discovery().ServerVersion()
	if err != nil {
		return "", fmt.Errorf("failed to get server version: %w", err)
	}
	return info.GitVersion, nil
}

// PatchResource dispatches to the patch call registered for the operation's kind.
func (k *Kubernetes) PatchResource(ctx context.Context, operation domain.PatchOperation) error {
	patch, ok := patchFuncs[operation.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrUnsupportedKind, operation.Kind)
	}

	options := metav1.PatchOptions{FieldManager: k.fieldManager}
	if k.dryRun {
		options.DryRun = []string{metav1.DryRunAll}
	}

	if err := patch(ctx, k.clientSet, operation, options); err != nil {
		return fmt.Errorf("failed to patch %s: %w", operation.ID(), err)
	}
	return nil
}
