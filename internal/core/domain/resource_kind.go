package domain

import (
	"fmt"
	"slices"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// ResourceKind is the tag used as the first directory level below a system's patch folder.
type ResourceKind string

const (
	Deployment  ResourceKind = "Deployment"
	Statefulset ResourceKind = "Statefulset"
	Daemonset   ResourceKind = "Daemonset"
	Configmap   ResourceKind = "Configmap"
	Secret      ResourceKind = "Secret"
	Ingress     ResourceKind = "Ingress"
)

type decodeFunc func(payload []byte) (runtime.Object, error)

// typedKinds maps every recognized kind to the API type its payload is bound to.
var typedKinds = map[ResourceKind]decodeFunc{
	Deployment:  decodeAs[appsv1.Deployment],
	Statefulset: decodeAs[appsv1.StatefulSet],
	Daemonset:   decodeAs[appsv1.DaemonSet],
	Configmap:   decodeAs[corev1.ConfigMap],
	Secret:      decodeAs[corev1.Secret],
	Ingress:     decodeAs[networkingv1.Ingress],
}

// appliableKinds is the order in which the applicator visits kinds.
// Secret and Ingress are recognized but have no patch call wired yet.
var appliableKinds = []ResourceKind{
	Configmap,
	Deployment,
	Statefulset,
	Daemonset,
}

// pointerObject constrains T so that *T is a runtime.Object.
type pointerObject[T any] interface {
	*T
	runtime.Object
}

func decodeAs[T any, PT pointerObject[T]](payload []byte) (runtime.Object, error) {
	obj := PT(new(T))
	if err := yaml.Unmarshal(payload, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// LookupKind returns the typed kind with the given name. Names are case sensitive.
func LookupKind(name string) (ResourceKind, bool) {
	kind := ResourceKind(name)
	_, ok := typedKinds[kind]
	return kind, ok
}

// AppliableKinds returns the kinds that can be patched, in application order.
func AppliableKinds() []ResourceKind {
	return slices.Clone(appliableKinds)
}

func (k ResourceKind) IsTyped() bool {
	_, ok := typedKinds[k]
	return ok
}

func (k ResourceKind) IsAppliable() bool {
	return k.IsTyped() && slices.Contains(appliableKinds, k)
}

// Decode binds a JSON or YAML payload to the API type registered for the kind.
func (k ResourceKind) Decode(payload []byte) (runtime.Object, error) {
	decode, ok := typedKinds[k]
	if !ok {
		return nil, fmt.Errorf("kind %s has no registered schema", k)
	}
	return decode(payload)
}

func (k ResourceKind) String() string {
	return string(k)
}
