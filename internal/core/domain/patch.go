package domain

import (
	"fmt"
	"slices"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
)

// DefaultVariant marks a template file that must never be applied.
const DefaultVariant = "default"

// PatchDirective is the decoded identity of one patch file, before its payload is bound to a schema.
type PatchDirective struct {
	Kind         ResourceKind
	Namespace    string
	ResourceName string
	Variant      string
	Path         string
	Payload      []byte
}

// PatchOperation is a directive bound to its kind's schema and wrapped as a patch document.
type PatchOperation struct {
	Kind         ResourceKind
	Namespace    string
	ResourceName string
	Variant      string
	Source       string
	Object       runtime.Object
	Patch        []byte
	PatchType    types.PatchType
}

// ID identifies the patched resource, e.g. "Deployment ns1/app1".
func (o PatchOperation) ID() string {
	return fmt.Sprintf("%s %s/%s", o.Kind, o.Namespace, o.ResourceName)
}

// PatchRegistry groups patch operations by kind. Insertion order is kept per kind.
type PatchRegistry struct {
	buckets map[ResourceKind][]PatchOperation
	count   int
}

func NewPatchRegistry() *PatchRegistry {
	return &PatchRegistry{
		buckets: make(map[ResourceKind][]PatchOperation),
	}
}

// Add appends an operation to the bucket of its kind.
func (r *PatchRegistry) Add(operation PatchOperation) error {
	if !operation.Kind.IsTyped() {
		return fmt.Errorf("cannot register patch for unknown kind %s", operation.Kind)
	}
	r.buckets[operation.Kind] = append(r.buckets[operation.Kind], operation)
	r.count++
	return nil
}

// Operations returns a copy of the bucket for the given kind.
func (r *PatchRegistry) Operations(kind ResourceKind) []PatchOperation {
	return slices.Clone(r.buckets[kind])
}

func (r *PatchRegistry) Len() int {
	return r.count
}

// ApplyReport summarizes an application run. It is informational only.
type ApplyReport struct {
	Applied int
	Failed  []string
}

func (r ApplyReport) Total() int {
	return r.Applied + len(r.Failed)
}
