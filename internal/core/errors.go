package core

import "errors"

var (
	// ErrMalformedDirective is returned for patch file paths that cannot be addressed.
	ErrMalformedDirective = errors.New("malformed patch directive")
	// ErrInvalidPayload is returned when a patch file cannot be bound to its kind's schema.
	ErrInvalidPayload = errors.New("invalid patch payload")
	// ErrUnknownSystem is returned when the requested system has no folder below the patch root.
	ErrUnknownSystem = errors.New("unknown system")
	// ErrClusterUnreachable is returned when the connectivity probe fails.
	ErrClusterUnreachable = errors.New("cluster unreachable")
	// ErrUnsupportedKind is returned by the cluster client for kinds without a patch call.
	ErrUnsupportedKind = errors.New("patching is not supported for kind")
)
