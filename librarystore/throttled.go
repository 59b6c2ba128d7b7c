package librarystore

import (
	"context"

	"github.com/hupe1980/diffindex/resource"
)

// ThrottledStore wraps a Store and charges transfers against a shared
// resource controller's IO budget, so library fetches don't starve an
// indexation run sharing the host.
type ThrottledStore struct {
	inner Store
	ctrl  *resource.Controller
}

// NewThrottledStore wraps a store with IO throttling.
func NewThrottledStore(inner Store, ctrl *resource.Controller) *ThrottledStore {
	return &ThrottledStore{inner: inner, ctrl: ctrl}
}

// Fetch reads the full object, charging its size to the IO budget.
func (s *ThrottledStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.AcquireIO(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Put writes an object, charging its size to the IO budget first.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.ctrl.AcquireIO(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// List passes through to the inner store.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Delete passes through to the inner store.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}
