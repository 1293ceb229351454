package store

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
)

// Remote is the server side of a collection. D is the create body, P the
// update body.
type Remote[T Entity, D any, P any] interface {
	List(ctx context.Context, filter string) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

// Collection keeps one list of server records in sync with the service.
//
// Only FetchAll drives Status/LastError. Create, Update and Remove return
// their failures to the caller and touch Items only on success. Every
// settlement, failed or not, commits exactly once.
type Collection[T Entity, D any, P any] struct {
	name   string
	hub    *hub
	remote Remote[T, D, P]
	slice  func(*Snapshot) *CollectionState[T]
}

func newCollection[T Entity, D any, P any](name string, h *hub, remote Remote[T, D, P], slice func(*Snapshot) *CollectionState[T]) *Collection[T, D, P] {
	return &Collection[T, D, P]{name: name, hub: h, remote: remote, slice: slice}
}

// State returns the current slice of this collection.
func (c *Collection[T, D, P]) State() CollectionState[T] {
	st := c.hub.snapshot()
	return *c.slice(&st)
}

// FetchAll replaces Items with the server's list, in server order. On
// failure Items are kept and the message lands in LastError.
func (c *Collection[T, D, P]) FetchAll(ctx context.Context, filter string) ([]T, error) {
	c.hub.commit(func(st *Snapshot) {
		s := c.slice(st)
		s.Status = CollectionLoading
		s.LastError = ""
	})

	items, err := c.remote.List(ctx, filter)
	if err != nil {
		msg := api.Message(err, "failed to fetch "+c.name)
		c.hub.commit(func(st *Snapshot) {
			s := c.slice(st)
			s.Status = CollectionError
			s.LastError = msg
		})
		return nil, err
	}

	if items == nil {
		items = []T{}
	}
	c.hub.commit(func(st *Snapshot) {
		s := c.slice(st)
		s.Items = items
		s.Status = CollectionIdle
		s.LastError = ""
	})
	return items, nil
}

// Create prepends the server's canonical record.
func (c *Collection[T, D, P]) Create(ctx context.Context, draft D) (T, error) {
	item, err := c.remote.Create(ctx, draft)
	if err != nil {
		c.settled()
		var zero T
		return zero, err
	}

	c.hub.commit(func(st *Snapshot) {
		s := c.slice(st)
		items := make([]T, 0, len(s.Items)+1)
		items = append(items, item)
		s.Items = append(items, s.Items...)
	})
	return item, nil
}

// Update replaces, in place, the item whose key equals the returned
// record's key. A record no longer listed is not re-added.
func (c *Collection[T, D, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	item, err := c.remote.Update(ctx, id, patch)
	if err != nil {
		c.settled()
		var zero T
		return zero, err
	}

	c.hub.commit(func(st *Snapshot) {
		s := c.slice(st)
		items := make([]T, len(s.Items))
		for i, it := range s.Items {
			if it.Key() == item.Key() {
				it = item
			}
			items[i] = it
		}
		s.Items = items
	})
	return item, nil
}

// Remove drops the item with key id once the server confirms the delete.
func (c *Collection[T, D, P]) Remove(ctx context.Context, id string) error {
	if err := c.remote.Delete(ctx, id); err != nil {
		c.settled()
		return err
	}

	c.hub.commit(func(st *Snapshot) {
		s := c.slice(st)
		items := make([]T, 0, len(s.Items))
		for _, it := range s.Items {
			if it.Key() != id {
				items = append(items, it)
			}
		}
		s.Items = items
	})
	return nil
}

// settled publishes a failed mutation: the tree is unchanged but listeners
// still observe the settlement.
func (c *Collection[T, D, P]) settled() {
	c.hub.commit(func(*Snapshot) {})
}
