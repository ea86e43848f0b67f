// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testutil provides shared fixtures for service, handler and
// integration tests.
package testutil

import (
	"context"
	"sync"

	"github.com/taibuivan/gallery/internal/core/artist"
	"github.com/taibuivan/gallery/internal/core/painting"
	"github.com/taibuivan/gallery/internal/platform/validate"
)

// MemoryStore is an in-process implementation of both [artist.Repository]
// and [painting.Repository]. It enforces the same uniqueness rules as the
// PostgreSQL schema. Setting Err makes every call fail with it.
type MemoryStore struct {
	mu        sync.Mutex
	artists   []*artist.Artist
	paintings []*painting.Painting
	nextID    int64

	Err error
}

var (
	_ artist.Repository   = (*MemoryStore)(nil)
	_ painting.Repository = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (store *MemoryStore) id() int64 {
	store.nextID++
	return store.nextID
}

// Paintings returns a snapshot of the stored paintings.
func (store *MemoryStore) Paintings() []painting.Painting {
	store.mu.Lock()
	defer store.mu.Unlock()

	out := make([]painting.Painting, len(store.paintings))
	for i, p := range store.paintings {
		out[i] = *p
	}
	return out
}

// Artists returns a snapshot of the stored artists.
func (store *MemoryStore) Artists() []artist.Artist {
	store.mu.Lock()
	defer store.mu.Unlock()

	out := make([]artist.Artist, len(store.artists))
	for i, a := range store.artists {
		out[i] = *a
	}
	return out
}

// # Artists

func (store *MemoryStore) ListArtists(_ context.Context) ([]*artist.Artist, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return nil, store.Err
	}

	out := make([]*artist.Artist, 0, len(store.artists))
	for _, a := range store.artists {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (store *MemoryStore) GetArtist(_ context.Context, id int64) (*artist.Artist, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return nil, store.Err
	}
	return store.artistByID(id)
}

func (store *MemoryStore) FindByName(_ context.Context, name string) (*artist.Artist, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return nil, store.Err
	}
	return store.artistByName(name)
}

func (store *MemoryStore) FindOrCreate(_ context.Context, a *artist.Artist) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return false, store.Err
	}
	return store.findOrCreate(a), nil
}

func (store *MemoryStore) findOrCreate(a *artist.Artist) bool {
	if existing, err := store.artistByName(a.Name); err == nil {
		*a = *existing
		return false
	}

	a.ID = store.id()
	clone := *a
	store.artists = append(store.artists, &clone)
	return true
}

func (store *MemoryStore) artistByID(id int64) (*artist.Artist, error) {
	for _, a := range store.artists {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, artist.ErrNotFound
}

func (store *MemoryStore) artistByName(name string) (*artist.Artist, error) {
	for _, a := range store.artists {
		if a.Name == name {
			clone := *a
			return &clone, nil
		}
	}
	return nil, artist.ErrNotFound
}

// # Paintings

func (store *MemoryStore) ListPaintings(_ context.Context) ([]*painting.Painting, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return nil, store.Err
	}

	out := make([]*painting.Painting, 0, len(store.paintings))
	for _, p := range store.paintings {
		out = append(out, store.withArtist(p))
	}
	return out, nil
}

func (store *MemoryStore) GetPainting(_ context.Context, id int64) (*painting.Painting, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return nil, store.Err
	}

	for _, p := range store.paintings {
		if p.ID == id {
			return store.withArtist(p), nil
		}
	}
	return nil, painting.ErrNotFound
}

func (store *MemoryStore) IncrementVotes(_ context.Context, id int64) (*painting.Painting, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return nil, store.Err
	}

	for _, p := range store.paintings {
		if p.ID == id {
			p.Votes++
			return store.withArtist(p), nil
		}
	}
	return nil, painting.ErrNotFound
}

func (store *MemoryStore) SlugExists(_ context.Context, slug string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return false, store.Err
	}
	return store.slugTaken(slug), nil
}

func (store *MemoryStore) CreatePainting(_ context.Context, p *painting.Painting, artistName *string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.Err != nil {
		return store.Err
	}

	if p.Slug != nil && store.slugTaken(*p.Slug) {
		return validate.FieldError(painting.FieldSlug, validate.MsgTaken)
	}

	switch {
	case artistName != nil:
		owner := &artist.Artist{Name: *artistName}
		store.findOrCreate(owner)
		p.ArtistID = &owner.ID
		p.Artist = owner
	case p.ArtistID != nil:
		owner, err := store.artistByID(*p.ArtistID)
		if err != nil {
			return validate.FieldError(painting.FieldArtistID, "must reference an existing artist")
		}
		p.Artist = owner
	}

	p.ID = store.id()
	clone := *p
	clone.Artist = nil
	store.paintings = append(store.paintings, &clone)
	return nil
}

func (store *MemoryStore) slugTaken(slug string) bool {
	for _, p := range store.paintings {
		if p.Slug != nil && *p.Slug == slug {
			return true
		}
	}
	return false
}

// withArtist copies p and embeds its artist the way the SQL join does.
func (store *MemoryStore) withArtist(p *painting.Painting) *painting.Painting {
	clone := *p
	if p.ArtistID != nil {
		if owner, err := store.artistByID(*p.ArtistID); err == nil {
			clone.Artist = owner
		}
	}
	return &clone
}
