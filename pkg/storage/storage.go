// Package storage keeps rendered artifacts so they can be fetched again by
// ID, for example from the HTTP server's /artifacts endpoint.
//
// Two backends implement [Store]:
//   - [FileStore]: a directory of metadata and data files, for the CLI and
//     single-instance servers
//   - [MongoStore]: a MongoDB collection shared between server instances
//
// # Usage
//
//	store, err := storage.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	a := storage.NewArtifact("goal-scorers", render.FormatSVG, svg)
//	if err := store.Put(ctx, a); err != nil {
//	    return err
//	}
//	got, err := store.Get(ctx, a.ID)
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/render"
)

// Artifact is a rendered chart together with what it was rendered from.
type Artifact struct {
	ID          string    `json:"id" bson:"_id"`
	Chart       string    `json:"chart" bson:"chart"`
	Format      string    `json:"format" bson:"format"`
	ContentType string    `json:"content_type" bson:"content_type"`
	Player      string    `json:"player,omitempty" bson:"player,omitempty"`
	Month       int       `json:"month,omitempty" bson:"month,omitempty"`
	DatasetHash string    `json:"dataset_hash,omitempty" bson:"dataset_hash,omitempty"`
	Size        int       `json:"size" bson:"size"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`

	// Data is stored separately from the metadata and is nil in List results.
	Data []byte `json:"-" bson:"data,omitempty"`
}

// NewArtifact creates an artifact with a fresh ID.
func NewArtifact(chart string, f render.Format, data []byte) *Artifact {
	return &Artifact{
		ID:          NewID(),
		Chart:       chart,
		Format:      string(f),
		ContentType: f.ContentType(),
		Size:        len(data),
		CreatedAt:   time.Now().UTC(),
		Data:        data,
	}
}

// Store persists artifacts.
type Store interface {
	// Put stores a. An empty ID is replaced with a new one.
	Put(ctx context.Context, a *Artifact) error

	// Get returns the artifact with the given ID, data included.
	// It returns a NOT_FOUND error when no such artifact exists.
	Get(ctx context.Context, id string) (*Artifact, error)

	// List returns up to limit artifacts, newest first, without data.
	// A limit of 0 means no limit.
	List(ctx context.Context, limit int) ([]*Artifact, error)

	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, id string) error

	Close() error
}

// NewID returns a random artifact ID.
func NewID() string {
	return uuid.NewString()
}

// ValidateID checks that id is a well-formed artifact ID. IDs end up in
// file names, so anything else is rejected before touching a backend.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid artifact id %q", id)
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "artifact %s not found", id)
}

// prepare fills in the fields Put owns.
func prepare(a *Artifact) error {
	if a.ID == "" {
		a.ID = NewID()
	} else if err := ValidateID(a.ID); err != nil {
		return err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.Size = len(a.Data)
	return nil
}
