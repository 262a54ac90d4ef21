package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/seasonviz/pkg/errors"
	"github.com/matzehuels/seasonviz/pkg/render"
)

func TestNewArtifact(t *testing.T) {
	a := NewArtifact("goal-time", render.FormatPNG, []byte("png"))
	if err := ValidateID(a.ID); err != nil {
		t.Errorf("ID %q: %v", a.ID, err)
	}
	if a.ContentType != "image/png" || a.Format != "png" || a.Size != 3 {
		t.Errorf("NewArtifact = %+v", a)
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{NewID(), false},
		{"", true},
		{"../etc/passwd", true},
		{"not-a-uuid", true},
	}
	for _, tt := range tests {
		err := ValidateID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateID(%q) code = %s", tt.id, errors.GetCode(err))
		}
	}
}

// exercise runs the same checks against any backend.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	old := &Artifact{Chart: "goal-type", Format: "svg", Data: []byte("<svg>old</svg>"),
		CreatedAt: time.Now().Add(-time.Hour).UTC()}
	if err := s.Put(ctx, old); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if old.ID == "" || old.Size != len(old.Data) {
		t.Errorf("Put did not fill ID and size: %+v", old)
	}

	fresh := NewArtifact("goal-time", render.FormatSVG, []byte("<svg>new</svg>"))
	fresh.Player = "Ana"
	if err := s.Put(ctx, fresh); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, fresh.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Data) != "<svg>new</svg>" || got.Player != "Ana" || got.Chart != "goal-time" {
		t.Errorf("Get = %+v", got)
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) < 2 || list[0].ID != fresh.ID {
		t.Fatalf("List should start with the newest artifact, got %d entries", len(list))
	}
	if list[0].Data != nil {
		t.Error("List should not return data")
	}
	if limited, _ := s.List(ctx, 1); len(limited) != 1 {
		t.Errorf("List(1) returned %d entries", len(limited))
	}

	if err := s.Delete(ctx, fresh.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, fresh.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get after Delete error = %v, want NOT_FOUND", err)
	}
	if err := s.Delete(ctx, fresh.ID); err != nil {
		t.Errorf("Delete(missing): %v", err)
	}
	if _, err := s.Get(ctx, "bad id"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Get(bad id) error = %v, want INVALID_INPUT", err)
	}
	_ = s.Delete(ctx, old.ID)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exercise(t, s)
}

func TestFileStorePutRejectsBadID(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	err = s.Put(context.Background(), &Artifact{ID: "../x", Data: []byte("x")})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Put error = %v, want INVALID_INPUT", err)
	}
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("SEASONVIZ_TEST_MONGO")
	if uri == "" {
		t.Skip("SEASONVIZ_TEST_MONGO not set")
	}
	s, err := NewMongoStore(context.Background(), MongoConfig{
		URI:        uri,
		Database:   "seasonviz_test",
		Collection: "artifacts_" + NewID()[:8],
	})
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer s.Close()
	exercise(t, s)
}
