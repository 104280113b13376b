package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/errors"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if got := store.Get(KeyToken); got != "" {
		t.Errorf("Get on empty store = %q, want empty", got)
	}

	if err := store.Set(KeyToken, "tok-abc"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := store.Get(KeyToken); got != "tok-abc" {
		t.Errorf("Get = %q, want tok-abc", got)
	}

	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := store.Get(KeyToken); got != "" {
		t.Errorf("Get after delete = %q, want empty", got)
	}
}

func TestStoreDeleteAbsentKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Delete("never_set"); err != nil {
		t.Errorf("deleting an absent key should not error, got: %v", err)
	}
}

func TestStoreJSON(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	identity := api.Identity{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	if err := store.SetJSON(KeyUser, identity); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	var got api.Identity
	if err := store.GetJSON(KeyUser, &got); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if got.ID != "u1" || got.Email != "ana@example.com" {
		t.Errorf("GetJSON = %+v, want persisted identity", got)
	}
}

func TestStoreJSONMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	var got api.Identity
	err = store.GetJSON(KeyUser, &got)
	if !errors.Is(err, errors.ErrCredentialsNotFound) {
		t.Errorf("GetJSON on missing key = %v, want ErrCredentialsNotFound", err)
	}
}

func TestStoreFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Set(KeyToken, "secret"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, KeyToken+".json"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file permissions = %o, want 0600", perm)
	}
}

func TestStoreScopesAreIndependent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Set(KeyToken, "user-tok"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(KeyAdminToken, "admin-tok"); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete(KeyAdminToken); err != nil {
		t.Fatal(err)
	}

	if got := store.UserToken(); got != "user-tok" {
		t.Errorf("UserToken after admin delete = %q, want user-tok", got)
	}
	if got := store.AdminToken(); got != "" {
		t.Errorf("AdminToken after delete = %q, want empty", got)
	}
}
