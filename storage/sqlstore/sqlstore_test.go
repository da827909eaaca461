package sqlstore

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/confio/mask/errors"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_GetSet(t *testing.T) {
	s, _ := openTemp(t)

	if err := s.Set([]byte("config"), []byte(`{"owner":"abc"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get([]byte("config"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"owner":"abc"}`)) {
		t.Errorf("Get = %s", got)
	}
}

func TestStore_GetAbsent(t *testing.T) {
	s, _ := openTemp(t)

	_, err := s.Get([]byte("missing"))
	if !errors.IsNotFound(err) {
		t.Errorf("got %v, want not_found kind", err)
	}
}

func TestStore_Overwrite(t *testing.T) {
	s, _ := openTemp(t)

	s.Set([]byte("k"), []byte("one"))
	if err := s.Set([]byte("k"), []byte("two")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get([]byte("k"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Get = %s, want two", got)
	}
}

func TestStore_Remove(t *testing.T) {
	s, _ := openTemp(t)

	s.Set([]byte("k"), []byte("v"))
	if err := s.Remove([]byte("k")); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get([]byte("k")); !errors.IsNotFound(err) {
		t.Errorf("Get after Remove = %v, want not_found", err)
	}

	if err := s.Remove([]byte("k")); err != nil {
		t.Errorf("Remove absent = %v, want nil", err)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set([]byte("config"), []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get([]byte("config"))
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get = %s, want persisted", got)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		s.Close()
	}
}
