package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

type failingBackend struct{}

func (failingBackend) GetValue(string, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failingBackend) SetValue(string, string, string) error {
	return errors.New("disk on fire")
}

func TestNamespacePrefixesKeys(t *testing.T) {
	mem := NewMemory()
	ns := NewNamespace(mem, "alice", nil)

	ns.Set("high", "42")

	if _, ok, _ := mem.GetValue("alice", "high"); ok {
		t.Error("raw key should not be written")
	}
	v, ok, _ := mem.GetValue("alice", KeyPrefix+"high")
	if !ok || v != "42" {
		t.Errorf("prefixed key = (%q, %v), expected 42", v, ok)
	}
	if got, ok := ns.Get("high"); !ok || got != "42" {
		t.Errorf("Get() = (%q, %v)", got, ok)
	}
}

func TestNamespaceDefaultProfile(t *testing.T) {
	if ns := NewNamespace(NewMemory(), "", nil); ns.Profile() != DefaultProfile {
		t.Errorf("Profile() = %q, expected %q", ns.Profile(), DefaultProfile)
	}
}

func TestNamespaceSwallowsFailures(t *testing.T) {
	ns := NewNamespace(failingBackend{}, "p", nil)

	ns.Set("high", "1") // must not panic
	if v, ok := ns.Get("high"); ok || v != "" {
		t.Errorf("failed read should be absent, got (%q, %v)", v, ok)
	}
}

func TestNamespaceOverSQLite(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	a := NewNamespace(store, "a", nil)
	b := NewNamespace(store, "b", nil)
	a.Set("achievements", `{"firstSteps":true}`)

	if v, ok := a.Get("achievements"); !ok || v != `{"firstSteps":true}` {
		t.Errorf("a.Get() = (%q, %v)", v, ok)
	}
	if _, ok := b.Get("achievements"); ok {
		t.Error("profile b should not see profile a values")
	}
}
