package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// KeyPrefix namespaces every profile key so the table can be shared.
const KeyPrefix = "shadowPaws2025_"

// Backend is a profile-scoped string store.
type Backend interface {
	GetValue(profile, key string) (string, bool, error)
	SetValue(profile, key, value string) error
}

// Namespace adapts a Backend to the engine's KV port for one profile.
// Read failures are reported as absent keys and write failures are
// logged and dropped, so storage problems never reach the frame loop.
type Namespace struct {
	backend Backend
	profile string
	logger  *log.Logger
}

// NewNamespace binds a backend to a profile. A nil logger discards warnings.
func NewNamespace(b Backend, profile string, logger *log.Logger) *Namespace {
	if profile == "" {
		profile = DefaultProfile
	}
	return &Namespace{backend: b, profile: profile, logger: logger}
}

// Profile returns the bound profile name.
func (n *Namespace) Profile() string {
	return n.profile
}

// Get returns the value stored under the prefixed key.
func (n *Namespace) Get(key string) (string, bool) {
	v, ok, err := n.backend.GetValue(n.profile, KeyPrefix+key)
	if err != nil {
		n.warn("storage read failed", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

// Set stores value under the prefixed key.
func (n *Namespace) Set(key, value string) {
	if err := n.backend.SetValue(n.profile, KeyPrefix+key, value); err != nil {
		n.warn("storage write failed", "key", key, "err", err)
	}
}

func (n *Namespace) warn(msg string, kv ...any) {
	if n.logger != nil {
		n.logger.Warn(msg, kv...)
	}
}

// Memory is an in-process Backend used by tests and when the database
// cannot be opened.
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]map[string]string)}
}

func (m *Memory) GetValue(profile, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[profile][key]
	return v, ok, nil
}

func (m *Memory) SetValue(profile, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.values[profile]
	if !ok {
		p = make(map[string]string)
		m.values[profile] = p
	}
	p[key] = value
	return nil
}

// NewMemoryKV returns a KV over a fresh in-memory backend.
func NewMemoryKV() *Namespace {
	return NewNamespace(NewMemory(), DefaultProfile, nil)
}
