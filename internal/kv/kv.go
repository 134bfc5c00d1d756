// Package kv provides the persistent key-value store behind spendit's budget state.
//
// Values are stored as JSON text. Reads fall back to a caller-supplied default and
// writes never fail loudly: the in-memory copy held by the caller stays the source of
// truth for the session and the store is only a mirror of it.
package kv

import (
	"bytes"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"
)

// Store is a string-keyed, string-valued persistent map.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Get reads key from s and decodes its JSON value. A missing key, an empty value,
// a read error or a decode error all yield def.
func Get[T any](s Store, key string, def T) T {
	raw, ok, err := s.Get(key)
	if err != nil {
		log.Printf("kv: reading %q: %v", key, err)
		return def
	}
	if !ok || raw == "" {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("kv: decoding %q: %v", key, err)
		return def
	}
	return v
}

// Set JSON-encodes v and writes it under key. Failures are logged and dropped.
func Set[T any](s Store, key string, v T) {
	raw, err := Encode(v)
	if err != nil {
		log.Printf("kv: encoding %q: %v", key, err)
		return
	}
	if err := s.Set(key, raw); err != nil {
		log.Printf("kv: writing %q: %v", key, err)
	}
}

// Encode renders v as compact JSON without HTML escaping or a trailing newline.
// U+2028 and U+2029 are written as raw characters like every other non-ASCII
// rune, so values decoded from the store encode back to the same bytes.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return unescapeSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes encoding/json always
// emits with the characters themselves. Other escape sequences are copied
// through whole so an escaped backslash followed by "u2028" is left alone.
func unescapeSeparators(b []byte) string {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return string(b)
	}

	var out strings.Builder
	out.Grow(len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out.WriteByte(b[i])
			continue
		}
		seq := b[i:min(i+6, len(b))]
		switch string(seq) {
		case `\u2028`:
			out.WriteRune('\u2028')
			i += 5
		case `\u2029`:
			out.WriteRune('\u2029')
			i += 5
		default:
			out.Write(b[i : i+2])
			i++
		}
	}
	return out.String()
}

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns a Memory store seeded with the given entries.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{data: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.data[k] = v
	}
	return m
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Keys returns all stored keys in lexical order.
func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
