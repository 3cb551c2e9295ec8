// Package settings holds the tunables the inventory and interaction logic read every tick.
package settings

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRightClickSpeed = 4
	DefaultThrowawayTag    = "throwaway"
)

type Settings struct {
	// AllowInventory lets the agent reorganize its hotbar from the backing store.
	AllowInventory bool `yaml:"allow_inventory" json:"allow_inventory"`
	// ItemSaver keeps nearly broken tools out of use.
	ItemSaver bool `yaml:"item_saver" json:"item_saver"`
	// RightClickSpeed is the number of ticks between two right clicks.
	RightClickSpeed          int      `yaml:"right_click_speed" json:"right_click_speed"`
	AcceptableThrowawayItems []string `yaml:"acceptable_throwaway_items" json:"acceptable_throwaway_items"`
}

func Defaults() Settings {
	return Settings{
		RightClickSpeed:          DefaultRightClickSpeed,
		AcceptableThrowawayItems: []string{DefaultThrowawayTag},
	}
}

// Normalize trims and dedupes the throwaway tags and clamps the click speed.
func (s Settings) Normalize() Settings {
	s.RightClickSpeed = max(s.RightClickSpeed, 0)
	tags := make([]string, 0, len(s.AcceptableThrowawayItems))
	for _, t := range s.AcceptableThrowawayItems {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(tags, t) {
			continue
		}
		tags = append(tags, t)
	}
	s.AcceptableThrowawayItems = tags
	return s
}

//go:embed settings.schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("settings.schema.json", schemaSource)

// Parse reads a YAML settings document on top of the defaults.
func Parse(data []byte) (Settings, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Settings{}, err
	}
	if doc != nil {
		if err := validate(doc); err != nil {
			return Settings{}, err
		}
	}
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s.Normalize(), nil
}

// validate checks the document against the schema in its JSON form.
func validate(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return schema.Validate(v)
}

// Load reads the settings file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Store is the shared, read-mostly view of the current settings.
type Store struct {
	mu      sync.RWMutex
	current Settings
	version uint64
}

func NewStore(s Settings) *Store {
	return &Store{current: s.Normalize()}
}

func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s := st.current
	s.AcceptableThrowawayItems = slices.Clone(s.AcceptableThrowawayItems)
	return s
}

func (st *Store) Set(s Settings) {
	st.mu.Lock()
	st.current = s.Normalize()
	st.version++
	st.mu.Unlock()
}

// Version counts the Set calls so far.
func (st *Store) Version() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.version
}

func (st *Store) AllowInventory() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current.AllowInventory
}

func (st *Store) ItemSaver() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current.ItemSaver
}

func (st *Store) RightClickSpeed() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current.RightClickSpeed
}

func (st *Store) ThrowawayTags() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return slices.Clone(st.current.AcceptableThrowawayItems)
}
