package settings

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.AllowInventory || d.ItemSaver {
		t.Errorf("policies must default to off: %+v", d)
	}
	if d.RightClickSpeed != 4 {
		t.Errorf("right_click_speed = %d", d.RightClickSpeed)
	}
	if !slices.Equal(d.AcceptableThrowawayItems, []string{"throwaway"}) {
		t.Errorf("throwaway tags = %v", d.AcceptableThrowawayItems)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Settings
		wantErr string
	}{
		{
			name: "empty document keeps defaults",
			doc:  "",
			want: Defaults(),
		},
		{
			name: "overlay",
			doc:  "allow_inventory: true\nright_click_speed: 2\n",
			want: Settings{AllowInventory: true, RightClickSpeed: 2, AcceptableThrowawayItems: []string{"throwaway"}},
		},
		{
			name: "tags are trimmed and deduped",
			doc:  "acceptable_throwaway_items: [' dirt', dirt, cobble]\n",
			want: Settings{RightClickSpeed: 4, AcceptableThrowawayItems: []string{"dirt", "cobble"}},
		},
		{
			name:    "unknown key",
			doc:     "allow_inventroy: true\n",
			wantErr: "allow_inventroy",
		},
		{
			name:    "negative speed",
			doc:     "right_click_speed: -1\n",
			wantErr: "minimum",
		},
		{
			name:    "wrong type",
			doc:     "item_saver: maybe\n",
			wantErr: "item_saver",
		},
		{
			name:    "broken yaml",
			doc:     "allow_inventory: [\n",
			wantErr: "yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.doc))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got.AllowInventory != tt.want.AllowInventory || got.ItemSaver != tt.want.ItemSaver ||
				got.RightClickSpeed != tt.want.RightClickSpeed ||
				!slices.Equal(got.AcceptableThrowawayItems, tt.want.AcceptableThrowawayItems) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadWrapsFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte("right_click_speed: fast\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.HasPrefix(err.Error(), "agent.yaml: ") {
		t.Fatalf("expected error prefixed with the file name, got %v", err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.HasPrefix(err.Error(), "missing.yaml: ") {
		t.Fatalf("expected the missing file name in the error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the not-exist cause to survive wrapping, got %v", err)
	}
}

func TestStoreCopiesTags(t *testing.T) {
	st := NewStore(Defaults())
	tags := st.ThrowawayTags()
	tags[0] = "mutated"
	if st.ThrowawayTags()[0] != "throwaway" {
		t.Errorf("store leaked its tag slice")
	}
	st.Set(Settings{RightClickSpeed: -3})
	if st.RightClickSpeed() != 0 {
		t.Errorf("speed not clamped: %d", st.RightClickSpeed())
	}
	if st.Version() != 1 {
		t.Errorf("version = %d", st.Version())
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte("allow_inventory: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := NewStore(Defaults())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := Watch(ctx, path, st, nil); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	replaceFile(t, path, "allow_inventory: true\nright_click_speed: 9\n")
	deadline := time.Now().Add(5 * time.Second)
	for !st.AllowInventory() {
		if time.Now().After(deadline) {
			t.Fatalf("settings were not reloaded")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if st.RightClickSpeed() != 9 {
		t.Errorf("right_click_speed = %d", st.RightClickSpeed())
	}

	// An invalid edit keeps the last good settings.
	before := st.Version()
	replaceFile(t, path, "right_click_speed: -5\n")
	time.Sleep(200 * time.Millisecond)
	if st.Version() != before || !st.AllowInventory() {
		t.Errorf("invalid reload replaced the settings")
	}
}

// replaceFile swaps the file content in one rename, the way editors save.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := filepath.Join(t.TempDir(), "next.yaml")
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}
