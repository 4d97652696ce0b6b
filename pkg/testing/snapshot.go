package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
)

// UpdateSnapshotsEnv is the environment variable that makes MatchesFile
// rewrite golden files instead of comparing.
const UpdateSnapshotsEnv = "CARDSTACK_UPDATE_SNAPSHOTS"

// Snapshot captures the stack's index state, the controller phase and the
// presentation of every card.
type Snapshot struct {
	CurrentIndex int        `json:"currentIndex"`
	Phase        string     `json:"phase"`
	Threshold    float64    `json:"threshold"`
	Cards        []CardNode `json:"cards"`
	Events       []string   `json:"events,omitempty"`
}

// CardNode is one card in a snapshot. Transform fields are rounded to two
// decimals so golden files survive float noise.
type CardNode struct {
	Index    int        `json:"index"`
	Item     string     `json:"item"`
	Top      bool       `json:"top,omitempty"`
	Next     bool       `json:"next,omitempty"`
	Visible  bool       `json:"visible"`
	Offset   [2]float64 `json:"offset"`
	Rotation float64    `json:"rotation"`
	Scale    float64    `json:"scale"`
}

// CaptureSnapshot captures the current stack state and the callbacks
// recorded so far.
func (t *StackTester[T]) CaptureSnapshot() *Snapshot {
	state := t.controller.State()
	snap := &Snapshot{
		CurrentIndex: t.stack.CurrentIndex(),
		Phase:        state.Phase.String(),
		Threshold:    round2(state.Threshold),
		Events:       t.recorder.Events(),
	}
	for _, card := range t.stack.Cards() {
		snap.Cards = append(snap.Cards, CardNode{
			Index:    card.Index,
			Item:     fmt.Sprint(card.Item),
			Top:      card.IsTop,
			Next:     card.IsNext,
			Visible:  card.Visible,
			Offset:   [2]float64{round2(card.Offset.X), round2(card.Offset.Y)},
			Rotation: round2(card.Rotation),
			Scale:    round2(card.Scale),
		})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// CARDSTACK_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff from other (expected) to this snapshot
// (actual). Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(b)),
		B:        difflib.SplitLines(string(a)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return diff
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// Normalizes -0 so golden files do not flip sign on zero.
		return 0
	}
	return r
}
