package registry

import (
	"testing"

	"github.com/vovakirdan/skybird/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{id: "test_b"} })
	Register("test_a", func() Game { return stubGame{id: "test_a"} })

	if !Exists("test_a") {
		t.Fatal("test_a should exist")
	}
	if Exists("test_missing") {
		t.Error("test_missing should not exist")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("ID = %q, want test_b", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("expected error for unknown mode")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_a" && info.Title != "Stub test_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })

	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "test_dup"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.id, func() Game { return stubGame{id: tt.id} })
		})
	}
}
