package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/session"
)

type stubMode struct {
	id string
}

func (m stubMode) ID() string                                    { return m.id }
func (m stubMode) Title() string                                 { return "Stub " + m.id }
func (m stubMode) Interactive() bool                             { return m.id == "zz-stub-b" }
func (m stubMode) Drive(ctx context.Context, _ *session.Session) { <-ctx.Done() }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Mode { return stubMode{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Mode { return stubMode{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Error("Exists(zz-stub-a) = false, expected true")
	}
	if Exists("zz-missing") {
		t.Error("Exists(zz-missing) = true, expected false")
	}

	m, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID() != "zz-stub-b" {
		t.Errorf("ID() = %q, expected %q", m.ID(), "zz-stub-b")
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create of an unknown mode should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz-stub-b" && (!info.Interactive || info.Title != "Stub zz-stub-b") {
			t.Errorf("List() info = %+v, expected interactive stub metadata", info)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Mode { return stubMode{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Mode { return stubMode{id: "zz-dup"} })
}
