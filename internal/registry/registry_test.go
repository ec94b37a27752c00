package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (f *stubFrontend) ID() string    { return f.id }
func (f *stubFrontend) Title() string { return strings.ToUpper(f.id) }

func (f *stubFrontend) Run(*platformer.Session) error {
	f.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Frontend { return &stubFrontend{id: "test-b"} })
	Register("test-a", func() Frontend { return &stubFrontend{id: "test-a"} })

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered frontends not found")
	}
	if Exists("test-missing") {
		t.Error("unexpected frontend reported as registered")
	}

	fe, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fe.ID() != "test-a" {
		t.Errorf("created %q, want test-a", fe.ID())
	}

	// List is sorted by ID
	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title %q for %q", info.Title, info.ID)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test-a" || ids[1] != "test-b" {
		t.Errorf("List order = %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend"); err == nil {
		t.Error("expected error for unknown frontend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return &stubFrontend{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() Frontend { return &stubFrontend{id: "test-dup"} })
}
