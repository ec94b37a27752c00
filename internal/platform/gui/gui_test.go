package gui

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func keys(down ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(down))
	for _, k := range down {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        []core.Action
		notWant     []core.Action
	}{
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, nil, []core.Action{core.ActionLeft}, []core.Action{core.ActionRight}},
		{"d runs right", []ebiten.Key{ebiten.KeyD}, nil, []core.Action{core.ActionRight}, []core.Action{core.ActionLeft}},
		{"space held jumps", []ebiten.Key{ebiten.KeySpace}, nil, []core.Action{core.ActionJump}, nil},
		{"w jumps", []ebiten.Key{ebiten.KeyW}, nil, []core.Action{core.ActionJump}, nil},
		{"enter held is not confirm", []ebiten.Key{ebiten.KeyEnter}, nil, nil, []core.Action{core.ActionConfirm}},
		{"enter pressed", nil, []ebiten.Key{ebiten.KeyEnter}, []core.Action{core.ActionConfirm}, nil},
		{"m toggles music", nil, []ebiten.Key{ebiten.KeyM}, []core.Action{core.ActionToggleMusic}, nil},
		{"e toggles effects", nil, []ebiten.Key{ebiten.KeyE}, []core.Action{core.ActionToggleEffects}, nil},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}, nil},
		{"nothing", nil, nil, nil, []core.Action{core.ActionLeft, core.ActionJump, core.ActionQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := readInput(keyState{pressed: keys(tt.pressed...), justPressed: keys(tt.justPressed...)})
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
			for _, a := range tt.notWant {
				if in.Has(a) {
					t.Errorf("unexpected %v", a)
				}
			}
		})
	}
}

func TestPaletteCoversSky(t *testing.T) {
	tests := []struct {
		c       core.Color
		r, g, b uint8
	}{
		{core.ColorSkyLight, 135, 206, 235},
		{core.ColorSky, 100, 149, 237},
		{core.ColorSkyDeep, 42, 170, 138},
		{core.ColorSun, 255, 255, 190},
		{core.ColorBlack, 0, 0, 0},
	}
	for _, tt := range tests {
		got := rgba(tt.c)
		if got.R != tt.r || got.G != tt.g || got.B != tt.b || got.A != 255 {
			t.Errorf("rgba(%d) = %v", tt.c, got)
		}
	}
	if got := rgba(core.Color(200)); got != palette[core.ColorDefault] {
		t.Errorf("unknown colour = %v, want default", got)
	}
}

func TestCoinWidthShrinks(t *testing.T) {
	prev := 2.0
	for frame := 0; frame < 3; frame++ {
		w := coinWidth(frame)
		if w <= 0 || w >= prev {
			t.Errorf("frame %d width %v should be positive and below %v", frame, w, prev)
		}
		prev = w
	}
}

func TestStepClampsStalls(t *testing.T) {
	s := platformer.NewSession(config.Default(), core.RuntimeConfig{TickRate: 60, Seed: 1}, nil, nil)
	g := &Game{session: s}
	now := time.Now()

	if dt := g.step(now); dt != 1.0/60 {
		t.Errorf("first step = %v, want one frame", dt)
	}
	if dt := g.step(now.Add(2 * time.Second)); dt != maxStep {
		t.Errorf("stalled step = %v, want %v", dt, maxStep)
	}
	if dt := g.step(now.Add(time.Second)); dt != 0 {
		t.Errorf("clock going backwards = %v, want 0", dt)
	}
}

func TestLayoutIsLogicalSize(t *testing.T) {
	w, h := (&Game{}).Layout(1920, 1080)
	if w != platformer.Width || h != platformer.Height {
		t.Errorf("layout = %dx%d", w, h)
	}
}

func TestWindowRegistered(t *testing.T) {
	f, err := registry.Create("window")
	if err != nil {
		t.Fatal(err)
	}
	if f.ID() != "window" {
		t.Errorf("ID = %q", f.ID())
	}
}
