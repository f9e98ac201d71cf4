package app

import (
	"testing"

	"jinogame/internal/input"
	"jinogame/internal/loop"
	"jinogame/internal/platform"
)

func TestSnapshotTogglesHUD(t *testing.T) {
	a := New(platform.DefaultWindowConfig(), loop.DefaultConfig(), 0)
	if !a.showHUD {
		t.Fatal("HUD should start visible")
	}
	press := input.Snapshot{WentDown: input.KeySet(0).With(input.KeyF1)}
	held := input.Snapshot{Held: input.KeySet(0).With(input.KeyF1)}

	a.applySnapshot(press)
	if a.showHUD {
		t.Fatal("F1 press did not hide the HUD")
	}
	a.applySnapshot(held)
	if a.showHUD {
		t.Fatal("held F1 toggled the HUD again")
	}
	a.applySnapshot(press)
	if !a.showHUD {
		t.Fatal("second F1 press did not show the HUD")
	}
}

func TestStatusExpires(t *testing.T) {
	a := New(platform.DefaultWindowConfig(), loop.DefaultConfig(), 0)
	a.setStatus("Frame copied")
	for i := 0; i < statusTicks; i++ {
		a.ageStatus()
	}
	if a.status == "" {
		t.Fatal("status cleared too early")
	}
	a.ageStatus()
	if a.status != "" {
		t.Fatalf("status not cleared: %q", a.status)
	}
}

func TestBumpHUDScaleClamps(t *testing.T) {
	a := New(platform.DefaultWindowConfig(), loop.DefaultConfig(), 0)
	a.bumpHUDScale(-1)
	if a.hudScaleIdx != 0 {
		t.Fatalf("scale index below range: %d", a.hudScaleIdx)
	}
	for i := 0; i < 10; i++ {
		a.bumpHUDScale(1)
	}
	if a.hudScaleIdx != len(a.hudScales)-1 {
		t.Fatalf("scale index above range: %d", a.hudScaleIdx)
	}
}
