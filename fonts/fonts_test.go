package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(10); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !HUD.Loaded() {
		t.Fatalf("hud font should be registered")
	}
	if HUD.Get() == nil {
		t.Fatalf("hud face is nil")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatalf("expected parse error")
	}
	if FontName("broken").Loaded() {
		t.Fatalf("broken font must not be registered")
	}
}
