package config

import "testing"

func TestMergeConfigsPreservesBooleanDefaults(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Render: RenderConfig{
			Backend: "ansi",
		},
	}
	raw := map[string]any{
		"render": map[string]any{
			"backend": "ansi",
		},
	}

	mergeConfigs(base, override, raw)

	if !base.Terminal.AlternateScreen || !base.Terminal.HideCursor {
		t.Fatalf("terminal flags should remain true when not overridden")
	}
	if base.Layout.CacheCapacity != 64 {
		t.Fatalf("cache capacity should keep its default, got %d", base.Layout.CacheCapacity)
	}
	if base.Render.Backend != "ansi" {
		t.Fatalf("expected backend to be overridden")
	}
}

func TestMergeConfigsRespectsExplicitZeroValues(t *testing.T) {
	base := DefaultConfig()
	override := &Config{}
	raw := map[string]any{
		"terminal": map[string]any{
			"hide_cursor": false,
		},
		"layout": map[string]any{
			"cache_capacity": 0,
		},
	}

	mergeConfigs(base, override, raw)

	if base.Terminal.HideCursor {
		t.Fatalf("expected hide_cursor to update when override is explicit")
	}
	if base.Layout.CacheCapacity != 0 {
		t.Fatalf("expected cache_capacity 0 to disable the cache")
	}
	if !base.Terminal.AlternateScreen {
		t.Fatalf("alternate_screen was not in the override")
	}
}

func TestMergeConfigsNilOverride(t *testing.T) {
	base := DefaultConfig()
	mergeConfigs(base, nil, nil)
	if base.Render.Backend != BackendTcell {
		t.Fatalf("nil override should leave config untouched")
	}
}

func TestFieldSet(t *testing.T) {
	raw := map[string]any{
		"telemetry": map[string]any{"metrics": false},
		"render":    "flat",
	}

	if !fieldSet(raw, "telemetry", "metrics") {
		t.Fatalf("expected telemetry.metrics to be set")
	}
	if fieldSet(raw, "telemetry", "tracing") {
		t.Fatalf("telemetry.tracing is absent")
	}
	if fieldSet(raw, "render", "backend") {
		t.Fatalf("render is not a mapping")
	}
	if fieldSet(nil, "terminal") || fieldSet(raw) {
		t.Fatalf("empty inputs are never set")
	}
}
