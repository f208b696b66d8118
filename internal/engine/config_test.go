package engine

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(DefaultConfig(), map[string]string{
		"n":        "64",
		"workers":  "3",
		"slots":    "4",
		"strategy": "spin",
		"steps":    "12",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 64 || cfg.Workers != 3 || cfg.Slots != 4 || cfg.Strategy != StrategySpin || cfg.Limit != 12 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := FromMap(DefaultConfig(), map[string]string{"workers": "many"}); err == nil {
		t.Fatal("expected a parse error")
	}
	if _, err := FromMap(DefaultConfig(), map[string]string{"rule": "B36/S23"}); err == nil {
		t.Fatal("expected unknown keys to be rejected")
	}
}
