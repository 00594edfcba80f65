package config

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "jokolay-config-test-*")
	if err != nil {
		panic(err)
	}
	os.Setenv("JOKOLAY_DATA_DIR", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestNormalizeClampsOutOfRangePollRate(t *testing.T) {
	o := Default()
	o.PollRateHz = 9999
	o.Normalize()
	if o.PollRateHz != DefaultPollRate {
		t.Fatalf("expected out-of-range poll rate to clamp to default, got %v", o.PollRateHz)
	}
}

func TestNormalizeClampsInvertedMinMax(t *testing.T) {
	o := Default()
	o.DefaultMinSize = 100
	o.DefaultMaxSize = 10
	o.Normalize()
	if o.DefaultMaxSize != DefaultMaxSize {
		t.Fatalf("expected max < min to fall back to default max, got %v", o.DefaultMaxSize)
	}
}

func TestNormalizeFillsEmptyLinkName(t *testing.T) {
	var o EngineOptions
	o.Normalize()
	if o.LinkName != DefaultLinkName {
		t.Fatalf("expected empty link name to fall back to %q, got %q", DefaultLinkName, o.LinkName)
	}
}

func TestLoadFallsBackToDefaultsWhenMissing(t *testing.T) {
	o := Load()
	if o.LinkName != DefaultLinkName {
		t.Fatalf("expected defaults when no options file exists, got %+v", o)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	o := Default()
	o.LinkName = "CustomLink"
	o.PollRateHz = 30
	if err := o.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Load()
	if loaded.LinkName != "CustomLink" {
		t.Fatalf("expected saved link name to round-trip, got %q", loaded.LinkName)
	}
	if loaded.PollRateHz != 30 {
		t.Fatalf("expected saved poll rate to round-trip, got %v", loaded.PollRateHz)
	}
}

func TestPollIntervalMatchesRate(t *testing.T) {
	o := Default()
	o.PollRateHz = 60
	if got := o.PollInterval(); got.Milliseconds() < 16 || got.Milliseconds() > 17 {
		t.Fatalf("expected ~16.67ms interval for 60Hz, got %v", got)
	}
}
