package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

func testViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, ".thinktank.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	v := viper.New()
	v.SetConfigName(".thinktank")
	v.SetEnvPrefix("THINKTANK")
	v.AutomaticEnv()
	v.AddConfigPath(dir)
	return v
}

func TestDefaultsWithoutFile(t *testing.T) {
	cfg, err := FromViper(testViper(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Retention().RetentionDays; got != 30 {
		t.Fatalf("expected 30 day retention, got %d", got)
	}
	if got := cfg.PinLimit(); got != 5 {
		t.Fatalf("expected pin limit 5, got %d", got)
	}
	if got := cfg.Language(); got.String() != language.English.String() {
		t.Fatalf("expected en, got %s", got)
	}
	if got := len(cfg.Options()); got != 3 {
		t.Fatalf("expected 3 organizer options, got %d", got)
	}
}

func TestReadsFile(t *testing.T) {
	cfg, err := FromViper(testViper(t, "retention: 2w\npin_limit: 3\nlocale: fr\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Retention().RetentionDays; got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
	if got := cfg.PinLimit(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := cfg.Language(); got.String() != language.French.String() {
		t.Fatalf("expected fr, got %s", got)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("THINKTANK_PIN_LIMIT", "8")
	cfg, err := FromViper(testViper(t, "pin_limit: 3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.PinLimit(); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
}

func TestRejectsBadValues(t *testing.T) {
	for name, yaml := range map[string]string{
		"retention":          "retention: soon\n",
		"retention overflow": "retention: 2000000000000000000w\n",
		"pin_limit":          "pin_limit: -1\n",
		"locale":             "locale: \"not a locale!\"\n",
	} {
		if _, err := FromViper(testViper(t, yaml)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
