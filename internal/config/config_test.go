package config

import "testing"

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()

	if cfg.Cache.Driver != "memory" {
		t.Errorf("expected default cache driver memory, got %q", cfg.Cache.Driver)
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("expected default max_results 5, got %d", cfg.Search.MaxResults)
	}
	if cfg.Search.PhraseBoost != 1.5 {
		t.Errorf("expected default phrase_boost 1.5, got %g", cfg.Search.PhraseBoost)
	}
	if cfg.Search.HighThreshold != 2.0 || cfg.Search.MediumThreshold != 1.0 {
		t.Errorf("expected default thresholds 2.0/1.0, got %g/%g",
			cfg.Search.HighThreshold, cfg.Search.MediumThreshold)
	}
	if cfg.Aesthetic.Provider != "static" {
		t.Errorf("expected default aesthetic provider static, got %q", cfg.Aesthetic.Provider)
	}
	if cfg.Corpus.Dir == "" {
		t.Error("expected default corpus dir to be set")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_RedisDriverRequiresAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Driver = "redis"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for redis driver without addrs")
	}

	cfg.Cache.Addrs = []string{"localhost:6379"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with addrs set: %v", err)
	}
}

func TestValidate_UnknownCacheDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Driver = "memcached"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown cache driver")
	}
	expected := `cache.driver must be "memory" or "redis", got "memcached"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_OpenAIProviderRequiresAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Aesthetic.Provider = "openai"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for openai provider without api key")
	}

	cfg.Aesthetic.APIKey = "test-key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with api key set: %v", err)
	}
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Search.MediumThreshold = 3.0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when medium threshold exceeds high threshold")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DESIGNDEX_TEST_KEY", "secret")

	got := string(expandEnvVars([]byte("key: ${DESIGNDEX_TEST_KEY}")))
	if got != "key: secret" {
		t.Errorf("got %q, want %q", got, "key: secret")
	}

	got = string(expandEnvVars([]byte("port: ${DESIGNDEX_TEST_MISSING:-8080}")))
	if got != "port: 8080" {
		t.Errorf("got %q, want %q", got, "port: 8080")
	}
}
