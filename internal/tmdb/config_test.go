package tmdb

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "api key", cfg: Config{APIKey: "abc123"}},
		{name: "read token", cfg: Config{ReadToken: "eyJhbGciOi"}},
		{name: "missing credentials", cfg: Config{}, wantErr: ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := (Config{APIKey: "k", RequestsPerSecond: -1}).Validate(); err == nil {
		t.Error("Validate() expected error for negative rate")
	}
	if _, err := NewClient(Config{}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("NewClient() error = %v, want ErrMissingCredentials", err)
	}
}
