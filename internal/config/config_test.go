package config

import (
	"testing"

	"github.com/rook-computer/teeui/internal/text"
)

func TestFromEnv(t *testing.T) {
	defaults := Config{Device: "phone-medium", Language: "en"}

	type tc struct {
		env     map[string]string
		want    Config
		wantErr bool
	}
	tests := map[string]tc{
		"defaults": {
			want: defaults,
		},
		"overrides": {
			env: map[string]string{
				EnvDevice:     "phone-small",
				EnvMagnified:  "true",
				EnvLanguage:   "de",
				EnvFontEngine: "freetype",
				EnvStdioLog:   "/tmp/teeui.log",
			},
			want: Config{Device: "phone-small", Magnified: true, Language: "de", FontEngine: text.EngineFreeType, StdioLog: "/tmp/teeui.log"},
		},
		"bad bool": {
			env:     map[string]string{EnvMagnified: "sometimes"},
			wantErr: true,
		},
		"bad engine": {
			env:     map[string]string{EnvFontEngine: "bitmap"},
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{EnvDevice, EnvMagnified, EnvLanguage, EnvFontEngine, EnvStdioLog} {
				t.Setenv(k, tt.env[k])
			}
			got, err := FromEnv(defaults)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromEnv = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv: %v", err)
			}
			if got != tt.want {
				t.Fatalf("FromEnv = %+v, want %+v", got, tt.want)
			}
		})
	}
}
