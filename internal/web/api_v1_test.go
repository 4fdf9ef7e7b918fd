package web

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/text"
)

var testDialog = sync.OnceValues(func() (*dialog.Dialog, error) {
	return dialog.New(text.EngineOpenType, nil)
})

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	d, err := testDialog()
	if err != nil {
		t.Fatalf("dialog.New: %v", err)
	}
	return NewPreviewMux(d)
}

func TestDialogEndpoint(t *testing.T) {
	mux := newMux(t)

	type tc struct {
		target      string
		method      string
		wantStatus  int
		wantType    string
		wantRender  string
		wantPNGSize int
	}
	tests := map[string]tc{
		"png": {
			target:      "/api/v1/dialog.png?device=phone-small&prompt=Pay%3F&zoom=0.5",
			wantStatus:  http.StatusOK,
			wantType:    "image/png",
			wantRender:  "OK",
			wantPNGSize: 360,
		},
		"bmp": {
			target:     "/api/v1/dialog.bmp?device=phone-small&prompt=Pay%3F&lang=de&zoom=0.25",
			wantStatus: http.StatusOK,
			wantType:   "image/bmp",
			wantRender: "OK",
		},
		"missing prompt": {
			target:     "/api/v1/dialog.png?device=phone-small&zoom=0.25",
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "image/png",
			wantRender: "Localization",
		},
		"unknown device": {
			target:     "/api/v1/dialog.png?device=watch",
			wantStatus: http.StatusNotFound,
			wantType:   "application/json; charset=utf-8",
		},
		"bad zoom": {
			target:     "/api/v1/dialog.png?zoom=9",
			wantStatus: http.StatusBadRequest,
			wantType:   "application/json; charset=utf-8",
		},
		"bad magnified": {
			target:     "/api/v1/dialog.png?magnified=maybe",
			wantStatus: http.StatusBadRequest,
			wantType:   "application/json; charset=utf-8",
		},
		"post": {
			target:     "/api/v1/dialog.png",
			method:     http.MethodPost,
			wantStatus: http.StatusMethodNotAllowed,
			wantType:   "application/json; charset=utf-8",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(method, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != tt.wantType {
				t.Fatalf("Content-Type = %q, want %q", got, tt.wantType)
			}
			if got := rec.Header().Get(HeaderRenderError); got != tt.wantRender {
				t.Fatalf("%s = %q, want %q", HeaderRenderError, got, tt.wantRender)
			}
			if tt.wantPNGSize > 0 {
				img, err := png.Decode(rec.Body)
				if err != nil {
					t.Fatalf("png.Decode: %v", err)
				}
				if got := img.Bounds().Dx(); got != tt.wantPNGSize {
					t.Fatalf("width = %d, want %d", got, tt.wantPNGSize)
				}
			}
		})
	}
}

func TestListEndpoints(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil))
	var devices []deviceInfo
	if err := json.NewDecoder(rec.Body).Decode(&devices); err != nil {
		t.Fatalf("decode devices: %v", err)
	}
	if len(devices) != len(dialog.Profiles) || devices[0].Name != "phone-small" || devices[0].WidthPx != 720 {
		t.Fatalf("devices = %+v", devices)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil))
	var langs []string
	if err := json.NewDecoder(rec.Body).Decode(&langs); err != nil {
		t.Fatalf("decode languages: %v", err)
	}
	if len(langs) != 3 {
		t.Fatalf("languages = %v", langs)
	}
}

func TestDevCORS(t *testing.T) {
	h := NewHTTPServer(ServerConfig{DevMode: true}, newMux(t)).Handler

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/devices", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Allow-Origin = %q", got)
	}
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvDevMode, "")
	cfg, err := DefaultServerConfigFromEnv(":8080")
	if err != nil || cfg != (ServerConfig{ListenAddr: ":8080"}) {
		t.Fatalf("defaults = %+v, %v", cfg, err)
	}

	t.Setenv(EnvListenAddr, "127.0.0.1:9000")
	t.Setenv(EnvDevMode, "1")
	cfg, err = DefaultServerConfigFromEnv(":8080")
	if err != nil || cfg != (ServerConfig{ListenAddr: "127.0.0.1:9000", DevMode: true}) {
		t.Fatalf("env = %+v, %v", cfg, err)
	}

	t.Setenv(EnvDevMode, "yes please")
	if _, err := DefaultServerConfigFromEnv(":8080"); err == nil {
		t.Fatalf("bad %s accepted", EnvDevMode)
	}
}
