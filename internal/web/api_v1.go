package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/preview"
	"github.com/rook-computer/teeui/internal/render"
)

// HeaderRenderError carries the render result of a dialog image.
const HeaderRenderError = "X-Render-Error"

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type deviceInfo struct {
	Name     string  `json:"name"`
	WidthPx  uint32  `json:"widthPx"`
	HeightPx uint32  `json:"heightPx"`
	Dp2Px    float64 `json:"dp2px"`
	Mm2Px    float64 `json:"mm2px"`
}

// NewPreviewMux serves the preview API under /api/v1/:
//
//	GET /api/v1/devices
//	GET /api/v1/languages
//	GET /api/v1/dialog.png and /api/v1/dialog.bmp
//
// The dialog endpoints take the query parameters device, magnified, lang,
// prompt, qr and zoom.
func NewPreviewMux(d *dialog.Dialog) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(d)))
	return mux
}

func apiV1Router(d *dialog.Dialog) http.Handler {
	// Cached font faces are not safe for concurrent use.
	var renderMu sync.Mutex
	mux := http.NewServeMux()
	mux.HandleFunc("/devices", handleDevices)
	mux.HandleFunc("/languages", handleLanguages)
	mux.HandleFunc("/dialog.png", func(w http.ResponseWriter, r *http.Request) { handleDialog(w, r, d, &renderMu, "png") })
	mux.HandleFunc("/dialog.bmp", func(w http.ResponseWriter, r *http.Request) { handleDialog(w, r, d, &renderMu, "bmp") })
	return mux
}

func handleDevices(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	out := make([]deviceInfo, 0, len(dialog.Profiles))
	for _, p := range dialog.Profiles {
		out = append(out, deviceInfo{
			Name:     p.Name,
			WidthPx:  p.Device.WidthPx,
			HeightPx: p.Device.HeightPx,
			Dp2Px:    p.Device.Dp2Px,
			Mm2Px:    p.Device.Mm2Px,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleLanguages(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, dialog.Languages())
}

func handleDialog(w http.ResponseWriter, r *http.Request, d *dialog.Dialog, mu *sync.Mutex, format string) {
	if !allowGet(w, r) {
		return
	}
	q := r.URL.Query()

	name := q.Get("device")
	if name == "" {
		name = dialog.DefaultProfile
	}
	magnified := false
	if raw := q.Get("magnified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_request", "magnified must be a boolean")
			return
		}
		magnified = v
	}
	zoom := 1.0
	if raw := q.Get("zoom"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 || v > 4 {
			writeAPIError(w, http.StatusBadRequest, "bad_request", "zoom must be in (0, 4]")
			return
		}
		zoom = v
	}
	dev, err := dialog.LookupProfile(name, magnified)
	if err != nil {
		writeAPIError(w, http.StatusNotFound, "unknown_device", err.Error())
		return
	}

	opts := dialog.Options{Language: q.Get("lang"), Prompt: q.Get("prompt"), QRPayload: q.Get("qr")}
	mu.Lock()
	img, rerr := preview.Image(d, dev, opts, zoom)
	mu.Unlock()
	data, err := preview.Encode(img, format)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", preview.ContentType(format))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(HeaderRenderError, rerr.String())
	status := http.StatusOK
	if rerr != render.OK {
		status = http.StatusUnprocessableEntity
	}
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
