// Command simulator renders the confirmation dialog on the host. It writes
// a PNG or BMP file, or serves previews over HTTP with -listen.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/teeui/internal/config"
	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/preview"
	"github.com/rook-computer/teeui/internal/render"
	"github.com/rook-computer/teeui/internal/web"
)

func main() {
	defaults, err := config.FromEnv(config.Config{Device: dialog.DefaultProfile, Language: dialog.DefaultLanguage})
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	serverDefaults, err := web.DefaultServerConfigFromEnv("")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	device := flag.String("device", defaults.Device, "device profile; also configurable via "+config.EnvDevice)
	magnified := flag.Bool("magnified", defaults.Magnified, "use magnified font sizes; also configurable via "+config.EnvMagnified)
	lang := flag.String("lang", defaults.Language, "dialog language; also configurable via "+config.EnvLanguage)
	prompt := flag.String("prompt", "Confirm the transfer of 10.00 EUR to Example Shop?", "message to confirm")
	qr := flag.String("qr", "", "optional QR code payload")
	out := flag.String("out", "dialog.png", "output file; .png or .bmp")
	zoom := flag.Float64("zoom", 1, "scale the output image by this factor")
	listenAddr := flag.String("listen", serverDefaults.ListenAddr, "serve previews at this address instead of writing -out; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", serverDefaults.DevMode, "allow cross-origin requests; also configurable via "+web.EnvDevMode)
	verbose := flag.Bool("v", false, "log to stderr")
	listLanguages := flag.Bool("list-languages", false, "print the supported languages and exit")
	listDevices := flag.Bool("list-devices", false, "print the device profiles and exit")
	flag.Parse()

	if *listLanguages {
		fmt.Println(strings.Join(dialog.Languages(), "\n"))
		return
	}
	if *listDevices {
		fmt.Println(strings.Join(dialog.ProfileNames(), "\n"))
		return
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *verbose {
		logger = logging.NewFileLogger(os.Stderr)
	}

	d, err := dialog.New(defaults.FontEngine, logger)
	if err != nil {
		fmt.Println("dialog error:", err)
		os.Exit(2)
	}

	if *listenAddr != "" {
		serve(d, web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode}, logger)
		return
	}

	dev, err := dialog.LookupProfile(*device, *magnified)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	img, rerr := preview.Image(d, dev, dialog.Options{Language: *lang, Prompt: *prompt, QRPayload: *qr}, *zoom)
	if rerr != render.OK {
		// The partial image is still written so layout problems can be seen.
		fmt.Println("render error:", rerr)
	}

	data, err := preview.Encode(img, preview.FormatFromPath(*out))
	if err != nil {
		fmt.Println("encode error:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Println("write error:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %s %dx%d -> %s\n", rerr, *device, dev.WidthPx, dev.HeightPx, *out)
	if rerr != render.OK {
		os.Exit(1)
	}
}

func serve(d *dialog.Dialog, cfg web.ServerConfig, logger logging.Logger) {
	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(cfg, web.NewPreviewMux(d))
	server.Logger = logger
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		return
	}
	fmt.Println("teeui simulator listening on", server.Addr)
	fmt.Println("Preview: http://" + server.Addr + "/api/v1/dialog.png?prompt=Hello")

	<-processCtx.Done()
	_ = server.Stop()
}
