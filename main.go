package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/teeui/internal/app"
	"github.com/rook-computer/teeui/internal/buttons"
	"github.com/rook-computer/teeui/internal/config"
	"github.com/rook-computer/teeui/internal/dialog"
	"github.com/rook-computer/teeui/internal/display"
	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/system"
)

func main() {
	os.Exit(run())
}

// run returns the exit code: 0 confirmed, 1 cancelled, 2 aborted or failed.
func run() int {
	defaults, err := config.FromEnv(config.Config{Device: dialog.DefaultProfile, Language: dialog.DefaultLanguage})
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	device := flag.String("device", defaults.Device, "device profile; also configurable via "+config.EnvDevice)
	magnified := flag.Bool("magnified", defaults.Magnified, "use magnified font sizes; also configurable via "+config.EnvMagnified)
	lang := flag.String("lang", defaults.Language, "dialog language; also configurable via "+config.EnvLanguage)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	prompt := flag.String("prompt", "", "message to confirm")
	qr := flag.String("qr", "", "optional QR code payload")
	fbPath := flag.String("fb", display.DefaultDevice, "framebuffer device")
	debug := flag.Bool("debug", false, "enable debug logging to ./teeui-debug.log")
	flag.Parse()

	// Redirect first so crashes are diagnosable while the console is in
	// graphics mode.
	if err := system.RedirectStdIO(*stdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./teeui-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	dev, err := dialog.LookupProfile(*device, *magnified)
	if err != nil {
		fmt.Println(err)
		return 2
	}

	d, err := dialog.New(defaults.FontEngine, logger)
	if err != nil {
		fmt.Println("dialog error:", err)
		return 2
	}

	fb, err := display.Open(*fbPath, logger)
	if err != nil {
		fmt.Println("display error:", err)
		return 2
	}
	defer fb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(d, fb, buttons.NewEvdevButtons(logger), dev, dialog.Options{Language: *lang, Prompt: *prompt, QRPayload: *qr})
	a.Logger = logger
	a.Console = true

	result, err := a.Run(ctx)
	if err != nil {
		fmt.Println("session error:", err)
	}
	fmt.Println(result)
	switch result {
	case app.Confirmed:
		return 0
	case app.Cancelled:
		return 1
	}
	return 2
}
