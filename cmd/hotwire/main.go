package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/hotwire/audio"
	"github.com/lixenwraith/hotwire/config"
	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/render"
)

var (
	configFlag  = flag.String("config", "", "Settings file (default ./hotwire.toml)")
	profileFlag = flag.String("profile", "", "Course profile: desktop, mobile")
	seedFlag    = flag.Int64("seed", -1, "Course seed, negative keeps the settings value")
	modeFlag    = flag.String("mode", "", "Control mode: pointer, keyboard")
	debugFlag   = flag.Bool("debug", false, "Log to logs/hotwire.log and show the metrics overlay")
)

func main() {
	flag.Parse()

	// .env is optional, real environment wins
	_ = godotenv.Load()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&settings, *profileFlag, *seedFlag, *modeFlag, *debugFlag)

	if logFile := setupLogging(settings.Debug); logFile != nil {
		defer logFile.Close()
	}

	mode, err := settings.Mode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	profile, err := settings.WireProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nHOTWIRE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	w, h := screen.Size()
	cfg, err := settings.EngineConfig(render.Bounds(w, h))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Invalid configuration for a %dx%d terminal: %v\n", w, h, err)
		os.Exit(1)
	}

	sim, err := engine.New(cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create simulation: %v\n", err)
		os.Exit(1)
	}
	log.Printf("profile=%v seed=%d mode=%v strikes=%d", cfg.Profile, cfg.Seed, mode, cfg.MaxStrikes)

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	input := newInputState(mode, profile, cfg.UIScale)
	g := newGame(screen, sim, sound, input, engine.NewMonotonicTimeProvider(), settings.Debug)
	g.run()

	screen.Fini()
}

// applyFlags overrides settings with explicitly passed flags
func applyFlags(s *config.Settings, profile string, seed int64, mode string, debug bool) {
	if profile != "" {
		s.Profile = profile
	}
	if seed >= 0 {
		v := uint32(seed)
		s.Seed = &v
	}
	if mode != "" {
		s.ControlMode = mode
	}
	if debug {
		s.Debug = true
	}
}
