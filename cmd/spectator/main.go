package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-spectator/common"
	"github.com/Carmen-Shannon/oxy-spectator/engine"
	"github.com/Carmen-Shannon/oxy-spectator/engine/camera"
	"github.com/Carmen-Shannon/oxy-spectator/engine/input"
	"github.com/Carmen-Shannon/oxy-spectator/engine/spectator"
	"github.com/Carmen-Shannon/oxy-spectator/engine/window"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "YAML controller config (key_mapping is reloaded on change)")
	tickRate := flag.Float64("tick", 60, "controller ticks per second")
	profile := flag.Bool("profile", false, "log profiler reports once per second")
	debug := flag.Bool("debug", false, "enable debug logging")
	headless := flag.Bool("headless", false, "run without a window, flying forward for -ticks ticks")
	ticks := flag.Int("ticks", 120, "tick count for -headless")
	fly := flag.Bool("fly", false, "start in fly mode with the cursor captured")
	quitKey := flag.String("quit-key", "Esc", "key that closes the window (NONE to disable)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	var options []spectator.ControllerOption
	if *configPath != "" {
		cfg, err := spectator.LoadConfigFile(*configPath)
		if err != nil {
			logger.WithError(err).Fatal("failed to load config")
		}
		options = cfg.Options()
	}

	if *headless {
		if err := runHeadless(logger, options, *ticks); err != nil {
			logger.WithError(err).Fatal("headless run failed")
		}
		return
	}

	closeKey, err := parseQuitKey(*quitKey)
	if err != nil {
		logger.WithError(err).Fatal("invalid -quit-key")
	}

	windowOptions := []window.WindowBuilderOption{
		window.WithTitle("spectator"),
		window.WithSize(1280, 720),
		window.WithCloseKey(closeKey),
		window.WithCursorCaptured(*fly),
	}
	if err := run(logger, options, windowOptions, *configPath, *tickRate, *profile); err != nil {
		logger.WithError(err).Fatal("spectator exited")
	}
}

func run(logger *logrus.Logger, options []spectator.ControllerOption, windowOptions []window.WindowBuilderOption, configPath string, tickRate float64, profile bool) error {
	win, err := window.NewWindow(windowOptions...)
	if err != nil {
		return err
	}

	dispatcher := input.NewDispatcher()
	dispatcher.Attach(win)

	cam := camera.NewCamera(camera.WithPosition(0, 2, 10), camera.WithAspect(win.AspectRatio()))
	controller := spectator.NewSpectatorController(cam,
		append(options, spectator.WithInputSource(dispatcher), spectator.WithLogger(logger))...)
	defer controller.Dispose()

	if configPath != "" {
		watcher, err := spectator.WatchBindings(configPath, controller, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	// Tab toggles fly mode together with cursor capture. Auto-repeat is ignored.
	toggleHeld := false
	dispatcher.Subscribe(input.Handler{
		OnKeyDown: func(keyCode uint32) {
			if keyCode != common.KeyTab || toggleHeld {
				return
			}
			toggleHeld = true
			if controller.IsEnabled() {
				controller.Disable()
				win.SetCursorCaptured(false)
				win.SetTitle("spectator (Tab to fly)")
				return
			}
			win.SetCursorCaptured(true)
			controller.Enable()
			win.SetTitle("spectator")
		},
		OnKeyUp: func(keyCode uint32) {
			if keyCode == common.KeyTab {
				toggleHeld = false
			}
		},
	})
	if win.CursorCaptured() {
		controller.Enable()
	} else {
		win.SetTitle("spectator (Tab to fly)")
	}

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithCamera(cam),
		engine.WithTickRate(tickRate),
		engine.WithProfiling(profile),
		engine.WithLogger(logger),
	)
	e.SetTickCallback(controller.Update)
	addProbes(e, cam, controller)

	logger.WithField("tick_rate", tickRate).Info("spectator running, press Tab to toggle fly mode")
	e.Run()
	return nil
}

// parseQuitKey resolves the -quit-key flag. NONE disables the close key.
func parseQuitKey(name string) (uint32, error) {
	if strings.EqualFold(strings.TrimSpace(name), "NONE") {
		return 0, nil
	}
	code, ok := common.KeyCodeFromName(name)
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return code, nil
}

// runHeadless drives the controller through the dispatcher without a window and logs the final pose.
func runHeadless(logger *logrus.Logger, options []spectator.ControllerOption, ticks int) error {
	if ticks <= 0 {
		return fmt.Errorf("tick count must be positive, got %d", ticks)
	}
	dispatcher := input.NewDispatcher()
	cam := camera.NewCamera()
	controller := spectator.NewSpectatorController(cam,
		append(options, spectator.WithInputSource(dispatcher), spectator.WithLogger(logger))...)
	controller.Enable()
	defer controller.Dispose()

	dispatcher.KeyDown(common.KeyW)
	for i := 0; i < ticks; i++ {
		if i == ticks/2 {
			dispatcher.PointerMotion(10, 0)
		}
		controller.Step()
	}
	dispatcher.KeyUp(common.KeyW)

	x, y, z := cam.Position()
	pitch, yaw, _ := cam.Rotation()
	logger.WithFields(logrus.Fields{
		"position": fmt.Sprintf("%.2f,%.2f,%.2f", x, y, z),
		"pitch":    pitch,
		"yaw":      yaw,
		"speed":    controller.Velocity().Len(),
	}).Info("headless flight finished")
	_, err := fmt.Fprintf(os.Stdout, "%.4f %.4f %.4f\n", x, y, z)
	return err
}

func addProbes(e engine.Engine, cam camera.Camera, controller spectator.SpectatorController) {
	p := e.Profiler()
	p.AddProbe("position", func() any {
		x, y, z := cam.Position()
		return fmt.Sprintf("%.2f,%.2f,%.2f", x, y, z)
	})
	p.AddProbe("speed", func() any {
		return controller.Velocity().Len()
	})
	p.AddProbe("pressed", func() any {
		return controller.Pressed().String()
	})
}
