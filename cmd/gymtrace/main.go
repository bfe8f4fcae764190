package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/anirudhs/gymtrace/internal/app"
	"github.com/anirudhs/gymtrace/internal/config"
	"github.com/anirudhs/gymtrace/internal/server"
	"github.com/anirudhs/gymtrace/internal/store"
	"github.com/anirudhs/gymtrace/internal/tray"
)

func main() {
	fmt.Println("GymTrace - Exercise Rep Tracking")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = config.DefaultDBPath()
		if err != nil {
			log.Fatalf("Failed to resolve data directory: %v", err)
		}
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(app.Config{
		Store:           st,
		CameraID:        cfg.CameraID,
		TargetFPS:       cfg.TargetFPS,
		MotionThresh:    cfg.MotionThreshold,
		AutoStopSeconds: cfg.AutoStopSeconds,
	})

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start capture pipeline: %v", err)
	}
	defer a.Stop()

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
		App:       a,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	runTray(a, cfg.Addr)
}

// runTray wires the tray menu to the application and blocks until quit.
func runTray(a *app.App, addr string) {
	t := tray.New()

	t.OnStop(func() {
		if _, err := a.StopExercise(); err != nil {
			log.Printf("Stop from tray: %v", err)
		}
	})

	t.OnDashboard(func() {
		if err := openBrowser("http://localhost" + addr); err != nil {
			log.Printf("Failed to open dashboard: %v", err)
		}
	})

	t.OnQuit(func() {
		log.Println("Quit requested from tray")
	})

	// Keep the session display current.
	go func() {
		for range time.Tick(time.Second) {
			st := a.Tracker().Status()
			if st.Active {
				t.SetSession(st.Exercise, st.Count)
			} else {
				t.SetSession("", 0)
			}
		}
	}()

	t.Run()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.gymtrace/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".gymtrace", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
