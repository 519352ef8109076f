// FILE: lixenwraith/ini/example/main.go
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/ini"
)

// GraphicsConfig is the [Graphics] group of the demo file.
type GraphicsConfig struct {
	Width      int     `ini:"width"`
	Height     int     `ini:"height"`
	Fullscreen bool    `ini:"fullscreen"`
	Gamma      float64 `ini:"gamma"`
}

// NetworkConfig is the [Network] group, filled from defaults only.
type NetworkConfig struct {
	Host    string        `ini:"host"`
	Port    int           `ini:"port"`
	Timeout time.Duration `ini:"timeout"`
}

const configFilePath = "demo.ini"

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Create a small INI file on disk for the program to read.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating initial INI file...")

	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.Remove(configFilePath)
		log.Printf("Removed %s.", configFilePath)
	}()

	initial := "[Graphics]\nwidth=1280\nheight=720\nfullscreen=0\n\n[Player]\nname=Ada\ninitial=A"
	if err := os.WriteFile(configFilePath, []byte(initial), 0644); err != nil {
		log.Fatalf("❌ Failed during initial file creation: %v", err)
	}
	log.Printf("✅ Initial configuration saved to %s.", configFilePath)

	// =========================================================================
	// PART 2: OPENING WITH THE BUILDER
	// File values win over struct defaults; validators run last.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Opening the file with the Builder...")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validator := func(f *ini.File) error {
		width, err := ini.Read[int](f, "Graphics", "width")
		if err != nil {
			return err
		}
		if width < 640 {
			return fmt.Errorf("width %d is below the supported minimum 640", width)
		}
		return nil
	}

	var graphics GraphicsConfig
	f, err := ini.NewBuilder().
		WithPath(configFilePath).
		WithLogger(logger).
		WithAtomicSave(true).
		WithDefaults("Graphics", GraphicsConfig{Width: 1920, Height: 1080, Gamma: 2.2}).
		WithDefaults("Network", NetworkConfig{Host: "localhost", Port: 7777, Timeout: 5 * time.Second}).
		WithValidator(validator).
		BuildAndScan("Graphics", &graphics)
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}
	log.Println("✅ Builder finished successfully.")
	printGraphics(graphics, "Initial State (File overrides Defaults)")

	// =========================================================================
	// PART 3: TYPED READS AND WRITES
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Typed reads and writes...")

	playerInitial, _ := ini.Read[ini.Char](f, "Player", "initial")
	name, _ := ini.Read[string](f, "Player", "name")
	log.Printf("   Player %s (%c)", name, playerInitial)

	ini.Write(f, "Graphics", "fullscreen", true, true)
	ini.Write(f, "Graphics", "width", 2560, false) // kept, already present
	ini.Write(f, "Player", "score", 1500, false)

	var network NetworkConfig
	if err := f.Scan("Network", &network); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	log.Printf("   Network %s:%d timeout %s", network.Host, network.Port, network.Timeout)

	if err := f.Save(); err != nil {
		log.Fatalf("❌ Save failed with status %s: %v", f.Status(), err)
	}
	log.Printf("✅ Saved %d records, status %s.", f.Store().Len(), f.Status())

	// =========================================================================
	// PART 4: RELOAD AND EXPORT
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Reloading and exporting...")

	if err := f.Reload(); err != nil {
		log.Fatalf("❌ Reload failed: %v", err)
	}
	fullscreen, _ := ini.Read[bool](f, "Graphics", "fullscreen")
	log.Printf("✅ Reloaded, fullscreen=%t", fullscreen)

	fmt.Println("   ------------------- TOML view --------------------")
	if err := f.Export(os.Stdout, ini.FormatTOML); err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}
	fmt.Println("   --------------------------------------------------")
}

// printGraphics displays the scanned group.
func printGraphics(cfg GraphicsConfig, title string) {
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("             %s\n", title)
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     Width:      %d\n", cfg.Width)
	fmt.Printf("     Height:     %d\n", cfg.Height)
	fmt.Printf("     Fullscreen: %t\n", cfg.Fullscreen)
	fmt.Printf("     Gamma:      %g\n", cfg.Gamma)
	fmt.Println("   --------------------------------------------------")
}
