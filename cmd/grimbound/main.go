// Command grimbound renders a script's full token set to PNG files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	grimbound "github.com/Phauks/Grimbound-sub005"
	"github.com/Phauks/Grimbound-sub005/assets"
)

// config holds environment-provided defaults; flags override them.
type config struct {
	FontFile  string `env:"GRIMBOUND_FONT"`
	AssetDir  string `env:"GRIMBOUND_ASSETS" envDefault:"assets"`
	OutputDir string `env:"GRIMBOUND_OUT" envDefault:"tokens"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	var (
		script   = flag.String("script", "script.json", "character list JSON file")
		fontFile = flag.String("font", cfg.FontFile, "token font file (.ttf or .otf)")
		assetDir = flag.String("assets", cfg.AssetDir, "directory with background/portrait assets")
		outDir   = flag.String("out", cfg.OutputDir, "output directory for PNG files")
		diameter = flag.Int("diameter", 480, "role token diameter in pixels")
		badge    = flag.Bool("count", false, "draw reminder-count badges")
		verbose  = flag.Bool("v", false, "log degraded rendering to stderr")
	)
	flag.Parse()

	if *verbose {
		grimbound.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	if *fontFile == "" {
		log.Fatal("No font: pass -font or set GRIMBOUND_FONT")
	}

	data, err := os.ReadFile(*script)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}
	var characters []grimbound.CharacterRecord
	if err := json.Unmarshal(data, &characters); err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	// The demo ships one font file and registers it under every
	// family the default style names.
	fonts := grimbound.NewFontLibrary()
	for _, family := range []string{"Dumbledor", "TradeGothic"} {
		if err := fonts.RegisterFile(family, *fontFile); err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
	}

	loader := assets.NewLoader(assets.DirResolver{Root: *assetDir})
	renderer, err := grimbound.NewRenderer(loader, fonts,
		grimbound.WithRoleDiameter(*diameter),
		grimbound.WithTokenCount(*badge),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	report, err := renderer.GenerateAll(context.Background(), characters, func(current, total int) {
		fmt.Fprintf(os.Stderr, "\r%d of %d", current, total)
	})
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("Generation aborted: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for _, tok := range report.Tokens {
		path := filepath.Join(*outDir, tok.Filename+".png")
		if err := writePNG(path, tok); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
	}

	for _, failure := range report.Failures {
		log.Printf("Not rendered: %v", failure)
	}
	log.Printf("Wrote %d tokens to %s (%d failed)", len(report.Tokens), *outDir, len(report.Failures))
}

func writePNG(path string, tok *grimbound.RenderedToken) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, tok.Surface); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
