// Package main provides an example of using the rainviewer client to
// download a single radar tile.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	rainviewer "github.com/TroyNeubauer/rain-viewer"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := rainviewer.NewClient("rain-viewer-example/1.0 (username@example.com)")

	// Query what radar and satellite data is available
	maps, err := client.Available(ctx)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Tile host: %s\n", maps.Host)
	fmt.Printf("Past radar frames: %d, nowcast frames: %d, satellite frames: %d\n",
		len(maps.PastRadar), len(maps.NowcastRadar), len(maps.InfraredSatellite))

	// Pick the newest past radar frame
	frame := maps.LatestRadar()
	if frame == nil {
		log.Fatal("no past radar frames are published")
	}
	fmt.Printf("Using frame %s generated at %s\n",
		frame.Path, frame.Timestamp().Format("2006-01-02 15:04:05 UTC"))

	// Set up the tile request, slippy-map style (x, y, zoom)
	args, err := rainviewer.NewTileArguments(4, 7, 6)
	if err != nil {
		log.Fatalf("Invalid tile coordinate: %v", err)
	}
	// Use this pretty color scheme
	args.SetColor(rainviewer.Titan)
	// Show snow in addition to rain
	args.SetSnow(true)
	// Keep the raw radar pixels
	args.SetSmooth(false)

	png, err := client.GetTile(ctx, maps, frame, args)
	if err != nil {
		fatal(err)
	}

	// Check for PNG magic to make sure we got an image
	if !bytes.HasPrefix(png, []byte{0x89, 0x50, 0x4e, 0x47}) {
		log.Fatal("response does not look like a PNG image")
	}

	if err := os.WriteFile("tile.png", png, 0o644); err != nil {
		log.Fatalf("Failed to write tile: %v", err)
	}
	fmt.Printf("Wrote tile.png (%d bytes)\n", len(png))
}

// fatal reports API errors by kind before exiting
func fatal(err error) {
	switch e := err.(type) {
	case *rainviewer.APIError:
		log.Fatalf("API error %d: %s", e.StatusCode, e.Message)
	case *rainviewer.DecodeError:
		log.Fatalf("Decode error: %v", e.Err)
	case *rainviewer.NetworkError:
		log.Fatalf("Network error: %v", e.Err)
	default:
		log.Fatalf("Unknown error: %v", err)
	}
}
