// Package rainviewer provides a Go client library for the free RainViewer
// weather maps API.
//
// This package gives easy access to satellite-imagery-style precipitation
// radar tiles for the entire world. Discovery of the published frames and
// fetching of individual PNG tiles are the two operations; everything else
// is plain value manipulation with no network access.
//
// Basic Usage:
//
//	client := rainviewer.NewClient("YourApp/1.0 (your-email@example.com)")
//
//	// Query what radar and satellite data is available
//	maps, err := client.Available(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Pick the newest past radar frame
//	frame := maps.LatestRadar()
//
//	// Set up the arguments for the tile we want, slippy-map style (x, y, zoom)
//	args, err := rainviewer.NewTileArguments(4, 7, 6)
//	if err != nil {
//		log.Fatal(err)
//	}
//	args.SetColor(rainviewer.Titan)
//	args.SetSnow(true)
//	args.SetSmooth(false)
//
//	// Fetch the PNG tile bytes
//	png, err := client.GetTile(ctx, maps, frame, args)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The package-level Available and GetTile functions use a shared
// DefaultClient for one-off calls.
//
// Every call is stateless: Available re-queries the service each time and
// GetTile issues exactly one request with no retries or caching. Callers
// needing bounded latency should pass a context with a deadline or inject
// their own http.Client via NewClientWithHTTPClient.
//
// For more information about the API, visit:
// https://www.rainviewer.com/api/weather-maps-api.html
package rainviewer
