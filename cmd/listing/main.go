package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/pauljones0/daftlistings/internal/config"
	"github.com/pauljones0/daftlistings/internal/listing"
	"github.com/pauljones0/daftlistings/internal/models"
)

func main() {
	originFlag := flag.String("origin", "", `origin as "latitude,longitude"; overrides ORIGIN`)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	if *originFlag != "" {
		origin, err := config.ParseOrigin(*originFlag)
		if err != nil {
			slog.Error("Invalid -origin flag", "value", *originFlag, "error", err)
			os.Exit(1)
		}
		cfg.Origin = &origin
	}

	files := cfg.ListingFiles
	if flag.NArg() > 0 {
		files = flag.Args()
	}
	if len(files) == 0 {
		slog.Error("No listing files given. Pass paths as arguments or set LISTING_FILES.")
		os.Exit(1)
	}

	if err := run(os.Stdout, files, cfg.Origin); err != nil {
		slog.Error("Failed to summarise listings", "error", err)
		os.Exit(1)
	}
}

type entry struct {
	listing  *listing.Listing
	path     string
	distance float64
	located  bool
}

// run loads every payload file and prints one summary per listing. With an
// origin, listings are ordered nearest first and those without coordinates
// go last.
func run(w io.Writer, files []string, origin *models.Coordinates) error {
	entries := make([]entry, 0, len(files))
	for _, path := range files {
		l, err := listing.Load(path)
		if err != nil {
			return err
		}
		e := entry{listing: l, path: path}
		if origin != nil {
			e.distance, err = l.DistanceTo(*origin)
			switch {
			case err == nil:
				e.located = true
			case errors.Is(err, listing.ErrInvalidLocation):
				slog.Warn("Listing has no coordinates, skipping distance", "path", path)
			default:
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		entries = append(entries, e)
	}
	slog.Debug("Loaded listings", "count", len(entries))

	if origin != nil {
		slices.SortStableFunc(entries, func(a, b entry) int {
			switch {
			case a.located && !b.located:
				return -1
			case !a.located && b.located:
				return 1
			case a.distance < b.distance:
				return -1
			case a.distance > b.distance:
				return 1
			}
			return 0
		})
	}

	for _, e := range entries {
		if err := printSummary(w, e, origin != nil); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(w io.Writer, e entry, withDistance bool) error {
	l := e.listing
	id, err := l.ID()
	if err != nil {
		return fmt.Errorf("%s: %w", e.path, err)
	}

	fmt.Fprintf(w, "%d\n", id)
	fmt.Fprintf(w, "  title:     %s\n", field(l.Title()))
	fmt.Fprintf(w, "  price:     %s\n", field(l.AbbreviatedPrice()))
	fmt.Fprintf(w, "  bedrooms:  %s\n", field(l.Bedrooms()))
	if baths, ok := l.Bathrooms(); ok {
		fmt.Fprintf(w, "  bathrooms: %s\n", baths)
	}
	fmt.Fprintf(w, "  ber:       %s\n", field(l.BER()))
	fmt.Fprintf(w, "  published: %s\n", field(l.PublishDate()))
	fmt.Fprintf(w, "  link:      %s\n", field(l.DaftLink()))
	if withDistance {
		if e.located {
			fmt.Fprintf(w, "  distance:  %.2f km\n", e.distance)
		} else {
			fmt.Fprintf(w, "  distance:  unknown\n")
		}
	}
	return nil
}

// field renders a required accessor, logging instead of failing so one
// malformed field doesn't hide the rest of the summary.
func field(v string, err error) string {
	if err != nil {
		slog.Warn("Listing field unavailable", "error", err)
		return "-"
	}
	return v
}
