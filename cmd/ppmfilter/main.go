// Command ppmfilter loads a color bitmap, runs a chain of filters over it and
// writes the result.
//
// Usage:
//
//	ppmfilter -in photo.ppm -out dithered.ppm -filters grayscale,dither
//	ppmfilter -in photo.png -out red.ppm.zst -filters mask=r
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ppm"
	"github.com/gogpu/ppm/imageio"
)

func main() {
	var (
		input   = flag.String("in", "", "input file (.ppm, .ppm.zst, .png, .jpg, .bmp, .tif, .qoi)")
		output  = flag.String("out", "", "output file (same formats as -in)")
		filters = flag.String("filters", "dither", "comma-separated filters: grayscale, mask=<rgb>, dither")
		maxPix  = flag.Int("max-pixels", ppm.DefaultMaxPixels, "largest accepted width*height")
		verbose = flag.Bool("v", false, "log every filter pass")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(versionLine())
		return
	}

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	ppm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ops, err := parseFilters(*filters)
	if err != nil {
		log.Fatalf("ppmfilter: %v", err)
	}

	start := time.Now()
	buf, err := imageio.Import(*input, ppm.WithMaxPixels(*maxPix))
	if err != nil {
		log.Fatalf("ppmfilter: %v", err)
	}

	ppm.ApplyFilter(buf, ops...)

	if err := imageio.Export(buf, *output); err != nil {
		log.Fatalf("ppmfilter: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s -> %s: %dx%d, %d pixels, %d filters, %v\n",
		*input, *output, buf.Width(), buf.Height(), buf.Len(), len(ops),
		time.Since(start).Round(time.Millisecond))
}

func versionLine() string {
	return "ppmfilter " + ppm.Version
}
