// Command pixel-clock-decode prints the values carried by an image produced
// by the pixel clock service.
//
// Usage:
//
//	pixel-clock-decode [-size N] [-local] <file.png|->
//
// With -local the four values of /api/1/local are labelled and the offsets
// are shown signed.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/ironsheep/pixel-clock/internal/imaging"
)

var localLabels = []string{"unix time", "offset now", "next transition", "offset after"}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pixel-clock-decode: ")

	size := flag.Int("size", 0, "block size in pixels (0 infers it from the image height)")
	local := flag.Bool("local", false, "label values as returned by /api/1/local")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pixel-clock-decode [-size N] [-local] <file.png|->")
		os.Exit(2)
	}

	img, err := load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	values, err := imaging.ReadValues(img, *size)
	if err != nil {
		log.Fatal(err)
	}
	if err := printValues(os.Stdout, values, *local); err != nil {
		log.Fatal(err)
	}
}

func load(path string) (image.Image, error) {
	if path == "-" {
		return imaging.DecodeImage(os.Stdin)
	}
	return imaging.LoadImage(path)
}

func printValues(w io.Writer, values []uint32, local bool) error {
	for i, v := range values {
		label := fmt.Sprintf("block %d", i)
		detail := ""
		if local && i < len(localLabels) {
			label = localLabels[i]
			switch i {
			case 0, 2:
				if v != 0 {
					detail = time.Unix(int64(v), 0).UTC().Format(time.RFC3339)
				}
			case 1, 3:
				detail = fmt.Sprintf("%+ds", imaging.DecodeOffset(v))
			}
		}
		if _, err := fmt.Fprintf(w, "%-16s %10d  %s  %s\n", label, v, imaging.ColorOf(v), detail); err != nil {
			return err
		}
	}
	return nil
}
