package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"git.cotugno.family/kevin/stencil/exhibit"
	"git.cotugno.family/kevin/stencil/printer"
)

const (
	lightShade  = '░'
	mediumShade = '▒'
	darkShade   = '▓'
	plusSign    = '+'
	greekPi     = 'π'
	fullBlock   = '█'

	minRadius     = 10
	maxRadius     = 33
	frameInterval = 200 * time.Millisecond
)

var (
	width     = flag.Int("width", 100, "canvas width in cells")
	height    = flag.Int("height", 50, "canvas height in cells")
	fit       = flag.Bool("fit", false, "size the canvas to the terminal")
	styleName = flag.String("style", "double", "frame style: light, double, heavy or rounded")
	serve     = flag.String("serve", "", "stream frames over websocket on this address")
	verbose   = flag.Bool("v", false, "debug logging")
)

var styles = map[string]exhibit.Style{
	"light":   exhibit.Light,
	"double":  exhibit.Double,
	"heavy":   exhibit.Heavy,
	"rounded": exhibit.Rounded,
}

func main() {
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(l)
		exhibit.SetLogger(l)
	}

	style, ok := styles[strings.ToLower(*styleName)]
	if !ok {
		log.Fatalf("unknown style %q", *styleName)
	}

	w, h := *width, *height
	if *fit && printer.IsTerminal(os.Stdout) {
		cols, rows, err := printer.Size(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		w, h = cols, rows-1
	}

	canvas, err := exhibit.NewGridWithFill(w, h, lightShade)
	if err != nil {
		log.Fatal(err)
	}

	pulse := uint16(23)
	scene, err := buildScene(style, &pulse)
	if err != nil {
		log.Fatal(err)
	}

	scene.Blit(canvas, exhibit.Origin)

	if *serve == "" {
		if err := printer.Print(os.Stdout, canvas.Render()); err != nil {
			log.Fatal(err)
		}
		return
	}

	streamer := printer.NewStreamer()
	defer streamer.Close()

	go renderLoop(canvas, scene, streamer, &pulse, frameInterval)

	http.Handle("/", streamer)
	log.Fatal(http.ListenAndServe(*serve, nil))
}

func buildScene(style exhibit.Style, radius *uint16) (*exhibit.Scene, error) {
	scene := exhibit.NewScene()

	scene.Add(0, exhibit.DrawableFunc(func(t exhibit.Target, at exhibit.Point) {
		t.DrawSquare(plusSign, at.AddXY(1, 1), 5, 5)
		t.DrawFilledSquare(mediumShade, at.AddXY(3, 3), 5, 5)
		t.DrawFilledCircle(darkShade, at.AddXY(20, 20), *radius)
	}), exhibit.Origin)

	sub, err := exhibit.NewGridWithFill(10, 2, greekPi)
	if err != nil {
		return nil, err
	}
	scene.Add(1, sub, exhibit.Pt(30, 2))

	scene.Add(2, exhibit.NewFrame(style, 7, 17), exhibit.Pt(20, 20))

	legend := &exhibit.List{Width: 16}
	legend.AddEntry(ListEntry{Glyph: plusSign, Label: "square"})
	legend.AddEntry(ListEntry{Glyph: mediumShade, Label: "filled square"})
	legend.AddEntry(ListEntry{Glyph: darkShade, Label: "disc"})
	legend.AddEntry(ListEntry{Glyph: greekPi, Label: "sub grid"})

	meter := exhibit.Meter{
		Max:   decimal.New(maxRadius, 0),
		Width: 16,
		Fill:  fullBlock,
		Empty: ' ',
	}
	gauge := exhibit.DrawableFunc(func(t exhibit.Target, at exhibit.Point) {
		meter.Value = decimal.New(int64(*radius), 0)
		meter.Blit(t, at)
	})

	scene.Add(3, exhibit.Window{
		Style:   style,
		Width:   20,
		Height:  10,
		Title:   "legend",
		Header:  gauge,
		Content: legend,
	}, exhibit.Pt(50, 5))

	return scene, nil
}

// renderLoop redraws the scene with a pulsing disc and publishes every frame.
func renderLoop(canvas *exhibit.Grid, scene *exhibit.Scene, s *printer.Streamer, radius *uint16, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var frame int
	for range ticker.C {
		frame++
		*radius = uint16(minRadius + frame%(maxRadius-minRadius+1))

		canvas.Fill(lightShade)
		scene.Blit(canvas, exhibit.Origin)
		s.Publish(canvas.Render())

		slog.Debug("frame published", "frame", frame, "radius", *radius)
	}
}
