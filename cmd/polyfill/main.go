// seehuhn.de/go/polyfill - integer scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command polyfill renders a polygon scene to an image file.
//
// Without arguments, the built-in scene "lab_all" is rendered to out.png.
// Use -list to see the built-in scenes, -in to read scenes from a JSON
// file, and -export to write scenes as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/imagefile"
	"seehuhn.de/go/polyfill/pdfout"
	"seehuhn.de/go/polyfill/scene"
)

type options struct {
	scene    string
	in       string
	out      string
	pdf      string
	export   string
	bg       string
	width    int
	height   int
	parallel int
	list     bool
	verbose  bool
}

func main() {
	var opt options
	flag.StringVar(&opt.scene, "scene", "lab_all", "name of the scene to render")
	flag.StringVar(&opt.in, "in", "", "read scenes from this JSON `file`")
	flag.StringVar(&opt.out, "o", "out.png", "output image `file` (.png, .bmp or .tiff)")
	flag.StringVar(&opt.pdf, "pdf", "", "also write the scene as vector graphics to this PDF `file`")
	flag.StringVar(&opt.export, "export", "", "write the available scenes as JSON to this `file` and exit")
	flag.StringVar(&opt.bg, "bg", "", "override the background `color`")
	flag.IntVar(&opt.width, "width", 0, "override the canvas width")
	flag.IntVar(&opt.height, "height", 0, "override the canvas height")
	flag.IntVar(&opt.parallel, "parallel", 1, "number of goroutines per fill (0 = one per CPU)")
	flag.BoolVar(&opt.list, "list", false, "list the available scenes and exit")
	flag.BoolVar(&opt.verbose, "v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	polyfill.SetLogger(logger)

	if err := run(&opt, logger); err != nil {
		logger.Error("polyfill failed", "error", err)
		os.Exit(1)
	}
}

func run(opt *options, logger *slog.Logger) error {
	scenes, err := available(opt.in)
	if err != nil {
		return err
	}

	if opt.list {
		for _, s := range scenes {
			fmt.Printf("%-28s %4dx%-4d %d ops\n", s.Name, s.Width, s.Height, len(s.Ops))
		}
		return nil
	}
	if opt.export != "" {
		return export(opt.export, scenes)
	}

	var sc *scene.Scene
	for i := range scenes {
		if scenes[i].Name == opt.scene {
			sc = &scenes[i]
			break
		}
	}
	if sc == nil && opt.in != "" && len(scenes) == 1 {
		sc = &scenes[0]
	}
	if sc == nil {
		return fmt.Errorf("scene %q not found", opt.scene)
	}

	if opt.width > 0 {
		sc.Width = opt.width
	}
	if opt.height > 0 {
		sc.Height = opt.height
	}
	if opt.bg != "" {
		bg, err := scene.ParseColor(opt.bg)
		if err != nil {
			return err
		}
		sc.Background = bg
	}

	cv := polyfill.NewCanvas(sc.Width, sc.Height, sc.Background)
	sc.RenderTo(cv, opt.parallel)
	if err := imagefile.Save(cv, opt.out); err != nil {
		return err
	}
	logger.Info("image written", "scene", sc.Name, "file", opt.out,
		"width", sc.Width, "height", sc.Height)

	if opt.pdf != "" {
		if err := pdfout.Write(opt.pdf, sc); err != nil {
			return err
		}
		logger.Info("PDF written", "scene", sc.Name, "file", opt.pdf)
	}
	return nil
}

// available returns the scenes from the named JSON file, or the built-in
// scenes under their full names if fname is empty.
func available(fname string) ([]scene.Scene, error) {
	if fname == "" {
		var scenes []scene.Scene
		for _, name := range scene.Names() {
			s, _ := scene.Lookup(name)
			s.Name = name
			scenes = append(scenes, *s)
		}
		return scenes, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scenes, err := scene.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if len(scenes) == 0 {
		return nil, errors.New(fname + ": no scenes")
	}
	return scenes, nil
}

func export(fname string, scenes []scene.Scene) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return scene.Dump(f, scenes)
}
