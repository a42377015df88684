package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-theft-craft/schematic/internal/anvil"
	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/catalog"
	"github.com/go-theft-craft/schematic/internal/schematic"
	"github.com/go-theft-craft/schematic/internal/source"
	"github.com/go-theft-craft/schematic/internal/world"
)

func (a *app) flagSet(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: schematic %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

// load opens and decodes path, logging how many voxels were recovered.
func (a *app) load(path string) (*schematic.Result, error) {
	f, err := source.Open(path, a.cfg.TempDir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if f.Repacked() {
		a.log.Info("repacked raw tag file", "path", path)
	}

	dec := &schematic.Decoder{Log: a.log}
	res, err := dec.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if res.HadErrors() {
		a.log.Warn("schematic decoded with recovered errors", "path", path, "count", len(res.Recovered))
	}
	return res, nil
}

func runInfo(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("info", "<file>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	res, err := a.load(fs.Arg(0))
	if err != nil {
		return err
	}
	return a.printSummary(res)
}

// printSummary writes the stack size and per-name block counts, most common
// first.
func (a *app) printSummary(res *schematic.Result) error {
	w := a.out
	s := res.Stack
	s.Connect(a.cfg.CrossLayer)

	fmt.Fprintf(w, "size: %d x %d, %d layers\n", s.Width(), s.Height(), s.Layers())
	fmt.Fprintf(w, "recovered errors: %d\n", len(res.Recovered))

	counts := make(map[string]int)
	linked := 0
	s.ForEach(func(_, _, _ int, b block.Block) {
		if b.IsAir() {
			return
		}
		counts[catalog.Name(b)]++
		if b.Connections() != block.NoDirections {
			linked++
		}
	})
	fmt.Fprintf(w, "connected wires: %d\n", linked)

	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, n := range names {
		if _, err := fmt.Fprintf(w, "%8d  %s\n", counts[n], n); err != nil {
			return err
		}
	}
	return nil
}

func runConvert(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("convert", "<file>")
	out := fs.String("o", "", "output file (default: overwrite input)")
	rotate := fs.String("rotate", "", "quarter turns: cw, ccw or 180")
	trim := fs.Bool("trim", false, "drop surrounding air")
	crop := fs.String("crop", "", "cut top,bottom,north,east,south,west")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	in := fs.Arg(0)
	res, err := a.load(in)
	if err != nil {
		return err
	}
	s := res.Stack

	if err := applyRotate(s, *rotate); err != nil {
		return err
	}
	if *crop != "" {
		c, err := parseCrop(*crop)
		if err != nil {
			return err
		}
		if err := s.CutOff(c[0], c[1], c[2], c[3], c[4], c[5]); err != nil {
			return fmt.Errorf("crop: %w", err)
		}
	}
	if *trim {
		s.Trim()
	}

	dst := *out
	if dst == "" {
		dst = in
	}
	if err := source.Save(dst, s); err != nil {
		return fmt.Errorf("save %s: %w", dst, err)
	}
	a.log.Info("wrote schematic", "path", dst,
		"width", s.Width(), "height", s.Height(), "layers", s.Layers())
	return nil
}

func applyRotate(s *world.Stack, rotate string) error {
	switch rotate {
	case "":
	case "cw":
		s.Turn(true)
	case "ccw":
		s.Turn(false)
	case "180":
		s.Turn(true)
		s.Turn(true)
	default:
		return fmt.Errorf("unknown rotation %q", rotate)
	}
	return nil
}

func parseCrop(v string) ([6]int, error) {
	var c [6]int
	return c, parseInts("crop", v, c[:])
}

// parseInts fills dst from the comma separated integers in v.
func parseInts(name, v string, dst []int) error {
	parts := strings.Split(v, ",")
	if len(parts) != len(dst) {
		return fmt.Errorf("%s wants %d comma separated values, got %q", name, len(dst), v)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("%s value %q: %w", name, p, err)
		}
		dst[i] = n
	}
	return nil
}

func runExport(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("export", "<file>")
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	res, err := a.load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *out == "" {
		return schematic.WriteText(a.out, res.Stack)
	}
	return source.WriteFile(*out, func(w io.Writer) error {
		return schematic.WriteText(w, res.Stack)
	})
}

func runFetch(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("fetch", "<source>")
	dir := fs.String("dir", a.cfg.CacheDir, "download directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	f := &source.Fetcher{Dir: *dir, Log: a.log}
	path, err := f.Fetch(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	res, err := a.load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved: %s\n", path)
	return a.printSummary(res)
}

func runPlace(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("place", "<file>")
	at := fs.String("at", "0,64,0", "world x,y,z of the schematic's lowest north-west corner")
	dir := fs.String("dir", "region", "region directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	var pos [3]int
	if err := parseInts("at", *at, pos[:]); err != nil {
		return err
	}

	res, err := a.load(fs.Arg(0))
	if err != nil {
		return err
	}
	chunks, err := anvil.Place(res.Stack, anvil.Origin{X: pos[0], Y: pos[1], Z: pos[2]})
	if err != nil {
		return fmt.Errorf("place: %w", err)
	}
	paths, err := anvil.Save(*dir, chunks)
	if err != nil {
		return fmt.Errorf("save regions: %w", err)
	}
	a.log.Info("placed schematic", "chunks", len(chunks), "regions", len(paths))
	for _, p := range paths {
		fmt.Fprintln(a.out, p)
	}
	return nil
}
