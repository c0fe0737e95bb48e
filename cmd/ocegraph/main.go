// Command ocegraph builds a graph from a network inventory and prints its
// vertex count. With -from it also prints the vertices reachable from one
// vertex, one line per breadth-first level.
//
// A source given on the command line wins over the inventory named in the
// configuration file, which is used only when no flag selects a source.
//
// Usage:
//
//	ocegraph -sample
//	ocegraph -sample -from 1 -depth 1
//	ocegraph -edges "4: 0-1, 1-2, 2-3, 2-2"
//	ocegraph -inventory lab.hcl -store ./db -save lab
//	ocegraph -store ./db -load lab -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ocegraph/bfs"
	"github.com/katalvlaran/ocegraph/config"
	"github.com/katalvlaran/ocegraph/connector"
	"github.com/katalvlaran/ocegraph/edgelist"
	"github.com/katalvlaran/ocegraph/inventory"
	"github.com/katalvlaran/ocegraph/notation"
	"github.com/katalvlaran/ocegraph/store"
	"github.com/sirupsen/logrus"
)

var (
	errSourceCount = errors.New("exactly one of -inventory, -edges, -sample or -load is required")
	errNeedStore   = errors.New("-save and -load require a store path")
	errSaveSource  = errors.New("-save requires an inventory source")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ocegraph:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ocegraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  = fs.String("config", "", "YAML configuration file")
		invPath  = fs.String("inventory", "", "inventory document (.yaml, .yml or .hcl)")
		edges    = fs.String("edges", "", `edge notation, e.g. "4: 0-1, 1-2"`)
		sample   = fs.Bool("sample", false, "use the built-in sample topology")
		directed = fs.Bool("directed", false, "build a directed graph")
		dbPath   = fs.String("store", "", "snapshot store directory")
		save     = fs.String("save", "", "save the inventory under this name")
		load     = fs.String("load", "", "load the inventory saved under this name")
		from     = fs.Int("from", -1, "print the levels reachable from this vertex")
		depth    = fs.Int("depth", 0, "with -from, stop after this many levels (0 = no limit)")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *directed {
		cfg.Directed = true
	}
	if *dbPath != "" {
		cfg.StorePath = *dbPath
	}

	log := logrus.New()
	log.SetOutput(stderr)
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if *verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)

	sources := 0
	for _, set := range []bool{*invPath != "", *edges != "", *sample, *load != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0 && cfg.Inventory != "":
		*invPath = cfg.Inventory
	case sources != 1:
		return errSourceCount
	}
	if (*save != "" || *load != "") && cfg.StorePath == "" {
		return errNeedStore
	}

	var st *store.Store
	if *save != "" || *load != "" {
		if st, err = store.Open(store.Config{Path: cfg.StorePath, Logger: log}); err != nil {
			return err
		}
		defer st.Close()
	}

	var (
		src connector.Source
		inv *inventory.Inventory
	)
	switch {
	case *edges != "":
		g, err := notation.Parse(*edges)
		if err != nil {
			return err
		}
		src = g
	case *sample:
		inv = inventory.Sample()
	case *load != "":
		if inv, err = st.Load(*load); err != nil {
			return err
		}
	default:
		if inv, err = inventory.LoadFile(*invPath); err != nil {
			return err
		}
	}
	if inv != nil {
		src = inv
	}

	if *save != "" {
		if inv == nil {
			return errSaveSource
		}
		if err = st.Save(*save, inv); err != nil {
			return err
		}
	}

	c := connector.New(connector.Config{
		Directed:    cfg.Directed,
		Constructor: edgelist.NewCoreConstructor(cfg.GraphOptions()...),
		Logger:      log,
	})
	resp, err := c.Send(context.Background(), src)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, resp)

	if *from < 0 {
		return nil
	}
	tree, err := c.Reach(context.Background(), src, *from, bfs.WithMaxDepth(*depth))
	if err != nil {
		return err
	}
	for d, level := range tree.Levels() {
		ids := make([]string, len(level))
		for i, v := range level {
			ids[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(stdout, "depth %d: %s\n", d, strings.Join(ids, " "))
	}

	return nil
}
