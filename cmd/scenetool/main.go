// scenetool is a CLI utility for inspecting and converting scene documents.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/pcscene/internal/codec"
	"github.com/Faultbox/pcscene/internal/config"
	"github.com/Faultbox/pcscene/internal/mockup"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "validate", "check":
		err = cmdValidate(os.Stdout, args)
	case "convert":
		err = cmdConvert(os.Stdout, args)
	case "mockup":
		err = cmdMockup(os.Stdout, args)
	case "config":
		err = cmdConfig(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scenetool - scene document utility

Usage:
  scenetool <command> [options]

Commands:
  info <scene>                Show groups, holders and clips
  validate <scene>...         Load each document and report problems
  convert <in> <out>          Rewrite a document in the format of <out>
  mockup [-f] <out>           Write the desktop PC mockup scene
  config [out]                Print the default viewer config, or write it to [out]

Formats are chosen by extension: .yaml .yml .json .toml

Examples:
  scenetool info scenes/pc.yaml
  scenetool convert scenes/pc.yaml scenes/pc.toml
  scenetool mockup scenes/pc.json`)
}

func cmdInfo(w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: scenetool info <scene>")
	}

	doc, err := codec.Load(args[0])
	if err != nil {
		return err
	}
	root, err := codec.Deserialize(doc)
	if err != nil {
		return err
	}
	defer root.Dispose()
	clips, err := codec.ClipsFromDocs(doc.Animations)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Scene:   %s\n", root.Name())
	fmt.Fprintf(w, "ID:      %s\n", doc.ID)
	fmt.Fprintf(w, "Version: %d\n", doc.Version)
	fmt.Fprintf(w, "Groups:  %d\n", root.Len())
	fmt.Fprintln(w)

	for _, g := range root.Groups() {
		flags := ""
		if g.Hidden() {
			flags += " hidden"
		}
		if !g.Transform().Enabled {
			flags += " disabled"
		}
		fmt.Fprintf(w, "  %s (%d holders)%s\n", g.Name(), g.Len(), flags)
		for _, id := range g.IDs() {
			h, _ := g.Holder(id)
			fmt.Fprintf(w, "    %3d %-12s %4d verts %4d tris %4d edges\n",
				id, h.Name(), len(h.Vertices())/3, len(h.Triangles())/3, len(h.Edges())/2)
		}
	}

	if lo, hi, ok := root.Bounds(); ok {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Bounds:  (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
			lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
	}

	if clips.Len() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Clips:")
		for _, b := range clips.Bindings() {
			fmt.Fprintf(w, "  %-16s -> %-12s %3d frames %6.2fs loop=%t\n",
				b.Clip.Name, b.Target, b.Clip.Len(), b.Clip.Duration(), b.Clip.Loop)
		}
	}
	return nil
}

func cmdValidate(w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: scenetool validate <scene>...")
	}

	failed := 0
	for _, path := range args {
		root, clips, err := codec.LoadScene(path)
		if err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "ok   %s (%d groups, %d clips)\n", path, root.Len(), clips.Len())
		root.Dispose()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents invalid", failed, len(args))
	}
	return nil
}

func cmdConvert(w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: scenetool convert <in> <out>")
	}
	in, out := args[0], args[1]

	if _, err := codec.FormatFromPath(out); err != nil {
		return err
	}
	root, clips, err := codec.LoadScene(in)
	if err != nil {
		return err
	}
	defer root.Dispose()

	if err := codec.SaveScene(out, root, clips); err != nil {
		return err
	}
	fmt.Fprintf(w, "Converted %s -> %s\n", in, out)
	return nil
}

func cmdMockup(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("mockup", flag.ContinueOnError)
	force := fs.Bool("f", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: scenetool mockup [-f] <out>")
	}
	out := fs.Arg(0)

	if _, err := os.Stat(out); err == nil && !*force {
		return fmt.Errorf("%s exists, use -f to overwrite", out)
	}

	root, err := mockup.BuildPC()
	if err != nil {
		return err
	}
	defer root.Dispose()

	if err := codec.SaveScene(out, root, nil); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s (%s)\n", out, strings.Join(root.Names(), ", "))
	return nil
}

func cmdConfig(w io.Writer, args []string) error {
	cfg := config.Default()
	if len(args) == 0 {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", args[0])
	return nil
}
