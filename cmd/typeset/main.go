// Command typeset reads a plain-text paragraph, typesets it against a
// YAML configuration, and renders the result as a debug PDF, mirroring
// the teacher's flag-driven "parse, layout, render" pipeline.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rivo/uniseg"

	"github.com/ByLCY/typeset/config"
	"github.com/ByLCY/typeset/metrics"
	"github.com/ByLCY/typeset/renderer"
	canvasrenderer "github.com/ByLCY/typeset/renderer/canvas"
	"github.com/ByLCY/typeset/typeset"
)

func main() {
	input := flag.String("in", "examples/demo.txt", "path to the plain-text paragraph")
	output := flag.String("out", "output/demo.pdf", "path to write the rendered debug PDF")
	configPath := flag.String("config", "", "path to a YAML paragraph configuration (defaults to plain-format values)")
	debugPath := flag.String("debug", "", "path to write a JSON dump of the assembled vertical list")
	pointSize := flag.Float64("pointsize", 10, "point size used by the monospace demo font")
	flag.Parse()

	var r renderer.Renderer = canvasrenderer.NewRenderer()
	if err := run(*input, *output, *configPath, *debugPath, *pointSize, r); err != nil {
		log.Fatalf("typeset: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

func run(inputPath, outputPath, configPath, debugPath string, pointSize float64, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer must not be nil")
	}

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading paragraph file %s: %w", inputPath, err)
	}

	var p *typeset.Paragraph
	if configPath != "" {
		p, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", configPath, err)
		}
	} else {
		p = typeset.NewParagraph()
	}

	provider := metrics.NewMonospace(pointSize)
	hlist := textToHList(string(text), provider)
	p.Prepare(&hlist)

	vlist, err := p.Create(hlist)
	if err != nil {
		return fmt.Errorf("typesetting paragraph: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(vlist, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := r.Render(vlist); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if canvasR, ok := r.(*canvasrenderer.Renderer); ok {
		if err := os.WriteFile(outputPath, canvasR.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing pdf file: %w", err)
		}
	}
	return nil
}

// textToHList splits text into space-separated words and grapheme
// clusters within each word, building a Char box per code point of each
// cluster and a stretchable interword glue between words. No shaping is performed:
// provider supplies pre-measured advance widths per code point.
func textToHList(text string, provider metrics.Provider) typeset.List {
	var hlist typeset.List
	gr := uniseg.NewGraphemes(text)
	pendingSpace := false
	for gr.Next() {
		cluster := gr.Runes()
		if len(cluster) == 1 && (cluster[0] == ' ' || cluster[0] == '\n' || cluster[0] == '\t') {
			pendingSpace = true
			continue
		}
		if pendingSpace && len(hlist) > 0 {
			w, _, _, _ := provider.Metrics(0, ' ')
			hlist = append(hlist, &typeset.Glue{Space: w, Stretch: w / 2, Shrink: w / 3})
		}
		pendingSpace = false
		for _, c := range cluster {
			width, height, depth, italic := provider.Metrics(0, c)
			hlist = append(hlist, typeset.NewChar(0, c, width, height, depth, italic))
		}
	}
	return hlist
}

func writeDebug(vlist typeset.List, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("creating debug directory: %w", err)
	}
	type debugNode struct {
		Kind  string  `json:"kind"`
		Width float64 `json:"width,omitempty"`
		Space float64 `json:"space,omitempty"`
	}
	var nodes []debugNode
	for _, n := range vlist {
		switch v := n.(type) {
		case *typeset.Box:
			nodes = append(nodes, debugNode{Kind: "box", Width: v.Width})
		case *typeset.Glue:
			nodes = append(nodes, debugNode{Kind: "glue", Space: v.Space})
		case *typeset.Kern:
			nodes = append(nodes, debugNode{Kind: "kern", Space: v.Space})
		}
	}
	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling debug JSON: %w", err)
	}
	if err := os.WriteFile(debugPath, data, 0o644); err != nil {
		return fmt.Errorf("writing debug JSON: %w", err)
	}
	return nil
}
