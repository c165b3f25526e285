// Package config loads a typeset.Paragraph from a small YAML document,
// the way bufbuild-protocompile's code generator reads structured
// configuration via gopkg.in/yaml.v3 instead of hand-rolled key=value
// scanning. Dimen-bearing fields are plain textual notation, parsed
// through unitlang against a UnitSystem derived from the document's own
// em/ex settings, with one unit per point.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/typeset/typeset"
	"github.com/ByLCY/typeset/unitlang"
)

// Document is the on-disk YAML shape. Every dimension field is textual
// unitlang notation; Units gives the em/ex scale used to resolve them.
type Document struct {
	Units struct {
		Em float64 `yaml:"em"`
		Ex float64 `yaml:"ex"`
	} `yaml:"units"`
	HSize         string `yaml:"hsize"`
	Tolerance     int    `yaml:"tolerance"`
	LinePenalty   int    `yaml:"linepenalty"`
	AdjDemerits   int    `yaml:"adjdemerits"`
	LeftSkip      string `yaml:"leftskip"`
	RightSkip     string `yaml:"rightskip"`
	ParFillSkip   string `yaml:"parfillskip"`
	BaselineSkip  string `yaml:"baselineskip"`
	LineSkip      string `yaml:"lineskip"`
	LineSkipLimit string `yaml:"lineskiplimit"`
	HangIndent    string `yaml:"hangindent"`
	HangAfter     int    `yaml:"hangafter"`
	Parshape      string `yaml:"parshape"`
}

// defaultDocument mirrors NewParagraph's TeX plain-format defaults so a
// YAML file only needs to override what it cares about.
func defaultDocument() Document {
	d := Document{
		HSize:         "345pt",
		Tolerance:     200,
		LinePenalty:   10,
		AdjDemerits:   10000,
		LeftSkip:      "0pt",
		RightSkip:     "0pt",
		ParFillSkip:   "0pt plus 1fil",
		BaselineSkip:  "12pt",
		LineSkip:      "1pt",
		LineSkipLimit: "0pt",
		HangAfter:     1,
	}
	d.Units.Em = 10
	d.Units.Ex = 5
	return d
}

// Load reads path as YAML and returns a typeset.Paragraph built from it,
// falling back to TeX plain-format defaults for any field left empty.
func Load(path string) (*typeset.Paragraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	doc := defaultDocument()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return FromDocument(doc)
}

// FromDocument resolves a Document's textual fields into a typeset.Paragraph.
func FromDocument(doc Document) (*typeset.Paragraph, error) {
	units := typeset.DefaultUnitSystem(1, doc.Units.Em, doc.Units.Ex)

	p := typeset.NewParagraph()
	p.Tolerance = float64(doc.Tolerance)
	p.LinePenalty = doc.LinePenalty
	p.AdjDemerits = doc.AdjDemerits
	p.HangAfter = doc.HangAfter

	var err error
	if p.HSize, err = unitlang.ParseDimen(doc.HSize, units); err != nil {
		return nil, err
	}
	if p.LeftSkip, err = unitlang.ParseGlue(doc.LeftSkip, units); err != nil {
		return nil, err
	}
	if p.RightSkip, err = unitlang.ParseGlue(doc.RightSkip, units); err != nil {
		return nil, err
	}
	if p.ParFillSkip, err = unitlang.ParseGlue(doc.ParFillSkip, units); err != nil {
		return nil, err
	}
	if p.BaselineSkip, err = unitlang.ParseGlue(doc.BaselineSkip, units); err != nil {
		return nil, err
	}
	if p.LineSkip, err = unitlang.ParseGlue(doc.LineSkip, units); err != nil {
		return nil, err
	}
	if p.LineSkipLimit, err = unitlang.ParseDimen(doc.LineSkipLimit, units); err != nil {
		return nil, err
	}
	if doc.HangIndent != "" {
		if p.HangIndent, err = unitlang.ParseDimen(doc.HangIndent, units); err != nil {
			return nil, err
		}
	}
	if doc.Parshape != "" {
		if p.Parshape, err = unitlang.ParseParshape(doc.Parshape, units); err != nil {
			return nil, err
		}
	}
	return p, nil
}
