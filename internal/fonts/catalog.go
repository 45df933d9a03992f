// Package fonts holds the catalog of typefaces a card set can be printed in.
package fonts

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fonts.yaml
var builtin []byte

// ErrUnknownFont is returned when a font name is not in the catalog.
var ErrUnknownFont = errors.New("unknown font")

// Font is a selectable typeface.
type Font struct {
	Name   string `yaml:"name" json:"name"`
	Family string `yaml:"family" json:"family"`
}

// System reports whether the family is a generic CSS family that needs no
// stylesheet.
func (f Font) System() bool {
	return !strings.Contains(f.Family, "'")
}

// StylesheetURL returns the Google Fonts stylesheet for the font, or "" for
// system fonts.
func (f Font) StylesheetURL() string {
	if f.System() {
		return ""
	}
	q := url.Values{}
	q.Set("family", f.Name+":wght@400;700")
	q.Set("display", "swap")
	return "https://fonts.googleapis.com/css2?" + q.Encode()
}

// Catalog is an ordered, read-only list of fonts.
type Catalog struct {
	fonts       []Font
	byName      map[string]Font
	defaultName string
}

type catalogFile struct {
	Default string `yaml:"default"`
	Fonts   []Font `yaml:"fonts"`
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing font catalog: %w", err)
	}
	if len(f.Fonts) == 0 {
		return nil, errors.New("font catalog is empty")
	}

	c := &Catalog{byName: make(map[string]Font, len(f.Fonts))}
	for _, font := range f.Fonts {
		if font.Name == "" || font.Family == "" {
			return nil, fmt.Errorf("font catalog entry %+v is incomplete", font)
		}
		if _, dup := c.byName[font.Name]; dup {
			return nil, fmt.Errorf("font %q listed twice", font.Name)
		}
		c.fonts = append(c.fonts, font)
		c.byName[font.Name] = font
	}

	c.defaultName = f.Default
	if c.defaultName == "" {
		c.defaultName = c.fonts[0].Name
	}
	if _, ok := c.byName[c.defaultName]; !ok {
		return nil, fmt.Errorf("default font %q: %w", c.defaultName, ErrUnknownFont)
	}
	return c, nil
}

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		// ALLOW-PANIC: the embedded catalog is part of the build
		panic(err)
	}
	return c
}

// All returns the fonts in catalog order.
func (c *Catalog) All() []Font {
	out := make([]Font, len(c.fonts))
	copy(out, c.fonts)
	return out
}

// Default returns the font used for new sessions.
func (c *Catalog) Default() Font {
	return c.byName[c.defaultName]
}

// Lookup finds a font by its display name.
func (c *Catalog) Lookup(name string) (Font, error) {
	f, ok := c.byName[name]
	if !ok {
		return Font{}, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return f, nil
}

// WithDefault returns a copy of c whose default font is name.
func (c *Catalog) WithDefault(name string) (*Catalog, error) {
	if _, err := c.Lookup(name); err != nil {
		return nil, err
	}
	cp := *c
	cp.defaultName = name
	return &cp, nil
}
