package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// GeneratorDescriptor describes a project generator understood by the meta-build tool.
type GeneratorDescriptor struct {
	// Key is the short, lower-case name used on the command line (e.g. "ninja-mc").
	Key string
	// DisplayName is the generator name passed verbatim to the meta-build tool.
	DisplayName string
	// MultiConfig reports whether one generated tree holds several build configurations,
	// with the configuration selected at build time.
	MultiConfig bool
	// Tool is the native build tool the generated project is driven by.
	Tool string
}

// ConfigModel returns a human readable name for the generator's configuration model.
func (g GeneratorDescriptor) ConfigModel() string {
	if g.MultiConfig {
		return "multi-config"
	}
	return "single-config"
}

// Catalog is an immutable, ordered set of generator descriptors.
type Catalog struct {
	entries []GeneratorDescriptor
	byKey   map[string]int
}

// NewCatalog builds a Catalog from the given descriptors.
// Keys must be non-empty, lower-case and unique.
func NewCatalog(descriptors ...GeneratorDescriptor) (*Catalog, error) {
	c := &Catalog{
		entries: make([]GeneratorDescriptor, 0, len(descriptors)),
		byKey:   make(map[string]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Key == "" || d.Key != strings.ToLower(d.Key) {
			return nil, zerr.With(zerr.Wrap(ErrInvalidGeneratorKey, "cannot build catalog"), "key", d.Key)
		}
		if _, exists := c.byKey[d.Key]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateGenerator, "cannot build catalog"), "key", d.Key)
		}
		c.byKey[d.Key] = len(c.entries)
		c.entries = append(c.entries, d)
	}
	return c, nil
}

// Lookup resolves a generator key, ignoring case.
func (c *Catalog) Lookup(key string) (GeneratorDescriptor, bool) {
	i, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return GeneratorDescriptor{}, false
	}
	return c.entries[i], true
}

// All returns the descriptors in declaration order.
func (c *Catalog) All() []GeneratorDescriptor {
	out := make([]GeneratorDescriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the generator keys in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Tools returns the distinct native build tools referenced by the catalog, in declaration order.
func (c *Catalog) Tools() []string {
	seen := make(map[string]bool)
	var tools []string
	for _, e := range c.entries {
		if e.Tool == "" || seen[e.Tool] {
			continue
		}
		seen[e.Tool] = true
		tools = append(tools, e.Tool)
	}
	return tools
}

// DefaultGenerators returns the generators supported out of the box.
func DefaultGenerators() []GeneratorDescriptor {
	return []GeneratorDescriptor{
		{Key: "vs2022", DisplayName: "Visual Studio 17 2022", MultiConfig: true, Tool: "msbuild"},
		{Key: "vs2019", DisplayName: "Visual Studio 16 2019", MultiConfig: true, Tool: "msbuild"},
		{Key: "vs2017", DisplayName: "Visual Studio 15 2017", MultiConfig: true, Tool: "msbuild"},
		{Key: "vs2015", DisplayName: "Visual Studio 14 2015", MultiConfig: true, Tool: "msbuild"},

		{Key: "xcode", DisplayName: "Xcode", MultiConfig: true, Tool: "xcodebuild"},

		{Key: "ninja", DisplayName: "Ninja", Tool: "ninja"},
		{Key: "ninja-mc", DisplayName: "Ninja Multi-Config", MultiConfig: true, Tool: "ninja"},

		{Key: "unix", DisplayName: "Unix Makefiles", Tool: "make"},
		{Key: "unix-cb", DisplayName: "CodeBlocks - Unix Makefiles", Tool: "make"},
		{Key: "unix-eclipse", DisplayName: "Eclipse CDT4 - Unix Makefiles", Tool: "make"},

		{Key: "mingw", DisplayName: "MinGW Makefiles", Tool: "mingw32-make"},
		{Key: "msys", DisplayName: "MSYS Makefiles", Tool: "make"},
		{Key: "nmake", DisplayName: "NMake Makefiles", Tool: "nmake"},
		{Key: "nmake-jom", DisplayName: "NMake Makefiles JOM", Tool: "jom"},
	}
}

// DefaultCatalog returns a Catalog holding DefaultGenerators.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultGenerators()...)
	if err != nil {
		// The built-in table is static; an error here is a programming mistake.
		panic(err)
	}
	return c
}
