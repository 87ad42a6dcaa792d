package platform

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed platforms.toml
var platformsTOML []byte

// ID identifies a judge platform. The zero value is Unclassified.
type ID int

const (
	Unclassified ID = iota
	LeetCode
	CodeForces
	CodeChef
)

// Known lists the classifiable platforms in classification order.
var Known = []ID{LeetCode, CodeForces, CodeChef}

func (id ID) String() string {
	switch id {
	case LeetCode:
		return "leetcode"
	case CodeForces:
		return "codeforces"
	case CodeChef:
		return "codechef"
	default:
		return "unclassified"
	}
}

// ParseID maps a config/CLI key such as "codeforces" to its ID.
func ParseID(s string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, id := range Known {
		if id.String() == key {
			return id, nil
		}
	}
	return Unclassified, fmt.Errorf("unknown platform %q", s)
}

// Info is the static metadata for one platform.
type Info struct {
	ID       ID     `toml:"-"`
	Key      string `toml:"id"`
	Label    string `toml:"label"`
	Fragment string `toml:"fragment"`
	URL      string `toml:"url"`
	Icon     string `toml:"icon"`
	Accent   string `toml:"accent"`
}

type registryFile struct {
	Platforms []Info `toml:"platforms"`
}

// Registry holds platform metadata in classification order.
type Registry struct {
	platforms []Info
}

// NewRegistry builds a registry from the embedded definitions.
func NewRegistry() (*Registry, error) {
	var file registryFile
	if err := toml.Unmarshal(platformsTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing platforms.toml: %w", err)
	}

	r := &Registry{}
	for _, id := range Known {
		info, ok := findByKey(file.Platforms, id.String())
		if !ok {
			return nil, fmt.Errorf("platforms.toml: missing definition for %s", id)
		}
		info.ID = id
		if info.Fragment == "" {
			return nil, fmt.Errorf("platforms.toml: %s has no fragment", id)
		}
		r.platforms = append(r.platforms, info)
	}
	return r, nil
}

// LoadRegistry builds the embedded registry and applies display overrides
// from the user's platforms.toml, if present. An empty path checks the
// default locations.
func LoadRegistry(path string) (*Registry, error) {
	r, err := NewRegistry()
	if err != nil {
		return nil, err
	}

	paths := []string{path}
	if path == "" {
		paths = []string{"~/.config/algosearch/platforms.toml", "./platforms.toml"}
	}

	for _, p := range paths {
		if len(p) >= 2 && p[:2] == "~/" {
			if home, homeErr := os.UserHomeDir(); homeErr == nil {
				p = filepath.Join(home, p[2:])
			}
		}
		data, readErr := os.ReadFile(p)
		if readErr != nil {
			continue
		}
		if err := r.applyOverrides(data); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return r, nil
}

// Default returns the embedded registry. It panics only if the embedded file
// is broken, which the package tests guard against.
func Default() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// applyOverrides merges label/url/icon/accent. Fragments and ordering are
// fixed so classification stays deterministic.
func (r *Registry) applyOverrides(data []byte) error {
	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing platform overrides: %w", err)
	}
	for _, o := range file.Platforms {
		id, err := ParseID(o.Key)
		if err != nil {
			return err
		}
		p := &r.platforms[id-1]
		if o.Label != "" {
			p.Label = o.Label
		}
		if o.URL != "" {
			p.URL = o.URL
		}
		if o.Icon != "" {
			p.Icon = o.Icon
		}
		if o.Accent != "" {
			p.Accent = o.Accent
		}
	}
	return nil
}

// Classify returns the first platform whose fragment occurs in link, or
// Unclassified. Matching ignores case since hostnames are case-insensitive.
func (r *Registry) Classify(link string) ID {
	lower := strings.ToLower(link)
	for _, p := range r.platforms {
		if strings.Contains(lower, p.Fragment) {
			return p.ID
		}
	}
	return Unclassified
}

// Lookup returns the metadata for id.
func (r *Registry) Lookup(id ID) (Info, bool) {
	if id <= Unclassified || int(id) > len(r.platforms) {
		return Info{}, false
	}
	return r.platforms[id-1], true
}

// Label returns the display label for id, falling back to its key.
func (r *Registry) Label(id ID) string {
	if info, ok := r.Lookup(id); ok && info.Label != "" {
		return info.Label
	}
	return id.String()
}

// All returns a copy of the platform list in classification order.
func (r *Registry) All() []Info {
	return append([]Info(nil), r.platforms...)
}

func findByKey(infos []Info, key string) (Info, bool) {
	for _, info := range infos {
		if strings.EqualFold(info.Key, key) {
			return info, true
		}
	}
	return Info{}, false
}
