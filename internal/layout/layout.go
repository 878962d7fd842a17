// Package layout describes the demo component hierarchy: one container
// holding labelled lists of items, loaded from YAML.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/focus-tree/internal/focus"
	"gopkg.in/yaml.v3"
)

// RootPath is the handle of the outer container.
const RootPath Path = "app"

// ReservedKeys are bound by the viewer and cannot be used as list keys.
const ReservedKeys = "inpqx/?[]"

// Layout is the initial content of the demo.
type Layout struct {
	Title string `yaml:"title"`
	Lists []List `yaml:"lists"`
}

// List is one column of items. Key is the single character that appends a
// new item to it.
type List struct {
	Key   string   `yaml:"key"`
	Label string   `yaml:"label"`
	Items []string `yaml:"items"`
}

// Region is one registrable element of a layout.
type Region struct {
	ID        focus.ID
	Path      Path
	Label     string
	List      string
	Focusable bool
}

// Default returns the three-list layout used when no file is configured.
func Default() Layout {
	return Layout{
		Title: "focus tree",
		Lists: []List{
			{Key: "a", Label: "List A", Items: []string{"alpha", "apricot"}},
			{Key: "b", Label: "List B", Items: []string{"bravo"}},
			{Key: "c", Label: "List C"},
		},
	}
}

// Load reads the layout at path. An empty path yields Default.
func Load(path string) (Layout, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: reading %s: %w", path, err)
	}
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("layout: parsing %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	return l, nil
}

// Validate checks that every list has a label and a distinct,
// single-character, unreserved key.
func (l Layout) Validate() error {
	if len(l.Lists) == 0 {
		return errors.New("at least one list is required")
	}
	seen := make(map[string]bool, len(l.Lists))
	for i, list := range l.Lists {
		if utf8.RuneCountInString(list.Key) != 1 {
			return fmt.Errorf("list %d: key must be a single character, got %q", i, list.Key)
		}
		if strings.ContainsAny(list.Key, ReservedKeys) {
			return fmt.Errorf("list %d: key %q is reserved", i, list.Key)
		}
		if seen[list.Key] {
			return fmt.Errorf("list %d: duplicate key %q", i, list.Key)
		}
		seen[list.Key] = true
		if strings.TrimSpace(list.Label) == "" {
			return fmt.Errorf("list %q: label cannot be empty", list.Key)
		}
	}
	return nil
}

// ItemCount returns the number of items across all lists.
func (l Layout) ItemCount() int {
	n := 0
	for _, list := range l.Lists {
		n += len(list.Items)
	}
	return n
}

// Regions returns every region of l with fresh ids, innermost first: all
// items, then the lists, then the container. Registering them in this order
// makes every enclosing region adopt what was registered before it.
func (l Layout) Regions() []Region {
	regions := make([]Region, 0, l.ItemCount()+len(l.Lists)+1)
	for _, list := range l.Lists {
		for i, label := range list.Items {
			regions = append(regions, ItemRegion(list.Key, i+1, label))
		}
	}
	for _, list := range l.Lists {
		regions = append(regions, Region{
			ID:    focus.NewID(),
			Path:  RootPath.Child(list.Key),
			Label: list.Label,
			List:  list.Key,
		})
	}
	title := l.Title
	if title == "" {
		title = string(RootPath)
	}
	return append(regions, Region{ID: focus.NewID(), Path: RootPath, Label: title})
}

// ItemRegion builds the region of the seq-th item of list.
func ItemRegion(list string, seq int, label string) Region {
	return Region{
		ID:        focus.NewID(),
		Path:      RootPath.Child(list).Child(strconv.Itoa(seq)),
		Label:     label,
		List:      list,
		Focusable: true,
	}
}

// Command returns the registration command for r.
func (r Region) Command() focus.Command {
	return focus.Register(r.ID, r.Path, r.Focusable)
}
