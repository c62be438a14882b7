package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/value"
)

var (
	// ErrNotFound is returned when no selection has the requested name.
	ErrNotFound = errors.New("selection not found")
	// ErrNameRequired is returned when saving or loading an unnamed selection.
	ErrNameRequired = errors.New("selection name required")
)

// Selection is a committed picker value saved under a name.
type Selection struct {
	Name    string            `json:"name"`
	Mode    value.ReturnMode  `json:"mode"`
	View    dates.Granularity `json:"view,omitempty"`
	From    time.Time         `json:"from"`
	To      time.Time         `json:"to,omitempty"`
	SavedAt time.Time         `json:"savedAt"`
}

// NewSelection captures v, as emitted with mode, under name.
func NewSelection(name string, mode value.ReturnMode, view dates.Granularity, v value.Value, now time.Time) *Selection {
	s := &Selection{
		Name:    strings.TrimSpace(name),
		Mode:    mode,
		View:    view,
		From:    v.From(),
		SavedAt: now,
	}
	if v.IsPair() {
		s.To = v.To()
	}
	return s
}

// Value rebuilds the saved value.
func (s *Selection) Value() value.Value {
	switch {
	case s.From.IsZero():
		return value.Absent()
	case s.To.IsZero():
		return value.Point(s.From)
	default:
		return value.Pair(s.From, s.To)
	}
}

// Persistence defines the persistence contract for saved selections.
type Persistence interface {
	Save(s *Selection) error
	Get(name string) (*Selection, error)
	List(ctx context.Context) []*Selection
	Delete(name string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*Selection, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	s := &Selection{}
	if err := json.Unmarshal(val, s); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = fromKey(key)
	}
	return s, nil
}

func (p *persistence) Save(s *Selection) error {
	if s == nil || strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := p.d.Write(toKey(s.Name), data); err != nil {
		return fmt.Errorf("store: save %q: %w", s.Name, err)
	}
	return nil
}

func (p *persistence) Get(name string) (*Selection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	key := toKey(name)
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.read(key)
}

func (p *persistence) List(ctx context.Context) []*Selection {
	all := make([]*Selection, 0)
	for key := range p.d.Keys(ctx.Done()) {
		s, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, s)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func (p *persistence) Delete(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	key := toKey(name)
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.d.Erase(key)
}

const selectionsDir = "selections"

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{selectionsDir},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// toKey makes a file-safe key from a selection name.
func toKey(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.TrimSpace(name)))
}

func fromKey(key string) string {
	name, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return fmt.Sprintf("fromKey: %s", err)
	}
	return string(name)
}
