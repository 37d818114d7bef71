package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/vdf-format/vdf/kv"
)

// Entry is one change at a key path. OldValue is set for remove and
// replace, NewValue for add and replace.
type Entry struct {
	Path     string
	Op       Op
	OldValue kv.Value
	NewValue kv.Value
}

type Stats struct {
	Total    int `json:"total" yaml:"total"`
	Added    int `json:"added" yaml:"added"`
	Removed  int `json:"removed" yaml:"removed"`
	Modified int `json:"modified" yaml:"modified"`
}

type DocumentDiff struct {
	Changes []Entry
}

func (d *DocumentDiff) Empty() bool {
	return len(d.Changes) == 0
}

func (d *DocumentDiff) Stats() Stats {
	s := Stats{Total: len(d.Changes)}
	for i := range d.Changes {
		switch d.Changes[i].Op {
		case OpAdd:
			s.Added++
		case OpRemove:
			s.Removed++
		case OpReplace:
			s.Modified++
		}
	}
	return s
}

func GetStats(d *DocumentDiff) Stats {
	return d.Stats()
}

type entryJSON struct {
	Path     string          `json:"path"`
	Op       Op              `json:"op"`
	OldValue json.RawMessage `json:"oldValue,omitempty"`
	NewValue json.RawMessage `json:"newValue,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	ej := entryJSON{Path: e.Path, Op: e.Op}
	var err error
	if e.OldValue != nil {
		if ej.OldValue, err = kv.MarshalValue(e.OldValue); err != nil {
			return nil, fmt.Errorf("%s oldValue: %w", e.Path, err)
		}
	}
	if e.NewValue != nil {
		if ej.NewValue, err = kv.MarshalValue(e.NewValue); err != nil {
			return nil, fmt.Errorf("%s newValue: %w", e.Path, err)
		}
	}
	return json.Marshal(ej)
}

func (e *Entry) UnmarshalJSON(d []byte) error {
	ej := entryJSON{}
	if err := json.Unmarshal(d, &ej); err != nil {
		return err
	}
	res := Entry{Path: ej.Path, Op: ej.Op}
	var err error
	if len(ej.OldValue) != 0 {
		if res.OldValue, err = kv.UnmarshalValue(ej.OldValue); err != nil {
			return fmt.Errorf("%s oldValue: %w", ej.Path, err)
		}
	}
	if len(ej.NewValue) != 0 {
		if res.NewValue, err = kv.UnmarshalValue(ej.NewValue); err != nil {
			return fmt.Errorf("%s newValue: %w", ej.Path, err)
		}
	}
	*e = res
	return nil
}

type diffJSON struct {
	Changes []Entry `json:"changes"`
	Stats   *Stats  `json:"stats,omitempty"`
}

// MarshalJSON writes {"changes": [...], "stats": {...}}.
func (d *DocumentDiff) MarshalJSON() ([]byte, error) {
	s := d.Stats()
	changes := d.Changes
	if changes == nil {
		changes = []Entry{}
	}
	return json.Marshal(diffJSON{Changes: changes, Stats: &s})
}

// UnmarshalJSON reads the changes; stats are derived and ignored.
func (d *DocumentDiff) UnmarshalJSON(data []byte) error {
	dj := diffJSON{}
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	d.Changes = dj.Changes
	if d.Changes == nil {
		d.Changes = []Entry{}
	}
	return nil
}

func (e Entry) MarshalYAML() (any, error) {
	res := yaml.MapSlice{
		{Key: "path", Value: e.Path},
		{Key: "op", Value: string(e.Op)},
	}
	for _, f := range []struct {
		name string
		v    kv.Value
	}{{"oldValue", e.OldValue}, {"newValue", e.NewValue}} {
		if f.v == nil {
			continue
		}
		y, err := kv.YAMLValue(f.v)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", e.Path, f.name, err)
		}
		res = append(res, yaml.MapItem{Key: f.name, Value: y})
	}
	return res, nil
}

func (d *DocumentDiff) MarshalYAML() (any, error) {
	changes := make([]any, len(d.Changes))
	for i := range d.Changes {
		y, err := d.Changes[i].MarshalYAML()
		if err != nil {
			return nil, err
		}
		changes[i] = y
	}
	return yaml.MapSlice{
		{Key: "changes", Value: changes},
		{Key: "stats", Value: d.Stats()},
	}, nil
}

// ToYAML encodes d in the same shape as its JSON form.
func ToYAML(d *DocumentDiff) ([]byte, error) {
	y, err := d.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(y)
}

// FromYAML decodes a diff written by ToYAML.
func FromYAML(data []byte) (*DocumentDiff, error) {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	res := &DocumentDiff{Changes: []Entry{}}
	for _, item := range ms {
		if item.Key != "changes" {
			continue
		}
		changes, ok := item.Value.([]any)
		if !ok && item.Value != nil {
			return nil, fmt.Errorf("changes: expected a sequence, got %T", item.Value)
		}
		for i, c := range changes {
			e, err := entryFromYAML(c)
			if err != nil {
				return nil, fmt.Errorf("changes[%d]: %w", i, err)
			}
			res.Changes = append(res.Changes, e)
		}
	}
	return res, nil
}

func entryFromYAML(y any) (Entry, error) {
	ms, ok := y.(yaml.MapSlice)
	if !ok {
		return Entry{}, fmt.Errorf("expected a mapping, got %T", y)
	}
	e := Entry{}
	for _, item := range ms {
		var err error
		switch item.Key {
		case "path":
			e.Path = fmt.Sprint(item.Value)
		case "op":
			err = e.Op.UnmarshalText([]byte(fmt.Sprint(item.Value)))
		case "oldValue":
			e.OldValue, err = kv.FromYAMLValue(item.Value)
		case "newValue":
			e.NewValue, err = kv.FromYAMLValue(item.Value)
		}
		if err != nil {
			return Entry{}, fmt.Errorf("%v: %w", item.Key, err)
		}
	}
	return e, nil
}
