// Package schema loads the TL JSON schema so the dispatcher can reject calls
// to methods the remote service does not expose.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Param is a constructor or method parameter.
type Param struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Subtype string `json:"subtype,omitempty"`
}

// Constructor describes a TL constructor or method.
type Constructor struct {
	ID int32
	// Predicate is the constructor name, or the method name for methods.
	Predicate string
	Type      string
	Params    []Param
}

// id accepts both the quoted and the bare form found in published schemas.
type id int32

func (i *id) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("constructor id %s: %w", b, err)
	}
	*i = id(int32(n))
	return nil
}

type rawEntry struct {
	ID        id      `json:"id"`
	Predicate string  `json:"predicate"`
	Method    string  `json:"method"`
	Type      string  `json:"type"`
	Params    []Param `json:"params"`
}

type rawSchema struct {
	Constructors []rawEntry `json:"constructors"`
	Methods      []rawEntry `json:"methods"`
}

func newConstructor(e rawEntry) Constructor {
	c := Constructor{
		ID:        int32(e.ID),
		Predicate: e.Predicate,
		Type:      e.Type,
		Params:    make([]Param, 0, len(e.Params)),
	}
	if e.Method != "" {
		c.Predicate = e.Method
	}
	for _, p := range e.Params {
		p.Type, p.Subtype = splitVector(p.Type)
		c.Params = append(c.Params, p)
	}
	return c
}

// splitVector normalizes vector parameter types into a container type and
// an element subtype: Vector<long> becomes "Vector t" of long, and the bare
// vector<%Message> becomes "vector" of message.
func splitVector(t string) (string, string) {
	if !strings.HasSuffix(t, ">") {
		return t, ""
	}
	switch {
	case strings.HasPrefix(t, "Vector<"):
		return "Vector t", t[len("Vector<") : len(t)-1]
	case strings.HasPrefix(t, "vector<"):
		inner := strings.TrimPrefix(t[len("vector<"):len(t)-1], "%")
		return "vector", strings.ToLower(inner)
	}
	return t, ""
}

// Registry indexes a loaded schema.
type Registry struct {
	byID    map[int32]*Constructor
	byName  map[string]*Constructor
	methods map[string]*Constructor
}

// Load parses a TL JSON schema.
func Load(r io.Reader) (*Registry, error) {
	var raw rawSchema
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	reg := &Registry{
		byID:    make(map[int32]*Constructor, len(raw.Constructors)),
		byName:  make(map[string]*Constructor, len(raw.Constructors)),
		methods: make(map[string]*Constructor, len(raw.Methods)),
	}
	for _, e := range raw.Constructors {
		c := newConstructor(e)
		reg.byID[c.ID] = &c
		reg.byName[c.Predicate] = &c
	}
	for _, e := range raw.Methods {
		if e.Method == "" {
			return nil, fmt.Errorf("method with id %d has no name", e.ID)
		}
		c := newConstructor(e)
		reg.methods[c.Predicate] = &c
	}
	return reg, nil
}

// LoadFile parses the schema stored at path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Constructor finds a constructor by id.
func (r *Registry) Constructor(id int32) (*Constructor, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Predicate finds a constructor by name.
func (r *Registry) Predicate(name string) (*Constructor, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Method finds a method by name.
func (r *Registry) Method(name string) (*Constructor, bool) {
	c, ok := r.methods[name]
	return c, ok
}

// HasMethod reports whether name is a method of the schema.
func (r *Registry) HasMethod(name string) bool {
	_, ok := r.methods[name]
	return ok
}

// Len returns the number of constructors and methods.
func (r *Registry) Len() (constructors, methods int) {
	return len(r.byID), len(r.methods)
}
