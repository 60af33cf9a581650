package layers

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/molkit/editor"
)

// Sentinel errors.
var (
	// ErrLayerNotFound is returned for an id that names no layer.
	ErrLayerNotFound = errors.New("layers: layer not found")

	// ErrNilEditor is returned when Add is given a nil editor.
	ErrNilEditor = errors.New("layers: nil editor")
)

// Row is the display view of one layer.
type Row struct {
	ID     uuid.UUID
	Name   string
	Atoms  int
	Bonds  int
	Groups int
	Active bool
}

type layer struct {
	id   uuid.UUID
	name string
	ed   *editor.Editor
}

// Option configures a Model.
type Option func(*Model)

// WithIDSource replaces uuid.New as the generator of layer ids.
func WithIDSource(next func() uuid.UUID) Option {
	return func(m *Model) { m.newID = next }
}

// WithOnChange registers fn to run after every change to the row set or
// the active layer.
func WithOnChange(fn func()) Option {
	return func(m *Model) { m.onChange = fn }
}

// Model is the ordered list of open structures.
type Model struct {
	layers   []*layer
	active   uuid.UUID
	newID    func() uuid.UUID
	onChange func()
}

// New creates an empty Model.
func New(opts ...Option) *Model {
	m := &Model{newID: uuid.New}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Add appends a layer backed by ed and returns its id. An empty name falls
// back to the molecule name.
func (m *Model) Add(name string, ed *editor.Editor) (uuid.UUID, error) {
	if ed == nil {
		return uuid.Nil, ErrNilEditor
	}
	if name == "" {
		name = ed.Molecule().Name()
	}
	l := &layer{id: m.newID(), name: name, ed: ed}
	m.layers = append(m.layers, l)
	if m.active == uuid.Nil {
		m.active = l.id
	}
	m.changed()

	return l.id, nil
}

// Remove drops the layer. When it was active, the row now at its index
// becomes active, or the last row when it was last.
func (m *Model) Remove(id uuid.UUID) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	m.layers = slices.Delete(m.layers, i, i+1)
	if m.active == id {
		switch {
		case len(m.layers) == 0:
			m.active = uuid.Nil
		case i < len(m.layers):
			m.active = m.layers[i].id
		default:
			m.active = m.layers[len(m.layers)-1].id
		}
	}
	m.changed()

	return nil
}

// Clear drops every layer.
func (m *Model) Clear() {
	m.layers = nil
	m.active = uuid.Nil
	m.changed()
}

// SetActive makes id the active layer.
func (m *Model) SetActive(id uuid.UUID) error {
	if _, err := m.index(id); err != nil {
		return err
	}
	if m.active != id {
		m.active = id
		m.changed()
	}

	return nil
}

// Active returns the active layer's id and editor; ok is false when the
// model is empty.
func (m *Model) Active() (id uuid.UUID, ed *editor.Editor, ok bool) {
	if m.active == uuid.Nil {
		return uuid.Nil, nil, false
	}
	i, _ := m.index(m.active)

	return m.active, m.layers[i].ed, true
}

// Editor returns the editor of layer id.
func (m *Model) Editor(id uuid.UUID) (*editor.Editor, error) {
	i, err := m.index(id)
	if err != nil {
		return nil, err
	}

	return m.layers[i].ed, nil
}

// Rename changes the display name of layer id.
func (m *Model) Rename(id uuid.UUID, name string) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	m.layers[i].name = name
	m.changed()

	return nil
}

// Len reports the number of layers.
func (m *Model) Len() int { return len(m.layers) }

// Rows returns one Row per layer in insertion order. Counts are read from
// each editor at call time.
func (m *Model) Rows() []Row {
	rows := make([]Row, len(m.layers))
	for i, l := range m.layers {
		mol := l.ed.Molecule()
		rows[i] = Row{
			ID:     l.id,
			Name:   l.name,
			Atoms:  mol.AtomCount(),
			Bonds:  mol.BondCount(),
			Groups: l.ed.GroupCount(),
			Active: l.id == m.active,
		}
	}

	return rows
}

func (m *Model) index(id uuid.UUID) (int, error) {
	i := slices.IndexFunc(m.layers, func(l *layer) bool { return l.id == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrLayerNotFound, id)
	}

	return i, nil
}

func (m *Model) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}
