package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// UsageFact is a structured "source uses destination" statement, as
// produced by an external source-code scanner. The destination is
// either an element name or a canonical name (recognized by its
// leading separator).
type UsageFact struct {
	// Destination identifies the target element by name or canonical
	// name
	Destination string `json:"destination"`

	// Description describes the interaction
	Description string `json:"description,omitempty"`

	// Technology names the communication technology
	Technology string `json:"technology,omitempty"`
}

// ApplyUsageFacts creates a synchronous relationship from source for
// every fact whose destination resolves to an element of this model.
// Facts with unresolved or ambiguous destinations are skipped and
// reported in the joined error; resolved facts are still applied.
func (m *Model) ApplyUsageFacts(source Element, facts []UsageFact) ([]*Relationship, error) {
	if source == nil {
		return nil, argumentErrorf("the source of a usage fact must be specified")
	}

	var created []*Relationship
	var errs []error
	for _, f := range facts {
		dst, err := m.resolveDestination(f.Destination)
		if err != nil {
			errs = append(errs, fmt.Errorf("usage fact %q: %w", f.Destination, err))
			continue
		}
		r, err := m.AddRelationship(source, dst, f.Description, f.Technology, Synchronous)
		if err != nil {
			errs = append(errs, fmt.Errorf("usage fact %q: %w", f.Destination, err))
			continue
		}
		created = append(created, r)
	}
	return created, errors.Join(errs...)
}

// resolveDestination finds the element a usage fact points at. A
// destination starting with the canonical name separator is looked up
// as a canonical name; anything else is matched against element names
// and must match exactly one element.
func (m *Model) resolveDestination(destination string) (Element, error) {
	if isBlank(destination) {
		return nil, errors.New("empty destination")
	}

	if strings.HasPrefix(destination, canonicalNameSeparator) {
		if e := m.GetElementWithCanonicalName(destination); e != nil {
			return e, nil
		}
		return nil, errors.New("unknown destination")
	}

	var matches []Element
	for _, e := range m.elements {
		if e.GetName() == destination {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return nil, errors.New("unknown destination")
	case 1:
		return matches[0], nil
	default:
		sort.Slice(matches, func(i, j int) bool { return matches[i].GetID() < matches[j].GetID() })
		names := make([]string, len(matches))
		for i, e := range matches {
			names[i] = e.GetCanonicalName()
		}
		return nil, fmt.Errorf("ambiguous destination, candidates: %s", strings.Join(names, ", "))
	}
}
