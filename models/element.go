package models

import (
	"slices"
	"strings"
)

// canonicalNameSeparator separates the ancestor chain in canonical
// names. It is stripped from element names so canonical names stay
// unambiguous.
const canonicalNameSeparator = "/"

// Element is a named, identified, taggable node in the architecture
// graph. People, software systems, containers, components, deployment
// nodes and container instances all implement it.
//
// Each element kind supplies its own required tags, canonical name
// derivation and parent resolution; everything else is shared via
// ElementBase.
type Element interface {
	// GetID returns the unique identifier assigned by the owning Model.
	GetID() string

	// GetName returns the element name. Container instances return an
	// empty string; their display name is resolved from the container
	// they are based upon.
	GetName() string

	// SetName renames the element. A no-op on container instances.
	SetName(name string)

	// GetDescription returns the element description.
	GetDescription() string

	// GetTags returns a copy of the element's tags: the required tags
	// for its kind first, then user tags in insertion order.
	GetTags() []string

	// AddTags adds the given tags, ignoring empty strings and
	// duplicates.
	AddTags(tags ...string)

	// RemoveTag removes a user tag and reports whether anything was
	// removed. Required tags cannot be removed. A guaranteed no-op on
	// container instances.
	RemoveTag(tag string) bool

	// HasTag reports whether the element carries the given tag.
	HasTag(tag string) bool

	// GetRequiredTags returns the minimum tag set for the element kind.
	GetRequiredTags() []string

	// GetCanonicalName returns the derived, hierarchy-based unique name
	// of the element. It is never stored.
	GetCanonicalName() string

	// GetParent returns the parent element, or nil for top-level
	// elements. Parents are resolved through the owning Model's parent
	// index, not through embedded pointers.
	GetParent() Element

	// GetModel returns the Model that owns this element.
	GetModel() *Model
}

// ElementBase holds the state shared by all element kinds: identity,
// name, description and tags. It is embedded by the concrete element
// types and is not an Element by itself.
type ElementBase struct {
	// ID is the unique element identifier, assigned by the Model
	ID string `json:"id"`

	// Name is the human-readable element name
	Name string `json:"name,omitempty"`

	// Description is the human-readable element description
	Description string `json:"description,omitempty"`

	// Tags is the serialized tag list (required tags plus user tags)
	Tags []string `json:"tags,omitempty"`

	model    *Model
	required []string
}

func (e *ElementBase) GetID() string {
	return e.ID
}

func (e *ElementBase) GetName() string {
	return e.Name
}

func (e *ElementBase) SetName(name string) {
	e.Name = name
}

func (e *ElementBase) GetDescription() string {
	return e.Description
}

func (e *ElementBase) SetDescription(description string) {
	e.Description = description
}

func (e *ElementBase) GetModel() *Model {
	return e.model
}

// GetTags returns the ordered union of the required tags and the stored
// tags. The required tags are always present, even if the serialized
// form was tampered with.
func (e *ElementBase) GetTags() []string {
	return mergeTags(e.required, e.Tags)
}

func (e *ElementBase) AddTags(tags ...string) {
	e.Tags = mergeTags(e.Tags, tags)
}

// RemoveTag removes the given tag and reports whether it was removed.
// Required tags are refused.
func (e *ElementBase) RemoveTag(tag string) bool {
	if slices.Contains(e.required, tag) {
		return false
	}
	i := slices.Index(e.Tags, tag)
	if i < 0 {
		return false
	}
	e.Tags = slices.Delete(e.Tags, i, i+1)
	return true
}

func (e *ElementBase) HasTag(tag string) bool {
	return slices.Contains(e.GetTags(), tag)
}

// attach binds the element to its model and re-applies the required
// tags for its kind. Called at creation time and again during Hydrate.
func (e *ElementBase) attach(m *Model, required []string) {
	e.model = m
	e.required = required
	e.Tags = mergeTags(required, e.Tags)
}

// parent resolves the parent element through the model's parent index.
func (e *ElementBase) parent() Element {
	if e.model == nil {
		return nil
	}
	return e.model.parentOf(e.ID)
}

// formatForCanonicalName strips the canonical name separator from an
// element name.
func formatForCanonicalName(name string) string {
	return strings.ReplaceAll(name, canonicalNameSeparator, "")
}
