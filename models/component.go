package models

// Component is a grouping of related functionality inside a container,
// typically backed by a package or a well-defined interface in the
// source code.
type Component struct {
	ElementBase

	// Technology names the implementation technology
	Technology string `json:"technology,omitempty"`

	// ComponentType is the fully-qualified source type or package this
	// component was derived from, when the model is built from code
	ComponentType string `json:"type,omitempty"`
}

func (c *Component) GetRequiredTags() []string {
	return componentRequiredTags()
}

func (c *Component) GetCanonicalName() string {
	if p := c.parent(); p != nil {
		return p.GetCanonicalName() + canonicalNameSeparator + formatForCanonicalName(c.Name)
	}
	return canonicalNameSeparator + formatForCanonicalName(c.Name)
}

// GetParent returns the container this component belongs to.
func (c *Component) GetParent() Element {
	return c.parent()
}

// Uses creates a synchronous relationship from this component to the
// given element.
func (c *Component) Uses(destination Element, description, technology string) (*Relationship, error) {
	return c.model.AddRelationship(c, destination, description, technology, Synchronous)
}
