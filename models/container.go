package models

// Container is a runtime boundary inside a software system: an
// application, data store or service that executes code or stores data.
type Container struct {
	ElementBase

	// Technology names the implementation technology, e.g. "Go" or
	// "PostgreSQL"
	Technology string `json:"technology,omitempty"`

	// Components are the components inside this container
	Components []*Component `json:"components,omitempty"`
}

func (c *Container) GetRequiredTags() []string {
	return containerRequiredTags()
}

func (c *Container) GetCanonicalName() string {
	if p := c.parent(); p != nil {
		return p.GetCanonicalName() + canonicalNameSeparator + formatForCanonicalName(c.Name)
	}
	return canonicalNameSeparator + formatForCanonicalName(c.Name)
}

// GetParent returns the software system this container belongs to.
func (c *Container) GetParent() Element {
	return c.parent()
}

// AddComponent adds a component with the given name to this container.
// Component names must be unique within a container.
func (c *Container) AddComponent(name, description, technology string) (*Component, error) {
	return c.model.addComponent(c, name, description, technology)
}

// ComponentWithName returns the component with the given name, or nil.
func (c *Container) ComponentWithName(name string) *Component {
	for _, cp := range c.Components {
		if cp.Name == name {
			return cp
		}
	}
	return nil
}

// Uses creates a synchronous relationship from this container to the
// given element.
func (c *Container) Uses(destination Element, description, technology string) (*Relationship, error) {
	return c.model.AddRelationship(c, destination, description, technology, Synchronous)
}
