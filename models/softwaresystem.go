package models

// SoftwareSystem is the highest level of abstraction in the model: a
// deployable unit that delivers value to its users. Software systems
// own containers.
type SoftwareSystem struct {
	ElementBase

	// Containers are the containers that make up this software system
	Containers []*Container `json:"containers,omitempty"`
}

func (s *SoftwareSystem) GetRequiredTags() []string {
	return softwareSystemRequiredTags()
}

func (s *SoftwareSystem) GetCanonicalName() string {
	return canonicalNameSeparator + formatForCanonicalName(s.Name)
}

// GetParent returns nil; software systems are top-level elements.
func (s *SoftwareSystem) GetParent() Element {
	return s.parent()
}

// AddContainer adds a container with the given name to this software
// system. Container names must be unique within a software system.
// The container is created by the owning Model.
func (s *SoftwareSystem) AddContainer(name, description, technology string) (*Container, error) {
	return s.model.addContainer(s, name, description, technology)
}

// ContainerWithName returns the container with the given name, or nil.
func (s *SoftwareSystem) ContainerWithName(name string) *Container {
	for _, c := range s.Containers {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Uses creates a synchronous relationship from this software system to
// the given element.
func (s *SoftwareSystem) Uses(destination Element, description, technology string) (*Relationship, error) {
	return s.model.AddRelationship(s, destination, description, technology, Synchronous)
}
