package models

// Person represents a user, actor or role that interacts with the
// modeled software systems.
type Person struct {
	ElementBase
}

func (p *Person) GetRequiredTags() []string {
	return personRequiredTags()
}

func (p *Person) GetCanonicalName() string {
	return canonicalNameSeparator + formatForCanonicalName(p.Name)
}

// GetParent returns nil; people are top-level elements.
func (p *Person) GetParent() Element {
	return p.parent()
}

// Uses creates a synchronous relationship from this person to the given
// element, routed through the owning Model.
func (p *Person) Uses(destination Element, description, technology string) (*Relationship, error) {
	return p.model.AddRelationship(p, destination, description, technology, Synchronous)
}
