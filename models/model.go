package models

import (
	"fmt"
	"sort"
)

// Model is the root of the architecture graph. It owns every element
// and relationship, assigns identifiers, enforces name uniqueness and
// maintains the parent index. All mutation of the global registries
// goes through the Model; child elements only ever mutate their own
// local state.
//
// A Model is append-only during a modeling session: elements and
// relationships can be added but not removed.
//
// A Model is not safe for concurrent use; it is built up on a single
// goroutine and then serialized.
type Model struct {
	// People are the top-level people in the model
	People []*Person `json:"people,omitempty"`

	// SoftwareSystems are the top-level software systems in the model
	SoftwareSystems []*SoftwareSystem `json:"softwareSystems,omitempty"`

	// DeploymentNodes are the top-level deployment nodes in the model
	DeploymentNodes []*DeploymentNode `json:"deploymentNodes,omitempty"`

	// Relationships are all relationships in the model
	Relationships []*Relationship `json:"relationships,omitempty"`

	idGen    IDGenerator
	elements map[string]Element
	relIndex map[string]*Relationship
	parents  map[string]string
}

// NewModel creates an empty model with the default UUID-based
// identifier generator.
func NewModel() *Model {
	return &Model{
		idGen:    UUIDGenerator{},
		elements: make(map[string]Element),
		relIndex: make(map[string]*Relationship),
		parents:  make(map[string]string),
	}
}

// SetIDGenerator replaces the identifier generator. Call this before
// adding elements; identifiers already assigned are not rewritten.
func (m *Model) SetIDGenerator(g IDGenerator) {
	if g != nil {
		m.idGen = g
	}
}

// AddPerson adds a person with the given name to the model. Person
// names must be unique.
func (m *Model) AddPerson(name, description string) (*Person, error) {
	if isBlank(name) {
		return nil, argumentErrorf("a person name must be specified")
	}
	if m.PersonWithName(name) != nil {
		return nil, argumentErrorf("a person named %q already exists", name)
	}

	p := &Person{ElementBase: m.newBase(name, description, personRequiredTags())}
	m.register(p, nil)
	m.People = append(m.People, p)
	return p, nil
}

// AddSoftwareSystem adds a software system with the given name to the
// model. Software system names must be unique.
func (m *Model) AddSoftwareSystem(name, description string) (*SoftwareSystem, error) {
	if isBlank(name) {
		return nil, argumentErrorf("a software system name must be specified")
	}
	if m.SoftwareSystemWithName(name) != nil {
		return nil, argumentErrorf("a software system named %q already exists", name)
	}

	s := &SoftwareSystem{ElementBase: m.newBase(name, description, softwareSystemRequiredTags())}
	m.register(s, nil)
	m.SoftwareSystems = append(m.SoftwareSystems, s)
	return s, nil
}

// AddDeploymentNode adds a top-level deployment node to the model.
// Top-level node names must be unique.
func (m *Model) AddDeploymentNode(name, description, technology string) (*DeploymentNode, error) {
	if isBlank(name) {
		return nil, argumentErrorf("a deployment node name must be specified")
	}
	for _, d := range m.DeploymentNodes {
		if d.Name == name {
			return nil, argumentErrorf("a deployment node named %q already exists", name)
		}
	}

	d := &DeploymentNode{
		ElementBase: m.newBase(name, description, deploymentNodeRequiredTags()),
		Technology:  technology,
	}
	m.register(d, nil)
	m.DeploymentNodes = append(m.DeploymentNodes, d)
	return d, nil
}

func (m *Model) addContainer(parent *SoftwareSystem, name, description, technology string) (*Container, error) {
	if isBlank(name) {
		return nil, argumentErrorf("a container name must be specified")
	}
	if parent.ContainerWithName(name) != nil {
		return nil, argumentErrorf("a container named %q already exists in %q", name, parent.Name)
	}

	c := &Container{
		ElementBase: m.newBase(name, description, containerRequiredTags()),
		Technology:  technology,
	}
	m.register(c, parent)
	parent.Containers = append(parent.Containers, c)
	return c, nil
}

func (m *Model) addComponent(parent *Container, name, description, technology string) (*Component, error) {
	if isBlank(name) {
		return nil, argumentErrorf("a component name must be specified")
	}
	if parent.ComponentWithName(name) != nil {
		return nil, argumentErrorf("a component named %q already exists in %q", name, parent.Name)
	}

	c := &Component{
		ElementBase: m.newBase(name, description, componentRequiredTags()),
		Technology:  technology,
	}
	m.register(c, parent)
	parent.Components = append(parent.Components, c)
	return c, nil
}

func (m *Model) addChildDeploymentNode(parent *DeploymentNode, name, description, technology string) (*DeploymentNode, error) {
	if isBlank(name) {
		return nil, argumentErrorf("a deployment node name must be specified")
	}
	if parent.ChildWithName(name) != nil {
		return nil, argumentErrorf("a deployment node named %q already exists in %q", name, parent.Name)
	}

	d := &DeploymentNode{
		ElementBase: m.newBase(name, description, deploymentNodeRequiredTags()),
		Technology:  technology,
		Environment: parent.Environment,
	}
	m.register(d, parent)
	parent.Children = append(parent.Children, d)
	return d, nil
}

func (m *Model) addContainerInstance(node *DeploymentNode, container *Container) (*ContainerInstance, error) {
	if container == nil {
		return nil, argumentErrorf("a container must be specified")
	}
	if m.GetElement(container.GetID()) == nil {
		return nil, argumentErrorf("the container %q is not part of this model", container.Name)
	}

	ci := &ContainerInstance{
		ContainerRef: container.GetID(),
		InstanceID:   m.nextInstanceID(container.GetID()),
		container:    container,
	}
	ci.ID = m.idGen.GenerateID()
	// Tags reflect the container, plus the instance marker. No required
	// tags of its own; removal is blocked by the RemoveTag override.
	ci.attach(m, nil)
	ci.Tags = mergeTags(container.GetTags(), []string{TagContainerInstance})

	m.register(ci, node)
	node.ContainerInstances = append(node.ContainerInstances, ci)
	return ci, nil
}

// nextInstanceID returns the next 1-based instance number for the given
// container, derived from the instances already in the model.
func (m *Model) nextInstanceID(containerID string) int {
	n := 0
	for _, e := range m.elements {
		if ci, ok := e.(*ContainerInstance); ok && ci.GetContainerID() == containerID {
			n++
		}
	}
	return n + 1
}

// AddRelationship creates a directed relationship between two elements
// of this model. It is the only way relationships come into existence.
// Creating a relationship that already exists (same source, destination
// and description) returns the existing one.
func (m *Model) AddRelationship(source, destination Element, description, technology string, style InteractionStyle) (*Relationship, error) {
	if source == nil {
		return nil, argumentErrorf("the source of a relationship must be specified")
	}
	if destination == nil {
		return nil, argumentErrorf("the destination of a relationship must be specified")
	}
	if m.GetElement(source.GetID()) == nil {
		return nil, argumentErrorf("the source element %q is not part of this model", source.GetID())
	}
	if m.GetElement(destination.GetID()) == nil {
		return nil, argumentErrorf("the destination element %q is not part of this model", destination.GetID())
	}
	if !style.IsValid() {
		style = Synchronous
	}

	for _, r := range m.Relationships {
		if r.SourceID == source.GetID() && r.DestinationID == destination.GetID() && r.Description == description {
			return r, nil
		}
	}

	r := &Relationship{
		ID:               m.idGen.GenerateID(),
		SourceID:         source.GetID(),
		DestinationID:    destination.GetID(),
		Description:      description,
		Technology:       technology,
		InteractionStyle: style,
		Tags:             relationshipRequiredTags(style),
		model:            m,
	}
	m.Relationships = append(m.Relationships, r)
	m.relIndex[r.ID] = r
	return r, nil
}

// GetElement returns the element with the given identifier, or nil.
func (m *Model) GetElement(id string) Element {
	return m.elements[id]
}

// GetElementWithCanonicalName returns the element with the given
// canonical name, or nil.
func (m *Model) GetElementWithCanonicalName(canonicalName string) Element {
	for _, e := range m.elements {
		if e.GetCanonicalName() == canonicalName {
			return e
		}
	}
	return nil
}

// GetRelationship returns the relationship with the given identifier,
// or nil.
func (m *Model) GetRelationship(id string) *Relationship {
	return m.relIndex[id]
}

// GetRelationships returns a copy of all relationships, sorted by
// identifier.
func (m *Model) GetRelationships() []*Relationship {
	rels := make([]*Relationship, len(m.Relationships))
	copy(rels, m.Relationships)
	sort.Slice(rels, func(i, j int) bool { return rels[i].ID < rels[j].ID })
	return rels
}

// PersonWithName returns the person with the given name, or nil.
func (m *Model) PersonWithName(name string) *Person {
	for _, p := range m.People {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// SoftwareSystemWithName returns the software system with the given
// name, or nil.
func (m *Model) SoftwareSystemWithName(name string) *SoftwareSystem {
	for _, s := range m.SoftwareSystems {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (m *Model) newBase(name, description string, required []string) ElementBase {
	b := ElementBase{
		ID:          m.idGen.GenerateID(),
		Name:        name,
		Description: description,
	}
	b.attach(m, required)
	return b
}

// register records an element in the arena and, when a parent is given,
// in the parent index. Identifiers are assigned before registration.
func (m *Model) register(e Element, parent Element) {
	m.elements[e.GetID()] = e
	if parent != nil {
		m.parents[e.GetID()] = parent.GetID()
	}
}

// parentOf resolves an element's parent through the id index.
func (m *Model) parentOf(id string) Element {
	pid, ok := m.parents[id]
	if !ok {
		return nil
	}
	return m.elements[pid]
}

// Hydrate rebuilds the derived state of a deserialized model: the
// element arena, the parent index, model back-references, required
// tags, container references on container instances and the
// relationship index.
//
// A container instance whose container cannot be found keeps its stored
// container identifier; this supports incrementally loaded workspaces.
// A relationship endpoint that cannot be found is an error.
func (m *Model) Hydrate() error {
	if m.idGen == nil {
		m.idGen = UUIDGenerator{}
	}
	m.elements = make(map[string]Element)
	m.relIndex = make(map[string]*Relationship)
	m.parents = make(map[string]string)

	for _, p := range m.People {
		p.attach(m, personRequiredTags())
		if err := m.rehydrate(p, nil); err != nil {
			return err
		}
	}

	for _, s := range m.SoftwareSystems {
		s.attach(m, softwareSystemRequiredTags())
		if err := m.rehydrate(s, nil); err != nil {
			return err
		}
		for _, c := range s.Containers {
			c.attach(m, containerRequiredTags())
			if err := m.rehydrate(c, s); err != nil {
				return err
			}
			for _, cp := range c.Components {
				cp.attach(m, componentRequiredTags())
				if err := m.rehydrate(cp, c); err != nil {
					return err
				}
			}
		}
	}

	for _, d := range m.DeploymentNodes {
		if err := m.hydrateDeploymentNode(d, nil); err != nil {
			return err
		}
	}

	for _, r := range m.Relationships {
		r.model = m
		if m.GetElement(r.SourceID) == nil {
			return fmt.Errorf("relationship %s: unknown source element %s", r.ID, r.SourceID)
		}
		if m.GetElement(r.DestinationID) == nil {
			return fmt.Errorf("relationship %s: unknown destination element %s", r.ID, r.DestinationID)
		}
		m.relIndex[r.ID] = r
	}

	return nil
}

func (m *Model) hydrateDeploymentNode(d *DeploymentNode, parent *DeploymentNode) error {
	d.attach(m, deploymentNodeRequiredTags())
	var p Element
	if parent != nil {
		p = parent
	}
	if err := m.rehydrate(d, p); err != nil {
		return err
	}

	for _, ci := range d.ContainerInstances {
		ci.attach(m, nil)
		if err := m.rehydrate(ci, d); err != nil {
			return err
		}
		// Resolve the container reference when possible; otherwise the
		// stored identifier string remains authoritative.
		if c, ok := m.elements[ci.ContainerRef].(*Container); ok {
			ci.container = c
		}
	}

	for _, child := range d.Children {
		if err := m.hydrateDeploymentNode(child, d); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) rehydrate(e Element, parent Element) error {
	id := e.GetID()
	if id == "" {
		return fmt.Errorf("element %q has no identifier", e.GetName())
	}
	if _, exists := m.elements[id]; exists {
		return fmt.Errorf("duplicate element identifier %s", id)
	}
	m.register(e, parent)
	return nil
}
