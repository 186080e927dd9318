package models

import (
	"errors"
	"testing"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()
	m.SetIDGenerator(NewSequentialIDGenerator(""))
	return m
}

func TestModel_AddSoftwareSystem(t *testing.T) {
	m := newTestModel(t)

	s, err := m.AddSoftwareSystem("Shop", "Online shop")
	if err != nil {
		t.Fatalf("AddSoftwareSystem failed: %v", err)
	}
	if s.GetID() == "" {
		t.Error("expected an assigned identifier")
	}
	if m.GetElement(s.GetID()) != s {
		t.Error("software system is not registered in the model")
	}

	if _, err := m.AddSoftwareSystem("Shop", "duplicate"); err == nil {
		t.Error("expected an error for a duplicate software system name")
	}
	if _, err := m.AddSoftwareSystem("  ", ""); err == nil {
		t.Error("expected an error for a blank name")
	}
}

func TestModel_RequiredTags(t *testing.T) {
	m := newTestModel(t)

	s, _ := m.AddSoftwareSystem("Shop", "")
	for _, tag := range []string{TagElement, TagSoftwareSystem} {
		if !s.HasTag(tag) {
			t.Errorf("missing required tag %q", tag)
		}
		if s.RemoveTag(tag) {
			t.Errorf("required tag %q was removed", tag)
		}
		if !s.HasTag(tag) {
			t.Errorf("required tag %q disappeared after removal attempt", tag)
		}
	}

	s.AddTags("Database")
	if !s.HasTag("Database") {
		t.Error("user tag was not added")
	}
	if !s.RemoveTag("Database") {
		t.Error("user tag could not be removed")
	}
	if s.HasTag("Database") {
		t.Error("user tag still present after removal")
	}
}

func TestModel_CanonicalNames(t *testing.T) {
	m := newTestModel(t)

	s, _ := m.AddSoftwareSystem("Shop", "")
	c, err := s.AddContainer("API", "", "Go")
	if err != nil {
		t.Fatalf("AddContainer failed: %v", err)
	}
	cp, err := c.AddComponent("Orders", "", "Go")
	if err != nil {
		t.Fatalf("AddComponent failed: %v", err)
	}

	tests := []struct {
		element Element
		want    string
	}{
		{s, "/Shop"},
		{c, "/Shop/API"},
		{cp, "/Shop/API/Orders"},
	}
	for _, tt := range tests {
		if got := tt.element.GetCanonicalName(); got != tt.want {
			t.Errorf("expected canonical name %q, got %q", tt.want, got)
		}
	}

	if m.GetElementWithCanonicalName("/Shop/API") != c {
		t.Error("canonical name lookup failed")
	}
}

func TestModel_CanonicalNameStripsSeparator(t *testing.T) {
	m := newTestModel(t)

	s, _ := m.AddSoftwareSystem("A/B Testing", "")
	if got := s.GetCanonicalName(); got != "/AB Testing" {
		t.Errorf("expected separator to be stripped, got %q", got)
	}
}

func TestModel_ParentIndex(t *testing.T) {
	m := newTestModel(t)

	s, _ := m.AddSoftwareSystem("Shop", "")
	c, _ := s.AddContainer("API", "", "Go")
	cp, _ := c.AddComponent("Orders", "", "Go")

	if s.GetParent() != nil {
		t.Error("software systems are top-level, expected nil parent")
	}
	if c.GetParent() != Element(s) {
		t.Error("container parent should be the software system")
	}
	if cp.GetParent() != Element(c) {
		t.Error("component parent should be the container")
	}
}

func TestModel_AddRelationship(t *testing.T) {
	m := newTestModel(t)

	s1, _ := m.AddSoftwareSystem("Shop", "")
	s2, _ := m.AddSoftwareSystem("Payments", "")

	r, err := m.AddRelationship(s1, s2, "Takes payments with", "HTTPS", Synchronous)
	if err != nil {
		t.Fatalf("AddRelationship failed: %v", err)
	}
	if r.GetSource() != Element(s1) || r.GetDestination() != Element(s2) {
		t.Error("relationship endpoints do not resolve")
	}
	if m.GetRelationship(r.ID) != r {
		t.Error("relationship is not indexed by id")
	}

	// Same source, destination and description: the existing edge is
	// returned instead of a duplicate.
	again, err := m.AddRelationship(s1, s2, "Takes payments with", "HTTPS", Synchronous)
	if err != nil {
		t.Fatalf("AddRelationship failed: %v", err)
	}
	if again != r {
		t.Error("expected the existing relationship to be returned")
	}
	if len(m.GetRelationships()) != 1 {
		t.Errorf("expected 1 relationship, got %d", len(m.GetRelationships()))
	}
}

func TestModel_AddRelationshipValidation(t *testing.T) {
	m := newTestModel(t)
	s1, _ := m.AddSoftwareSystem("Shop", "")

	var argErr ArgumentError

	_, err := m.AddRelationship(s1, nil, "d", "t", Synchronous)
	if !errors.As(err, &argErr) {
		t.Errorf("expected ArgumentError for nil destination, got %v", err)
	}

	_, err = m.AddRelationship(nil, s1, "d", "t", Synchronous)
	if !errors.As(err, &argErr) {
		t.Errorf("expected ArgumentError for nil source, got %v", err)
	}

	other := NewModel()
	foreign, _ := other.AddSoftwareSystem("Elsewhere", "")
	_, err = m.AddRelationship(s1, foreign, "d", "t", Synchronous)
	if !errors.As(err, &argErr) {
		t.Errorf("expected ArgumentError for a foreign element, got %v", err)
	}
}

func TestModel_RelationshipTags(t *testing.T) {
	m := newTestModel(t)
	s1, _ := m.AddSoftwareSystem("Shop", "")
	s2, _ := m.AddSoftwareSystem("Payments", "")

	r, _ := m.AddRelationship(s1, s2, "d", "t", Asynchronous)
	tags := r.GetTags()
	if tags[0] != TagRelationship || tags[1] != TagAsynchronous {
		t.Errorf("unexpected relationship tags: %v", tags)
	}
}

func TestModel_PersonUses(t *testing.T) {
	m := newTestModel(t)

	p, err := m.AddPerson("Customer", "A customer of the shop")
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	s, _ := m.AddSoftwareSystem("Shop", "")

	r, err := p.Uses(s, "Buys things with", "Web browser")
	if err != nil {
		t.Fatalf("Uses failed: %v", err)
	}
	if r.InteractionStyle != Synchronous {
		t.Errorf("expected Synchronous, got %s", r.InteractionStyle)
	}
	if p.GetCanonicalName() != "/Customer" {
		t.Errorf("unexpected canonical name %q", p.GetCanonicalName())
	}
}

func TestModel_DeploymentNodeNesting(t *testing.T) {
	m := newTestModel(t)

	parent, err := m.AddDeploymentNode("AWS", "", "Amazon Web Services")
	if err != nil {
		t.Fatalf("AddDeploymentNode failed: %v", err)
	}
	child, err := parent.AddDeploymentNode("EC2", "", "Amazon EC2")
	if err != nil {
		t.Fatalf("AddDeploymentNode failed: %v", err)
	}

	if child.GetParent() != Element(parent) {
		t.Error("child node parent should be the parent node")
	}
	if got := child.GetCanonicalName(); got != "/deployment/AWS/EC2" {
		t.Errorf("unexpected canonical name %q", got)
	}

	if _, err := parent.AddDeploymentNode("EC2", "", ""); err == nil {
		t.Error("expected an error for a duplicate child node name")
	}
}
