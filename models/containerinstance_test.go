package models

import (
	"errors"
	"testing"
)

// newDeployedInstance builds a model with one software system, one
// container and one container instance on a deployment node.
func newDeployedInstance(t *testing.T) (*Model, *Container, *ContainerInstance) {
	t.Helper()

	m := NewModel()
	m.SetIDGenerator(NewSequentialIDGenerator(""))

	s, err := m.AddSoftwareSystem("Shop", "Online shop")
	if err != nil {
		t.Fatalf("AddSoftwareSystem failed: %v", err)
	}
	c, err := s.AddContainer("API", "Backend API", "Go")
	if err != nil {
		t.Fatalf("AddContainer failed: %v", err)
	}
	node, err := m.AddDeploymentNode("Server 1", "Primary server", "Ubuntu 24.04")
	if err != nil {
		t.Fatalf("AddDeploymentNode failed: %v", err)
	}
	ci, err := node.Add(c)
	if err != nil {
		t.Fatalf("Add container instance failed: %v", err)
	}
	return m, c, ci
}

func TestContainerInstance_RemoveTagIsNoOp(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	before := ci.GetTags()
	for _, tag := range append([]string{"nonexistent"}, before...) {
		if removed := ci.RemoveTag(tag); removed {
			t.Errorf("RemoveTag(%q) reported removal", tag)
		}
	}

	after := ci.GetTags()
	if len(after) != len(before) {
		t.Fatalf("tags changed: before %v, after %v", before, after)
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("tag %d changed: before %q, after %q", i, before[i], after[i])
		}
	}
}

func TestContainerInstance_TagsReflectContainer(t *testing.T) {
	_, c, ci := newDeployedInstance(t)

	for _, tag := range c.GetTags() {
		if !ci.HasTag(tag) {
			t.Errorf("instance is missing container tag %q", tag)
		}
	}
	if !ci.HasTag(TagContainerInstance) {
		t.Errorf("instance is missing the %q tag", TagContainerInstance)
	}
}

func TestContainerInstance_SetNameIsNoOp(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	ci.SetName("renamed")
	if name := ci.GetName(); name != "" {
		t.Errorf("expected empty name, got %q", name)
	}
}

func TestContainerInstance_GetContainerID(t *testing.T) {
	_, c, ci := newDeployedInstance(t)

	if got := ci.GetContainerID(); got != c.GetID() {
		t.Errorf("expected container id %q, got %q", c.GetID(), got)
	}

	// Unresolved reference falls back to the stored identifier.
	orphan := &ContainerInstance{ContainerRef: "42", InstanceID: 1}
	if got := orphan.GetContainerID(); got != "42" {
		t.Errorf("expected stored id \"42\", got %q", got)
	}
}

func TestContainerInstance_CanonicalName(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	if got := ci.GetCanonicalName(); got != "/Shop/API[1]" {
		t.Errorf("expected canonical name \"/Shop/API[1]\", got %q", got)
	}
}

func TestContainerInstance_InstanceNumbers(t *testing.T) {
	m, c, ci := newDeployedInstance(t)

	if ci.InstanceID != 1 {
		t.Fatalf("expected instance number 1, got %d", ci.InstanceID)
	}

	node, err := m.AddDeploymentNode("Server 2", "Secondary server", "Ubuntu 24.04")
	if err != nil {
		t.Fatalf("AddDeploymentNode failed: %v", err)
	}
	second, err := node.Add(c)
	if err != nil {
		t.Fatalf("Add container instance failed: %v", err)
	}
	if second.InstanceID != 2 {
		t.Errorf("expected instance number 2, got %d", second.InstanceID)
	}
}

func TestContainerInstance_Uses(t *testing.T) {
	m, c, ci := newDeployedInstance(t)

	node, err := m.AddDeploymentNode("Server 2", "", "Ubuntu 24.04")
	if err != nil {
		t.Fatalf("AddDeploymentNode failed: %v", err)
	}
	other, err := node.Add(c)
	if err != nil {
		t.Fatalf("Add container instance failed: %v", err)
	}

	r, err := ci.Uses(other, "Replicates to", "TCP")
	if err != nil {
		t.Fatalf("Uses failed: %v", err)
	}
	if r.InteractionStyle != Synchronous {
		t.Errorf("expected default interaction style Synchronous, got %s", r.InteractionStyle)
	}
	if r.SourceID != ci.GetID() || r.DestinationID != other.GetID() {
		t.Errorf("unexpected endpoints: %s -> %s", r.SourceID, r.DestinationID)
	}
	if len(m.GetRelationships()) != 1 {
		t.Errorf("expected exactly one relationship, got %d", len(m.GetRelationships()))
	}
}

func TestContainerInstance_UsesAsynchronously(t *testing.T) {
	m, c, ci := newDeployedInstance(t)

	node, _ := m.AddDeploymentNode("Server 2", "", "Ubuntu 24.04")
	other, _ := node.Add(c)

	r, err := ci.Uses(other, "Publishes events to", "AMQP", Asynchronous)
	if err != nil {
		t.Fatalf("Uses failed: %v", err)
	}
	if r.InteractionStyle != Asynchronous {
		t.Errorf("expected Asynchronous, got %s", r.InteractionStyle)
	}
}

func TestContainerInstance_UsesNilDestination(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	_, err := ci.Uses(nil, "d", "t")
	var argErr ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
}

func TestContainerInstance_AddHealthCheckDefaults(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	hc, err := ci.AddHealthCheck("ping", "http://example.com/health")
	if err != nil {
		t.Fatalf("AddHealthCheck failed: %v", err)
	}
	if hc.Interval != 60 {
		t.Errorf("expected default interval 60, got %d", hc.Interval)
	}
	if hc.Timeout != 0 {
		t.Errorf("expected default timeout 0, got %d", hc.Timeout)
	}
}

func TestContainerInstance_AddHealthCheckValidation(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	tests := []struct {
		name     string
		hcName   string
		url      string
		interval int
		timeout  int64
	}{
		{name: "empty name", hcName: "", url: "http://example.com"},
		{name: "empty url", hcName: "ok", url: ""},
		{name: "malformed url", hcName: "ok", url: "not a url"},
		{name: "negative interval", hcName: "ok", url: "http://example.com", interval: -1},
		{name: "negative timeout", hcName: "ok", url: "http://example.com", timeout: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ci.AddHealthCheckWithTiming(tt.hcName, tt.url, tt.interval, tt.timeout)
			var argErr ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected ArgumentError, got %v", err)
			}
		})
	}

	if got := len(ci.GetHealthChecks()); got != 0 {
		t.Errorf("expected no stored health checks, got %d", got)
	}
}

func TestContainerInstance_GetHealthChecksReturnsCopy(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	if _, err := ci.AddHealthCheck("ping", "http://example.com/health"); err != nil {
		t.Fatalf("AddHealthCheck failed: %v", err)
	}

	checks := ci.GetHealthChecks()
	checks[0].Name = "mutated"

	fresh := ci.GetHealthChecks()
	if fresh[0].Name != "ping" {
		t.Errorf("internal state was mutated through the returned copy")
	}
}

func TestContainerInstance_DuplicateHealthCheck(t *testing.T) {
	_, _, ci := newDeployedInstance(t)

	if _, err := ci.AddHealthCheck("ping", "http://example.com/health"); err != nil {
		t.Fatalf("AddHealthCheck failed: %v", err)
	}
	if _, err := ci.AddHealthCheck("ping", "http://example.com/health"); err != nil {
		t.Fatalf("AddHealthCheck failed: %v", err)
	}
	if got := len(ci.GetHealthChecks()); got != 1 {
		t.Errorf("expected health checks to be unique by value, got %d entries", got)
	}
}
