package models

import (
	"fmt"
	"slices"
)

// ContainerInstance represents one deployed, running copy of a
// Container, hosted on a DeploymentNode.
//
// A container instance does not own identity metadata of its own: its
// name is always resolved from the container it is based upon, its tags
// are copied from the container at creation time and can never be
// removed, and its canonical name is derived from the container's. The
// only state a container instance accumulates is its set of HTTP health
// checks.
type ContainerInstance struct {
	ElementBase

	// ContainerRef is the identifier of the container this instance is
	// based upon. It is kept alongside the resolved pointer so that a
	// partially loaded workspace still knows which container is meant.
	ContainerRef string `json:"containerId"`

	// InstanceID is the 1-based instance number, disambiguating
	// multiple deployed copies of the same container
	InstanceID int `json:"instanceId"`

	// HealthChecks are the HTTP health checks for this instance,
	// unique by value
	HealthChecks []HTTPHealthCheck `json:"healthChecks,omitempty"`

	container *Container
}

// GetContainer returns the container this instance is based upon, or
// nil when the reference has not been resolved yet.
func (ci *ContainerInstance) GetContainer() *Container {
	return ci.container
}

// GetContainerID returns the identifier of the container this instance
// is based upon: the live container's ID when the reference is
// resolved, otherwise the stored identifier string.
func (ci *ContainerInstance) GetContainerID() string {
	if ci.container != nil {
		return ci.container.GetID()
	}
	return ci.ContainerRef
}

// GetName returns an empty string; the display name of a container
// instance is resolved from the container it is based upon.
func (ci *ContainerInstance) GetName() string {
	return ""
}

// SetName does nothing; the name of a container instance is taken from
// the associated container.
func (ci *ContainerInstance) SetName(name string) {
}

// GetRequiredTags returns nil; a container instance has no required
// tags of its own, its tags reflect the container it is based upon.
func (ci *ContainerInstance) GetRequiredTags() []string {
	return nil
}

// RemoveTag does nothing and returns false; tags cannot be removed from
// container instances, they reflect the container they are based upon.
func (ci *ContainerInstance) RemoveTag(tag string) bool {
	return false
}

// GetCanonicalName returns the container's canonical name suffixed with
// the instance number, e.g. "/Shop/API[2]". Empty when the container
// reference is unresolved.
func (ci *ContainerInstance) GetCanonicalName() string {
	if ci.container == nil {
		return ""
	}
	return fmt.Sprintf("%s[%d]", ci.container.GetCanonicalName(), ci.InstanceID)
}

// GetParent returns the parent of the container this instance is based
// upon.
func (ci *ContainerInstance) GetParent() Element {
	if ci.container == nil {
		return nil
	}
	return ci.container.GetParent()
}

// Uses creates a relationship from this instance to another container
// instance, routed through the owning Model. The interaction style
// defaults to Synchronous when omitted.
func (ci *ContainerInstance) Uses(destination *ContainerInstance, description, technology string, style ...InteractionStyle) (*Relationship, error) {
	if destination == nil {
		return nil, argumentErrorf("the destination of a relationship must be specified")
	}
	interaction := Synchronous
	if len(style) > 0 {
		interaction = style[0]
	}
	return ci.model.AddRelationship(ci, destination, description, technology, interaction)
}

// AddHealthCheck adds an HTTP health check with the default polling
// interval (60 seconds) and timeout (0 milliseconds).
func (ci *ContainerInstance) AddHealthCheck(name, rawURL string) (HTTPHealthCheck, error) {
	return ci.AddHealthCheckWithTiming(name, rawURL, DefaultHealthCheckIntervalSeconds, DefaultHealthCheckTimeoutMillis)
}

// AddHealthCheckWithTiming adds an HTTP health check with an explicit
// polling interval (seconds) and timeout (milliseconds). The arguments
// are validated by NewHTTPHealthCheck; adding a health check that is
// already present is a no-op.
func (ci *ContainerInstance) AddHealthCheckWithTiming(name, rawURL string, intervalSeconds int, timeoutMillis int64) (HTTPHealthCheck, error) {
	check, err := NewHTTPHealthCheck(name, rawURL, intervalSeconds, timeoutMillis)
	if err != nil {
		return HTTPHealthCheck{}, err
	}
	if !slices.Contains(ci.HealthChecks, check) {
		ci.HealthChecks = append(ci.HealthChecks, check)
	}
	return check, nil
}

// GetHealthChecks returns a copy of the health check set; mutating the
// returned slice does not affect the instance.
func (ci *ContainerInstance) GetHealthChecks() []HTTPHealthCheck {
	return slices.Clone(ci.HealthChecks)
}
