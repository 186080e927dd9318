package models

// DeploymentNode represents physical or virtual infrastructure that
// containers are deployed to: a server, a VM, a container runtime or a
// cloud service. Deployment nodes nest and host container instances.
type DeploymentNode struct {
	ElementBase

	// Technology names the node technology, e.g. "Ubuntu 24.04" or
	// "Docker"
	Technology string `json:"technology,omitempty"`

	// Environment is the deployment environment this node belongs to,
	// e.g. "Development" or "Production"
	Environment string `json:"environment,omitempty"`

	// Children are deployment nodes nested inside this one
	Children []*DeploymentNode `json:"children,omitempty"`

	// ContainerInstances are the container instances hosted on this node
	ContainerInstances []*ContainerInstance `json:"containerInstances,omitempty"`
}

func (d *DeploymentNode) GetRequiredTags() []string {
	return deploymentNodeRequiredTags()
}

func (d *DeploymentNode) GetCanonicalName() string {
	if p := d.parent(); p != nil {
		return p.GetCanonicalName() + canonicalNameSeparator + formatForCanonicalName(d.Name)
	}
	return canonicalNameSeparator + "deployment" + canonicalNameSeparator + formatForCanonicalName(d.Name)
}

// GetParent returns the parent deployment node, or nil for top-level
// nodes.
func (d *DeploymentNode) GetParent() Element {
	return d.parent()
}

// AddDeploymentNode adds a child deployment node. Node names must be
// unique among the children of a node.
func (d *DeploymentNode) AddDeploymentNode(name, description, technology string) (*DeploymentNode, error) {
	return d.model.addChildDeploymentNode(d, name, description, technology)
}

// ChildWithName returns the child deployment node with the given name,
// or nil.
func (d *DeploymentNode) ChildWithName(name string) *DeploymentNode {
	for _, child := range d.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Add deploys the given container on this node and returns the new
// container instance. Instance numbers are 1-based per container and
// assigned by the owning Model.
func (d *DeploymentNode) Add(container *Container) (*ContainerInstance, error) {
	return d.model.addContainerInstance(d, container)
}
