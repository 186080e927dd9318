package models

import "slices"

// Tag names applied to elements and relationships by the model itself.
// Required tags are assigned at creation time and cannot be removed.
const (
	TagElement           = "Element"
	TagPerson            = "Person"
	TagSoftwareSystem    = "Software System"
	TagContainer         = "Container"
	TagComponent         = "Component"
	TagDeploymentNode    = "Deployment Node"
	TagContainerInstance = "Container Instance"

	TagRelationship = "Relationship"
	TagSynchronous  = "Synchronous"
	TagAsynchronous = "Asynchronous"
)

func personRequiredTags() []string {
	return []string{TagElement, TagPerson}
}

func softwareSystemRequiredTags() []string {
	return []string{TagElement, TagSoftwareSystem}
}

func containerRequiredTags() []string {
	return []string{TagElement, TagContainer}
}

func componentRequiredTags() []string {
	return []string{TagElement, TagComponent}
}

func deploymentNodeRequiredTags() []string {
	return []string{TagElement, TagDeploymentNode}
}

// mergeTags returns the ordered, de-duplicated union of the given tag
// lists: required tags first, then everything else in insertion order.
func mergeTags(required, extra []string) []string {
	merged := make([]string, 0, len(required)+len(extra))
	for _, t := range required {
		if t != "" && !slices.Contains(merged, t) {
			merged = append(merged, t)
		}
	}
	for _, t := range extra {
		if t != "" && !slices.Contains(merged, t) {
			merged = append(merged, t)
		}
	}
	return merged
}
