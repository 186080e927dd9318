package models

// InteractionStyle classifies the call semantics of a relationship.
type InteractionStyle string

const (
	// Synchronous marks request/response interactions
	Synchronous InteractionStyle = "Synchronous"

	// Asynchronous marks fire-and-forget or message-based interactions
	Asynchronous InteractionStyle = "Asynchronous"
)

// IsValid reports whether the interaction style is one of the known
// values.
func (s InteractionStyle) IsValid() bool {
	return s == Synchronous || s == Asynchronous
}

// Relationship is a directed edge between two elements. Relationships
// are created exclusively by the owning Model, which assigns the
// identifier and validates both endpoints.
type Relationship struct {
	// ID is the unique relationship identifier, assigned by the Model
	ID string `json:"id"`

	// SourceID is the identifier of the source element
	SourceID string `json:"sourceId"`

	// DestinationID is the identifier of the destination element
	DestinationID string `json:"destinationId"`

	// Description describes the interaction, e.g. "Reads orders from"
	Description string `json:"description,omitempty"`

	// Technology names the communication technology, e.g. "HTTPS"
	Technology string `json:"technology,omitempty"`

	// InteractionStyle is Synchronous or Asynchronous
	InteractionStyle InteractionStyle `json:"interactionStyle"`

	// Tags is the serialized tag list
	Tags []string `json:"tags,omitempty"`

	model *Model
}

// GetSource returns the resolved source element.
func (r *Relationship) GetSource() Element {
	if r.model == nil {
		return nil
	}
	return r.model.GetElement(r.SourceID)
}

// GetDestination returns the resolved destination element.
func (r *Relationship) GetDestination() Element {
	if r.model == nil {
		return nil
	}
	return r.model.GetElement(r.DestinationID)
}

// GetTags returns a copy of the relationship tags.
func (r *Relationship) GetTags() []string {
	return mergeTags(relationshipRequiredTags(r.InteractionStyle), r.Tags)
}

func relationshipRequiredTags(style InteractionStyle) []string {
	if style == Asynchronous {
		return []string{TagRelationship, TagAsynchronous}
	}
	return []string{TagRelationship, TagSynchronous}
}
