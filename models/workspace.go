package models

// Workspace is the top-level document that wraps a Model for
// serialization. It carries the JSON-LD envelope (@context, @type, @id)
// the same way other Archium documents do.
type Workspace struct {
	// Context is the JSON-LD @context (string, array or object)
	Context interface{} `json:"@context"`

	// Type is the JSON-LD @type
	Type string `json:"@type"`

	// ID is the unique workspace identifier (@id in JSON-LD)
	ID string `json:"@id"`

	// Name is the human-readable workspace name
	Name string `json:"name"`

	// Description is the human-readable workspace description
	Description string `json:"description,omitempty"`

	// Model is the architecture model
	Model *Model `json:"model"`
}

// WorkspaceType is the JSON-LD @type of workspace documents.
const WorkspaceType = "SoftwareSourceCode"

// DefaultContext returns the JSON-LD context used for new workspaces:
// the Archium vocabulary as the default vocabulary.
func DefaultContext() map[string]interface{} {
	return map[string]interface{}{
		"@vocab": "https://archium.evalgo.org/vocab#",
	}
}

// NewWorkspace creates a named workspace with an empty model.
func NewWorkspace(name, description string) *Workspace {
	return &Workspace{
		Context:     DefaultContext(),
		Type:        WorkspaceType,
		ID:          GenerateID("workspace"),
		Name:        name,
		Description: description,
		Model:       NewModel(),
	}
}

// Hydrate rebuilds the derived state of a deserialized workspace. Must
// be called after unmarshaling and before using the model.
func (w *Workspace) Hydrate() error {
	if w.Model == nil {
		w.Model = NewModel()
		return nil
	}
	return w.Model.Hydrate()
}
