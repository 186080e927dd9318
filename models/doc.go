// Package models contains the software architecture model for Archium.
//
// The model follows the C4 approach: people and software systems at the
// top level, containers inside software systems, components inside
// containers, and a parallel deployment view in which deployment nodes
// host runtime instances of containers.
//
// # Structure
//
//	Model
//	├── Person
//	├── SoftwareSystem
//	│   └── Container
//	│       └── Component
//	└── DeploymentNode
//	    ├── DeploymentNode (nested)
//	    └── ContainerInstance
//
// The Model is the single owner of all elements and relationships. New
// elements are created through factory methods on the Model or on their
// parent element (which delegates to the Model), never by constructing
// structs directly. This keeps identifier assignment, duplicate checks
// and the parent index in one place.
//
// Relationships are directed edges between elements and are created
// exclusively through Model.AddRelationship or the Uses convenience
// methods on elements.
//
// # Identity and tags
//
// Every element carries a unique identifier assigned by the Model's
// IDGenerator, a set of tags (each element kind contributes required
// tags that cannot be removed), and a derived canonical name built from
// its ancestor chain.
//
// # Serialization
//
// All model types round-trip through JSON. Derived state (canonical
// names, resolved element pointers, the parent index) is not persisted;
// call Workspace.Hydrate after unmarshaling to rebuild it.
package models
