// Package archium is a software architecture modeling library.
//
// # Overview
//
// Archium represents software architecture as data, following the C4
// model: people and software systems, the containers they are made of,
// the components inside those containers, and a deployment view of
// container instances running on deployment nodes.
//
// The library consists of three main parts:
//   - Model: the entity-relationship graph (models package)
//   - Validation: struct and JSON-LD workspace validation
//   - Workspace I/O: JSON, YAML and JSON-LD round-trip
//
// # Architecture
//
//	┌─────────────────┐
//	│  archium CLI    │
//	│  (validate,     │
//	│   export,       │
//	│   inspect)      │
//	└────────┬────────┘
//	         │
//	┌────────▼────────┐       ┌─────────────────┐
//	│  Workspace I/O  │◄──────┤  Validation     │
//	│  (JSON/YAML/LD) │       │  (rules + LD)   │
//	└────────┬────────┘       └─────────────────┘
//	         │
//	┌────────▼────────┐
//	│  Model          │
//	│  (C4 graph)     │
//	└─────────────────┘
//
// # Core Features
//
// Architecture model:
//   - Elements with identity, tags and canonical names
//   - Relationships created through a single model-owned factory
//   - Deployment instances with HTTP health checks
//
// Workspace documents:
//   - JSON and YAML round-trip with derived state rebuilt on load
//   - JSON-LD export for graph tooling
package archium
