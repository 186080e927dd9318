// Package validation provides JSON-LD document validation for Archium
// workspaces.
//
// This package validates both the structure and the semantic
// correctness of workspace documents. It uses:
//   - go-playground/validator for struct-level validation
//   - json-gold for JSON-LD semantic validation
//
// # Validation Process
//
//  1. JSON parsing - Ensures valid JSON syntax
//  2. JSON-LD validation - @context/@type/@id presence and expandability
//  3. Struct validation - Required fields and constraints
//  4. Model validation - Graph-level rules (endpoints, instance
//     numbers, health checks)
//
// # Usage Example
//
//	validator := validation.New()
//	result, err := validator.ValidateWorkspace(jsonData)
//	if err != nil {
//	    // Handle error
//	}
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Printf("%s: %s\n", e.Field, e.Message)
//	    }
//	}
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/piprate/json-gold/ld"

	"evalgo.org/archium/models"
	"evalgo.org/archium/pkg/urlutil"
)

// Validator handles workspace document validation. It combines struct
// validation with JSON-LD semantic validation to ensure both syntactic
// and semantic correctness.
type Validator struct {
	// structValidator validates Go struct constraints and tags
	structValidator *validator.Validate

	// jsonldProcessor validates JSON-LD semantic correctness
	jsonldProcessor *ld.JsonLdProcessor
}

// Error represents a single validation error with field-level details.
type Error struct {
	// Field is the name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// Result represents the complete result of a validation operation.
type Result struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid)
	Errors []Error `json:"errors,omitempty"`
}

// New creates a Validator ready to validate workspace documents.
func New() *Validator {
	return &Validator{
		structValidator: validator.New(),
		jsonldProcessor: ld.NewJsonLdProcessor(),
	}
}

// ValidateWorkspace validates a workspace JSON-LD document.
func (v *Validator) ValidateWorkspace(data []byte) (*Result, error) {
	var ws models.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return &Result{
			Valid: false,
			Errors: []Error{
				{Field: "document", Message: fmt.Sprintf("Invalid JSON: %v", err)},
			},
		}, nil
	}

	allErrors := v.validateJSONLD(data)
	allErrors = append(allErrors, v.validateWorkspaceFields(&ws)...)
	allErrors = append(allErrors, v.validateModel(&ws)...)

	return &Result{
		Valid:  len(allErrors) == 0,
		Errors: allErrors,
	}, nil
}

// validateJSONLD validates the JSON-LD envelope using json-gold.
func (v *Validator) validateJSONLD(data []byte) []Error {
	var errors []Error

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		errors = append(errors, Error{
			Field:   "document",
			Message: fmt.Sprintf("Invalid JSON: %v", err),
		})
		return errors
	}

	docMap, ok := doc.(map[string]interface{})
	if !ok {
		errors = append(errors, Error{
			Field:   "document",
			Message: "Document must be a JSON object",
		})
		return errors
	}

	if _, hasContext := docMap["@context"]; !hasContext {
		errors = append(errors, Error{
			Field:   "@context",
			Message: "Missing @context field (required for JSON-LD)",
		})
	}

	if _, hasType := docMap["@type"]; !hasType {
		errors = append(errors, Error{
			Field:   "@type",
			Message: "Missing @type field (required for JSON-LD)",
		})
	}

	if _, hasID := docMap["@id"]; !hasID {
		errors = append(errors, Error{
			Field:   "@id",
			Message: "Missing @id field (required for JSON-LD)",
		})
	}

	// Try to expand the JSON-LD to validate it's well-formed
	options := ld.NewJsonLdOptions("")
	if _, err := v.jsonldProcessor.Expand(doc, options); err != nil {
		errors = append(errors, Error{
			Field:   "document",
			Message: fmt.Sprintf("Invalid JSON-LD structure: %v", err),
		})
	}

	return errors
}

// validateWorkspaceFields validates workspace-level business rules.
func (v *Validator) validateWorkspaceFields(ws *models.Workspace) []Error {
	var errors []Error

	if ws.Name == "" {
		errors = append(errors, Error{
			Field:   "name",
			Message: "Name is required",
		})
	}

	if ws.Type != "" && ws.Type != models.WorkspaceType {
		errors = append(errors, Error{
			Field:   "@type",
			Message: fmt.Sprintf("Type must be %q", models.WorkspaceType),
			Value:   ws.Type,
		})
	}

	if ws.Model == nil {
		errors = append(errors, Error{
			Field:   "model",
			Message: "Model is required",
		})
	}

	return errors
}

// validateModel validates graph-level rules. Hydration failures
// (duplicate identifiers, dangling relationship endpoints) surface here
// as validation errors rather than hard failures.
func (v *Validator) validateModel(ws *models.Workspace) []Error {
	var errors []Error
	if ws.Model == nil {
		return errors
	}

	if err := ws.Hydrate(); err != nil {
		errors = append(errors, Error{
			Field:   "model",
			Message: err.Error(),
		})
		return errors
	}

	for _, node := range ws.Model.DeploymentNodes {
		errors = append(errors, v.validateDeploymentNode(node)...)
	}

	return errors
}

func (v *Validator) validateDeploymentNode(node *models.DeploymentNode) []Error {
	var errors []Error

	for _, ci := range node.ContainerInstances {
		if err := v.structValidator.Var(ci.InstanceID, "min=1"); err != nil {
			errors = append(errors, Error{
				Field:   "instanceId",
				Message: "Instance numbers are 1-based",
				Value:   ci.InstanceID,
			})
		}
		if ci.ContainerRef == "" {
			errors = append(errors, Error{
				Field:   "containerId",
				Message: "A container instance must reference a container",
			})
		}
		for _, hc := range ci.GetHealthChecks() {
			errors = append(errors, v.validateHealthCheck(hc)...)
		}
	}

	for _, child := range node.Children {
		errors = append(errors, v.validateDeploymentNode(child)...)
	}

	return errors
}

func (v *Validator) validateHealthCheck(hc models.HTTPHealthCheck) []Error {
	var errors []Error

	if hc.Name == "" {
		errors = append(errors, Error{
			Field:   "healthChecks.name",
			Message: "Health check name is required",
		})
	}

	if hc.URL == "" {
		errors = append(errors, Error{
			Field:   "healthChecks.url",
			Message: "Health check URL is required",
		})
	} else if !urlutil.IsURL(hc.URL) {
		errors = append(errors, Error{
			Field:   "healthChecks.url",
			Message: "Health check URL must be a well-formed URL",
			Value:   hc.URL,
		})
	}

	if err := v.structValidator.Var(hc.Interval, "min=0"); err != nil {
		errors = append(errors, Error{
			Field:   "healthChecks.interval",
			Message: "Polling interval must be zero or positive",
			Value:   hc.Interval,
		})
	}

	if err := v.structValidator.Var(hc.Timeout, "min=0"); err != nil {
		errors = append(errors, Error{
			Field:   "healthChecks.timeout",
			Message: "Timeout must be zero or positive",
			Value:   hc.Timeout,
		})
	}

	return errors
}
