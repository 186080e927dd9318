package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"evalgo.org/archium/internal/workspace"
	"evalgo.org/archium/models"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print a summary of a workspace document",
	Long: `Print the elements, deployment instances and relationships of a
workspace document.

Examples:
  archium inspect workspace.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := cfg.Workspace.Path
	if len(args) > 0 {
		filename = args[0]
	}

	ws, err := workspace.Load(filename)
	if err != nil {
		return err
	}

	fmt.Printf("Workspace: %s\n", ws.Name)
	if ws.Description != "" {
		fmt.Printf("  %s\n", ws.Description)
	}

	for _, p := range ws.Model.People {
		fmt.Printf("Person: %s\n", p.Name)
	}

	for _, s := range ws.Model.SoftwareSystems {
		fmt.Printf("Software System: %s\n", s.Name)
		for _, c := range s.Containers {
			fmt.Printf("  Container: %s [%s]\n", c.Name, c.Technology)
			for _, cp := range c.Components {
				fmt.Printf("    Component: %s [%s]\n", cp.Name, cp.Technology)
			}
		}
	}

	for _, d := range ws.Model.DeploymentNodes {
		printDeploymentNode(d, "")
	}

	for _, r := range ws.Model.GetRelationships() {
		src, dst := r.GetSource(), r.GetDestination()
		fmt.Printf("Relationship: %s -> %s (%s, %s)\n",
			displayName(src), displayName(dst), r.Description, r.InteractionStyle)
	}

	return nil
}

func printDeploymentNode(d *models.DeploymentNode, indent string) {
	fmt.Printf("%sDeployment Node: %s [%s]\n", indent, d.Name, d.Technology)
	for _, ci := range d.ContainerInstances {
		name := ci.GetContainerID()
		if c := ci.GetContainer(); c != nil {
			name = c.Name
		}
		fmt.Printf("%s  Instance: %s #%d (%d health checks)\n",
			indent, name, ci.InstanceID, len(ci.GetHealthChecks()))
	}
	for _, child := range d.Children {
		printDeploymentNode(child, indent+"  ")
	}
}

// displayName resolves a printable name for an element; container
// instances have no name of their own, so the canonical name is used.
func displayName(e models.Element) string {
	if e == nil {
		return "?"
	}
	if name := e.GetName(); name != "" {
		return name
	}
	return e.GetCanonicalName()
}
