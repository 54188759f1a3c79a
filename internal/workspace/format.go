package workspace

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/qiniu/wsmanager/pkg/models"
)

// currentMarker prefixes the current workspace in listings
const currentMarker = "*"

// formatWorkspace renders a single workspace as "name\tpath"
func formatWorkspace(ws models.Workspace) string {
	return fmt.Sprintf("%s\t%s", ws.Name, ws.Path)
}

// WriteWorkspace writes one workspace as "name path".
func WriteWorkspace(w io.Writer, ws models.Workspace) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, formatWorkspace(ws)); err != nil {
		return err
	}
	return tw.Flush()
}

// WriteList writes every workspace of r in aligned columns, marking the
// current one.
func WriteList(w io.Writer, r Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, " \tNAME\tPATH"); err != nil {
		return err
	}
	current := r.CurrentName()
	for _, ws := range r.Workspaces() {
		marker := ""
		if ws.Name == current {
			marker = currentMarker
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", marker, formatWorkspace(ws)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
