package ops

import (
	"fmt"
	"io"

	"github.com/hpungsan/kprune/internal/kubeconfig"
	"github.com/hpungsan/kprune/internal/prompt"
)

// RemovedContext records one deleted context: its position in the
// pre-deletion contexts list and the cluster and user names it referenced.
type RemovedContext struct {
	Index   int
	Cluster string
	User    string
}

// PruneContexts walks the contexts list in document order, asks whether to
// delete each entry (default no), and removes the confirmed ones after the
// full scan. Deletion indices are all taken from the pre-deletion list, so
// earlier removals never shift later ones.
//
// Returns the removal records ordered by original index ascending, for
// cascade deletion of the clusters and users they referenced.
func PruneContexts(doc *kubeconfig.Document, asker *prompt.Asker, out io.Writer) ([]RemovedContext, error) {
	var removed []RemovedContext
	for i, c := range doc.Contexts() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "=== Context: '%s' ===\n", c.Name)
		fmt.Fprintf(out, "cluster: %s\n", c.Cluster)
		fmt.Fprintf(out, "user   : %s\n", c.User)

		del, err := asker.YesOrNo(fmt.Sprintf("Delete context '%s'?", c.Name), false)
		if err != nil {
			return nil, err
		}
		if del {
			removed = append(removed, RemovedContext{Index: i, Cluster: c.Cluster, User: c.User})
		}
	}

	indices := make([]int, len(removed))
	for i, r := range removed {
		indices[i] = r.Index
	}
	doc.RemoveContexts(indices)

	return removed, nil
}
