package ops

import (
	"fmt"
	"io"

	"github.com/hpungsan/kprune/internal/kubeconfig"
)

// OrphanKind selects which list DeleteOrphans operates on.
type OrphanKind string

const (
	KindCluster OrphanKind = "cluster"
	KindUser    OrphanKind = "user"
)

// DeleteOrphans removes the cluster or user entries whose names were
// referenced by the deleted contexts, reporting each removal. Returns the
// deleted names in document order.
//
// The deletion set is built solely from the removed contexts' references.
// An entry still referenced by a surviving context is deleted anyway if it
// shares a name with a deleted context's reference, and every entry
// carrying a listed name is removed, duplicates included.
func DeleteOrphans(doc *kubeconfig.Document, removed []RemovedContext, kind OrphanKind, out io.Writer) []string {
	names := make(map[string]bool, len(removed))
	for _, r := range removed {
		switch kind {
		case KindCluster:
			names[r.Cluster] = true
		case KindUser:
			names[r.User] = true
		}
	}

	var entryNames []string
	switch kind {
	case KindCluster:
		entryNames = doc.ClusterNames()
	case KindUser:
		entryNames = doc.UserNames()
	}

	var indices []int
	var deleted []string
	for i, name := range entryNames {
		if names[name] {
			indices = append(indices, i)
			deleted = append(deleted, name)
			fmt.Fprintf(out, "Deleting %s: '%s'\n", kind, name)
		}
	}

	switch kind {
	case KindCluster:
		doc.RemoveClusters(indices)
	case KindUser:
		doc.RemoveUsers(indices)
	}

	return deleted
}
