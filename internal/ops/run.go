// Package ops implements the pruning pipeline: load the config, confirm
// each context, cascade-delete the clusters and users the deleted contexts
// referenced, then optionally back up and write the file.
package ops

import (
	"fmt"
	"io"
	"time"

	"github.com/hpungsan/kprune/internal/kubeconfig"
	"github.com/hpungsan/kprune/internal/prompt"
)

// RunInput contains parameters for the Run operation.
type RunInput struct {
	Path  string
	Asker *prompt.Asker
	Out   io.Writer
	Now   func() time.Time // defaults to time.Now
}

// Run executes the full pruning pipeline over the config at Path. The file
// on disk is untouched until the final write confirmation; everything up
// to that point mutates the in-memory document only.
func Run(in RunInput) error {
	now := in.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintf(in.Out, "Reading '%s'\n", in.Path)
	doc, err := kubeconfig.Load(in.Path)
	if err != nil {
		return err
	}

	removed, err := PruneContexts(doc, in.Asker, in.Out)
	if err != nil {
		return err
	}
	DeleteOrphans(doc, removed, KindCluster, in.Out)
	DeleteOrphans(doc, removed, KindUser, in.Out)

	rendered, err := doc.Render()
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Out)
	fmt.Fprintf(in.Out, "Final config is:\n%s\n", rendered)

	if _, err := Backup(in.Path, in.Asker, in.Out, now); err != nil {
		return err
	}
	_, err = WriteConfig(in.Path, doc, in.Asker)
	return err
}
