package ops

import (
	"fmt"

	"github.com/hpungsan/kprune/internal/kubeconfig"
	"github.com/hpungsan/kprune/internal/prompt"
)

// WriteConfig offers to write the mutated document back to path (default
// no). Returns whether the file was written. The write truncates in place.
func WriteConfig(path string, doc *kubeconfig.Document, asker *prompt.Asker) (bool, error) {
	write, err := asker.YesOrNo(fmt.Sprintf("Write updated config back to '%s'?", path), false)
	if err != nil {
		return false, err
	}
	if !write {
		return false, nil
	}
	if err := doc.Save(path); err != nil {
		return false, err
	}
	return true, nil
}
