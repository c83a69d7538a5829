// Package kubeconfig loads and saves kubeconfig files as a yaml node tree.
//
// Working on the node tree instead of typed structs keeps key order,
// comments, and any fields this tool does not know about intact across a
// load/save round trip.
package kubeconfig

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hpungsan/kprune/internal/errors"
)

// Document is a kubeconfig parsed into a mutable yaml node tree.
type Document struct {
	root yaml.Node
}

// Context is a read-only snapshot of one entry in the contexts list.
type Context struct {
	Name    string
	Cluster string
	User    string
}

// DefaultPath returns the default kubeconfig location under the user's
// home directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewIOFailure(fmt.Errorf("could not determine home directory: %w", err))
	}
	return filepath.Join(homeDir, ".kube", "config"), nil
}

// Load reads and parses the kubeconfig at path.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(path)
		}
		return nil, errors.NewIOFailure(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOFailure(err)
	}
	return Parse(data)
}

// Parse parses kubeconfig YAML.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, &doc.root); err != nil {
		return nil, errors.NewIOFailure(fmt.Errorf("parse config: %w", err))
	}
	return doc, nil
}

// Contexts returns a snapshot of the contexts list in document order.
func (d *Document) Contexts() []Context {
	seq := d.section("contexts")
	if seq == nil {
		return nil
	}
	contexts := make([]Context, 0, len(seq.Content))
	for _, entry := range seq.Content {
		contexts = append(contexts, Context{
			Name:    scalarValue(entry, "name"),
			Cluster: scalarValue(mapValue(entry, "context"), "cluster"),
			User:    scalarValue(mapValue(entry, "context"), "user"),
		})
	}
	return contexts
}

// ClusterNames returns the name of each entry in the clusters list, in
// document order.
func (d *Document) ClusterNames() []string {
	return d.entryNames("clusters")
}

// UserNames returns the name of each entry in the users list, in document
// order.
func (d *Document) UserNames() []string {
	return d.entryNames("users")
}

// RemoveContexts removes the context entries at the given indices. Indices
// refer to positions before any removal.
func (d *Document) RemoveContexts(indices []int) {
	removeIndices(d.section("contexts"), indices)
}

// RemoveClusters removes the cluster entries at the given indices. Indices
// refer to positions before any removal.
func (d *Document) RemoveClusters(indices []int) {
	removeIndices(d.section("clusters"), indices)
}

// RemoveUsers removes the user entries at the given indices. Indices refer
// to positions before any removal.
func (d *Document) RemoveUsers(indices []int) {
	removeIndices(d.section("users"), indices)
}

// Encode renders the document to w with kubectl-style formatting: 2-space
// indent, no document start marker.
func (d *Document) Encode(w io.Writer) error {
	if d.root.Kind == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&d.root); err != nil {
		enc.Close()
		return errors.NewIOFailure(fmt.Errorf("render config: %w", err))
	}
	if err := enc.Close(); err != nil {
		return errors.NewIOFailure(fmt.Errorf("render config: %w", err))
	}
	return nil
}

// Render returns the document as YAML text.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Save writes the document back to path, truncating in place. The write is
// not atomic; a crash mid-write can corrupt the file.
func (d *Document) Save(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.NewIOFailure(err)
	}
	if err := d.Encode(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.NewIOFailure(err)
	}
	return nil
}

// mapping returns the top-level mapping node, or nil for an empty document.
func (d *Document) mapping() *yaml.Node {
	if d.root.Kind != yaml.DocumentNode || len(d.root.Content) == 0 {
		return nil
	}
	top := d.root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil
	}
	return top
}

// section returns the named top-level sequence, or nil if absent.
func (d *Document) section(key string) *yaml.Node {
	seq := mapValue(d.mapping(), key)
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil
	}
	return seq
}

// entryNames returns the name field of each entry in a named section.
func (d *Document) entryNames(key string) []string {
	seq := d.section(key)
	if seq == nil {
		return nil
	}
	names := make([]string, 0, len(seq.Content))
	for _, entry := range seq.Content {
		names = append(names, scalarValue(entry, "name"))
	}
	return names
}

// mapValue returns the value node for key within a mapping node, or nil.
func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// scalarValue returns the scalar value for key within a mapping node, or "".
func scalarValue(m *yaml.Node, key string) string {
	v := mapValue(m, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}

// removeIndices deletes the entries at the given indices from a sequence
// node. All indices refer to the pre-removal index space; splicing in
// descending order keeps the remaining ones valid.
func removeIndices(seq *yaml.Node, indices []int) {
	if seq == nil || len(indices) == 0 {
		return
	}
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		if i < 0 || i >= len(seq.Content) {
			continue
		}
		seq.Content = append(seq.Content[:i], seq.Content[i+1:]...)
	}
}
