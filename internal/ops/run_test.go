package ops

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hpungsan/kprune/internal/errors"
	"github.com/hpungsan/kprune/internal/prompt"
)

// TestRun_PruneOneContext exercises the complete pipeline: load → prompt
// per context → cascade clusters and users → render → backup → write.
func TestRun_PruneOneContext(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)
	var out bytes.Buffer

	// delete 'a': yes, delete 'b': no, backup: no, write: yes
	asker := prompt.New(strings.NewReader("y\nn\nn\ny\n"), &out, &out)
	err := Run(RunInput{
		Path:  path,
		Asker: asker,
		Out:   &out,
		Now:   fixedClock(time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	written := mustParse(t, string(data))

	require.Equal(t, []string{"b"}, contextNames(written))
	require.Equal(t, []string{"c2"}, written.ClusterNames())
	require.Equal(t, []string{"u2"}, written.UserNames())

	// Opaque fields on surviving entries ride along untouched.
	require.Contains(t, string(data), "insecure-skip-tls-verify: true")
	require.Contains(t, string(data), "token: sekret")
	require.Contains(t, string(data), "namespace: staging")
	require.Contains(t, string(data), "preferences:")

	require.Contains(t, out.String(), "Reading '"+path+"'")
	require.Contains(t, out.String(), "Deleting cluster: 'c1'")
	require.Contains(t, out.String(), "Deleting user: 'u1'")
	require.Contains(t, out.String(), "Final config is:")
}

// TestRun_RoundTrip deletes nothing and writes; the result must be
// semantically equivalent to the original document.
func TestRun_RoundTrip(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)

	asker := prompt.New(strings.NewReader("n\nn\nn\ny\n"), new(bytes.Buffer), new(bytes.Buffer))
	err := Run(RunInput{Path: path, Asker: asker, Out: new(bytes.Buffer)})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var original, written any
	require.NoError(t, yaml.Unmarshal([]byte(sampleConfig), &original))
	require.NoError(t, yaml.Unmarshal(data, &written))
	require.Equal(t, original, written)
}

// TestRun_DeclinedWrite leaves the file byte-identical.
func TestRun_DeclinedWrite(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)

	asker := prompt.New(strings.NewReader("y\ny\nn\nn\n"), new(bytes.Buffer), new(bytes.Buffer))
	err := Run(RunInput{Path: path, Asker: asker, Out: new(bytes.Buffer)})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sampleConfig, string(data))
}

// TestRun_MissingFile aborts with NOT_FOUND before anything is asked: the
// answer source is empty, so any prompt would surface an i/o failure
// instead.
func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	asker := prompt.New(strings.NewReader(""), new(bytes.Buffer), new(bytes.Buffer))
	err := Run(RunInput{Path: path, Asker: asker, Out: new(bytes.Buffer)})
	require.True(t, errors.Is(err, errors.ErrNotFound), "want NOT_FOUND, got %v", err)
}

// TestRun_BackupThenWrite verifies the backup captures the original bytes
// even though contexts were already pruned in memory.
func TestRun_BackupThenWrite(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)

	asker := prompt.New(strings.NewReader("y\nn\ny\ny\n"), new(bytes.Buffer), new(bytes.Buffer))
	err := Run(RunInput{
		Path:  path,
		Asker: asker,
		Out:   new(bytes.Buffer),
		Now:   fixedClock(time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)),
	})
	require.NoError(t, err)

	backup, err := os.ReadFile(path + ".backup.20240102-150405")
	require.NoError(t, err)
	require.Equal(t, sampleConfig, string(backup))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, contextNames(mustParse(t, string(data))))
}
