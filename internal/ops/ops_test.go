package ops

import (
	"io"
	"strings"
	"testing"

	"github.com/hpungsan/kprune/internal/kubeconfig"
	"github.com/hpungsan/kprune/internal/prompt"
)

// sampleConfig is a realistic two-context kubeconfig with opaque fields
// (preferences, certificate data, namespace) that pruning must not touch.
const sampleConfig = `apiVersion: v1
kind: Config
current-context: a
preferences:
  colors: true
clusters:
- cluster:
    server: https://c1.example.com:6443
    certificate-authority-data: Zm9vCg==
  name: c1
- cluster:
    server: https://c2.example.com:6443
    insecure-skip-tls-verify: true
  name: c2
contexts:
- context:
    cluster: c1
    user: u1
  name: a
- context:
    cluster: c2
    user: u2
    namespace: staging
  name: b
users:
- name: u1
  user:
    client-certificate-data: YWJjCg==
    client-key-data: ZGVmCg==
- name: u2
  user:
    token: sekret
`

// mustParse parses a kubeconfig document or fails the test.
func mustParse(t *testing.T, text string) *kubeconfig.Document {
	t.Helper()
	doc, err := kubeconfig.Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

// scriptedAsker returns an Asker fed from a fixed input script, with all
// prompt output discarded.
func scriptedAsker(input string) *prompt.Asker {
	return prompt.New(strings.NewReader(input), io.Discard, io.Discard)
}

func contextNames(doc *kubeconfig.Document) []string {
	var names []string
	for _, c := range doc.Contexts() {
		names = append(names, c.Name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
