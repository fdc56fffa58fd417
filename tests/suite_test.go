// Package tests runs the official JSON-Schema-Test-Suite against the
// validator. The suite is expected as a checkout under
// testdata/JSON-Schema-Test-Suite; every test skips cleanly when it is
// absent so the package works without the submodule.
package tests

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/jsonschema"
)

const (
	suiteRoot  = "testdata/JSON-Schema-Test-Suite"
	remoteBase = "http://localhost:1234/"
)

// skippedFiles lists suite files exercising behavior that is out of scope:
// fetching the draft-07 metaschema over the network.
var skippedFiles = map[string]string{
	"definitions.json": "requires fetching the draft-07 metaschema",
	"ref.json":         "contains metaschema-fetching cases",
}

type suiteGroup struct {
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
	Tests       []suiteCase     `json:"tests"`
}

type suiteCase struct {
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
	Valid       bool            `json:"valid"`
}

// newSuiteCompiler builds a compiler with format assertion off (the suite
// treats format as an annotation) and a loader serving the suite's remotes/
// directory for http://localhost:1234/ URIs.
func newSuiteCompiler(t *testing.T) *jsonschema.Compiler {
	t.Helper()
	compiler := jsonschema.NewCompiler().WithAssertFormat(false)
	compiler.RegisterLoader("http", func(uri string) (io.ReadCloser, error) {
		relative, ok := strings.CutPrefix(uri, remoteBase)
		if !ok {
			return nil, errors.Errorf("unexpected remote uri %q", uri)
		}
		file, err := os.Open(filepath.Join(suiteRoot, "remotes", filepath.FromSlash(relative)))
		if err != nil {
			return nil, errors.Wrapf(err, "remote %q", uri)
		}
		return file, nil
	})
	return compiler
}

func TestDraft7Suite(t *testing.T) {
	suiteDir := filepath.Join(suiteRoot, "tests", "draft7")
	entries, err := os.ReadDir(suiteDir)
	if err != nil {
		t.Skipf("official test suite not present at %s", suiteDir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if reason, skip := skippedFiles[entry.Name()]; skip {
			t.Run(entry.Name(), func(t *testing.T) { t.Skip(reason) })
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			runSuiteFile(t, filepath.Join(suiteDir, entry.Name()))
		})
	}
}

func runSuiteFile(t *testing.T, path string) {
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var groups []suiteGroup
	require.NoError(t, json.Unmarshal(data, &groups))

	for _, group := range groups {
		t.Run(group.Description, func(t *testing.T) {
			compiler := newSuiteCompiler(t)
			schema, err := compiler.Compile(group.Schema)
			require.NoError(t, err, "schema should compile")

			for _, test := range group.Tests {
				t.Run(test.Description, func(t *testing.T) {
					var instance any
					require.NoError(t, json.Unmarshal(test.Data, &instance))

					if got := schema.IsValid(instance); got != test.Valid {
						t.Errorf("IsValid = %v, suite expects %v", got, test.Valid)
					}
				})
			}
		})
	}
}
