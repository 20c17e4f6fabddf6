package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/stubgen/internal/collect"
	"github.com/vericore/stubgen/internal/ir"
	"github.com/vericore/stubgen/internal/universe"
)

const sampleYAML = `
local_crate: harness_crate
crates:
  - name: harness_crate
    root:
      functions:
        - name: mock_behavior
          body_lit: 42
        - name: original_behavior
          body_lit: 1
        - name: check_it
          proof: true
          stub_by:
            - original: original_behavior
              replacement: mock_behavior
      modules:
        inner:
          functions:
            - name: helper
              body_lit: 7
`

func TestLoadBuildsUniverseAndHarness(t *testing.T) {
	built, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	mock, ok := built.Universe.FindLocalByCanonicalPath("mock_behavior")
	require.True(t, ok)
	body, ok := built.Universe.Body(mock)
	require.True(t, ok)
	lit, ok := body.Root.(*ir.Lit)
	require.True(t, ok)
	assert.Equal(t, int64(42), lit.Value)
}

func TestLoadWiresProofHarnessIntoCollector(t *testing.T) {
	built, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	res := collect.Collect(built.Universe, built.Attrs)
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.HarnessDefs, 1)

	harness := res.HarnessDefs[0]
	set, ok := res.Mapping[built.Universe.CanonicalPathOf(harness)]
	require.True(t, ok)
	assert.Equal(t, universe.CanonicalPath("mock_behavior"), set["original_behavior"])
}
