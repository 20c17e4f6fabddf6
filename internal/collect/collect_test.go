package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/stubgen/internal/attrs"
	"github.com/vericore/stubgen/internal/universe"
)

func buildHarnessUniverse() (*universe.Universe, *attrs.StaticExtractor, universe.DefID) {
	b := universe.NewBuilder("harness_crate")
	root := b.LocalRoot()

	b.Function(root, "original_behavior", true)
	b.Function(root, "mock_behavior", true)
	harness := b.Function(root, "check_it", true)

	ext := attrs.NewStaticExtractor()
	ext.MarkProof(harness, universe.Span{})
	ext.AddStubBy(harness, universe.Span{}, "original_behavior", "mock_behavior")

	return b.Build(), ext, harness
}

func TestCollectSingleMapping(t *testing.T) {
	u, ext, harness := buildHarnessUniverse()
	res := Collect(u, ext)

	require.Empty(t, res.Diagnostics)
	require.Len(t, res.HarnessDefs, 1)
	assert.Equal(t, harness, res.HarnessDefs[0])

	harnessPath := u.CanonicalPathOf(harness)
	set, ok := res.Mapping[harnessPath]
	require.True(t, ok)
	assert.Equal(t, universe.CanonicalPath("mock_behavior"), set["original_behavior"])
}

func TestCollectScopesMappingPerHarness(t *testing.T) {
	b := universe.NewBuilder("harness_crate")
	root := b.LocalRoot()
	b.Function(root, "original_behavior", true)
	b.Function(root, "mock_a", true)
	b.Function(root, "mock_b", true)
	harnessA := b.Function(root, "check_a", true)
	harnessB := b.Function(root, "check_b", true)

	ext := attrs.NewStaticExtractor()
	ext.MarkProof(harnessA, universe.Span{})
	ext.AddStubBy(harnessA, universe.Span{}, "original_behavior", "mock_a")
	ext.MarkProof(harnessB, universe.Span{})
	ext.AddStubBy(harnessB, universe.Span{}, "original_behavior", "mock_b")

	u := b.Build()
	res := Collect(u, ext)

	require.Empty(t, res.Diagnostics, "independent harnesses stubbing the same original differently is legal")
	require.Len(t, res.Mapping, 2)

	setA := res.Mapping[u.CanonicalPathOf(harnessA)]
	setB := res.Mapping[u.CanonicalPathOf(harnessB)]
	assert.Equal(t, universe.CanonicalPath("mock_a"), setA["original_behavior"])
	assert.Equal(t, universe.CanonicalPath("mock_b"), setB["original_behavior"])
}

func TestCollectSkipsNonHarnessFunctions(t *testing.T) {
	u, ext, _ := buildHarnessUniverse()
	res := Collect(u, ext)
	assert.Len(t, res.HarnessDefs, 1)
}

func TestCollectMalformedArity(t *testing.T) {
	b := universe.NewBuilder("harness_crate")
	root := b.LocalRoot()
	b.Function(root, "original_behavior", true)
	harness := b.Function(root, "check_it", true)

	ext := attrs.NewStaticExtractor()
	ext.MarkProof(harness, universe.Span{})
	ext.AddStubBy(harness, universe.Span{}, "original_behavior")

	res := Collect(b.Build(), ext)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "RES002", res.Diagnostics[0].Code)
	assert.True(t, res.HasFatal())
}

func TestCollectDuplicateMappingOnSameHarness(t *testing.T) {
	b := universe.NewBuilder("harness_crate")
	root := b.LocalRoot()
	b.Function(root, "original_behavior", true)
	b.Function(root, "mock_a", true)
	b.Function(root, "mock_b", true)
	harness := b.Function(root, "check_it", true)

	ext := attrs.NewStaticExtractor()
	ext.MarkProof(harness, universe.Span{})
	ext.AddStubBy(harness, universe.Span{}, "original_behavior", "mock_a")
	ext.AddStubBy(harness, universe.Span{}, "original_behavior", "mock_b")

	res := Collect(b.Build(), ext)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "RES003", res.Diagnostics[0].Code)
}

func TestCollectUnresolvedOriginalIsFatal(t *testing.T) {
	b := universe.NewBuilder("harness_crate")
	root := b.LocalRoot()
	b.Function(root, "mock_behavior", true)
	harness := b.Function(root, "check_it", true)

	ext := attrs.NewStaticExtractor()
	ext.MarkProof(harness, universe.Span{})
	ext.AddStubBy(harness, universe.Span{}, "does_not_exist", "mock_behavior")

	res := Collect(b.Build(), ext)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "RES001", res.Diagnostics[0].Code)
	assert.True(t, res.HasFatal())
}

func TestSuggestNearestName(t *testing.T) {
	u, _, _ := buildHarnessUniverse()
	got, ok := Suggest(u, "original_behaviour")
	require.True(t, ok)
	assert.Equal(t, "original_behavior", got)
}
