package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/stubgen/internal/universe"
)

func TestStaticExtractorSplitsProofFromOther(t *testing.T) {
	ext := NewStaticExtractor()
	harness := universe.DefID(1)
	plain := universe.DefID(2)

	ext.MarkProof(harness, universe.Span{})
	ext.AddStubBy(harness, universe.Span{}, "a::foo", "a::bar")
	ext.AddOther(harness, "inline", universe.Span{})

	ext.AddOther(plain, "derive", universe.Span{}, "Debug")

	proof, other := ext.Attrs(harness)
	require.Len(t, proof, 1)
	assert.Equal(t, "proof", proof[0].Name)
	require.Len(t, other, 2)
	assert.Equal(t, "stub_by", other[0].Name)
	assert.Equal(t, []string{"a::foo", "a::bar"}, other[0].Args)
	assert.Equal(t, "inline", other[1].Name)

	proof2, other2 := ext.Attrs(plain)
	assert.Empty(t, proof2)
	require.Len(t, other2, 1)
	assert.Equal(t, "derive", other2[0].Name)
}

func TestStaticExtractorUnknownItemIsEmpty(t *testing.T) {
	ext := NewStaticExtractor()
	proof, other := ext.Attrs(universe.DefID(99))
	assert.Empty(t, proof)
	assert.Empty(t, other)
}
