package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/stubgen/internal/ir"
	"github.com/vericore/stubgen/internal/stubmap"
	"github.com/vericore/stubgen/internal/universe"
)

func litBody(n int64) ir.Body {
	return ir.Body{Origin: "test", Root: &ir.Lit{Node: ir.NewNode(1), Kind: ir.IntLit, Value: n}}
}

func TestGenerateWithoutStubReturnsOriginal(t *testing.T) {
	b := universe.NewBuilder("c")
	root := b.LocalRoot()
	orig := b.Function(root, "orig", true)
	b.SetBody(orig, litBody(1))
	u := b.Build()

	store := stubmap.New()
	store.Install(map[universe.CanonicalPath]universe.CanonicalPath{})

	driver := NewDriver()
	body, diags := driver.Generate(u, store, orig)
	require.Empty(t, diags)
	assert.True(t, body.Equal(litBody(1)))
}

func TestGenerateWithStubSubstitutesBody(t *testing.T) {
	b := universe.NewBuilder("c")
	root := b.LocalRoot()
	orig := b.Function(root, "orig", true)
	repl := b.Function(root, "repl", true)
	b.SetBody(orig, litBody(1))
	b.SetBody(repl, litBody(2))
	u := b.Build()

	store := stubmap.New()
	store.Install(map[universe.CanonicalPath]universe.CanonicalPath{
		"orig": "repl",
	})

	driver := NewDriver()
	body, diags := driver.Generate(u, store, orig)
	require.Empty(t, diags)
	assert.True(t, body.Equal(litBody(2)))
}

func TestGenerateFollowsChain(t *testing.T) {
	b := universe.NewBuilder("c")
	root := b.LocalRoot()
	a := b.Function(root, "a", true)
	mid := b.Function(root, "mid", true)
	final := b.Function(root, "final", true)
	b.SetBody(a, litBody(1))
	b.SetBody(mid, litBody(2))
	b.SetBody(final, litBody(3))
	u := b.Build()

	store := stubmap.New()
	store.Install(map[universe.CanonicalPath]universe.CanonicalPath{
		"a":   "mid",
		"mid": "final",
	})

	driver := NewDriver()
	body, diags := driver.Generate(u, store, a)
	require.Empty(t, diags)
	assert.True(t, body.Equal(litBody(3)))
}

func TestGenerateDetectsCycle(t *testing.T) {
	b := universe.NewBuilder("c")
	root := b.LocalRoot()
	a := b.Function(root, "a", true)
	c := b.Function(root, "c", true)
	b.SetBody(a, litBody(1))
	b.SetBody(c, litBody(2))
	u := b.Build()

	store := stubmap.New()
	store.Install(map[universe.CanonicalPath]universe.CanonicalPath{
		"a": "c",
		"c": "a",
	})

	driver := NewDriver()
	body, diags := driver.Generate(u, store, a)
	require.Len(t, diags, 1)
	assert.Equal(t, "GEN003", diags[0].Code)
	assert.False(t, diags[0].IsFatal())
	assert.True(t, body.Equal(litBody(1)))
}

func TestGenerateMissingReplacementBodyWarns(t *testing.T) {
	b := universe.NewBuilder("c")
	root := b.LocalRoot()
	orig := b.Function(root, "orig", true)
	b.SetBody(orig, litBody(1))
	u := b.Build()

	store := stubmap.New()
	store.Install(map[universe.CanonicalPath]universe.CanonicalPath{
		"orig": "ghost",
	})

	driver := NewDriver()
	body, diags := driver.Generate(u, store, orig)
	require.Len(t, diags, 1)
	assert.Equal(t, "GEN001", diags[0].Code)
	assert.False(t, diags[0].IsFatal())
	assert.True(t, body.Equal(litBody(1)))
}

func TestGenerateBeforeInstallReportsGEN002(t *testing.T) {
	b := universe.NewBuilder("c")
	root := b.LocalRoot()
	orig := b.Function(root, "orig", true)
	b.SetBody(orig, litBody(1))
	u := b.Build()

	store := stubmap.New()

	driver := NewDriver()
	body, diags := driver.Generate(u, store, orig)
	require.Len(t, diags, 1)
	assert.Equal(t, "GEN002", diags[0].Code)
	assert.True(t, body.Equal(litBody(1)))
}
