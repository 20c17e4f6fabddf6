package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/stubgen/internal/ir"
)

func TestBuilderAssignsCanonicalPaths(t *testing.T) {
	b := NewBuilder("c")
	root := b.LocalRoot()
	foo := b.Function(root, "foo", true)
	inner := b.Module(root, "inner", true)
	bar := b.Function(inner, "bar", true)
	u := b.Build()

	assert.Equal(t, CanonicalPath(""), u.CanonicalPathOf(root))
	assert.Equal(t, CanonicalPath("foo"), u.CanonicalPathOf(foo))
	assert.Equal(t, CanonicalPath("inner"), u.CanonicalPathOf(inner))
	assert.Equal(t, CanonicalPath("inner::bar"), u.CanonicalPathOf(bar))
	assert.True(t, u.IsRoot(root))
	assert.False(t, u.IsRoot(inner))
}

func TestParentAndIsLocal(t *testing.T) {
	b := NewBuilder("c")
	root := b.LocalRoot()
	inner := b.Module(root, "inner", true)
	other := b.CrateRoot("other")
	u := b.Build()

	parent, ok := u.Parent(inner)
	require.True(t, ok)
	assert.Equal(t, root, parent)

	_, ok = u.Parent(root)
	assert.False(t, ok)

	assert.True(t, u.IsLocal(inner))
	assert.False(t, u.IsLocal(other))
}

func TestExportedChildrenFiltersVisibility(t *testing.T) {
	b := NewBuilder("c")
	root := b.LocalRoot()
	b.Function(root, "pub_fn", true)
	b.Function(root, "priv_fn", false)
	u := b.Build()

	exported := u.ExportedChildren(root)
	require.Len(t, exported, 1)
	assert.Equal(t, "pub_fn", exported[0].Name)
}

func TestFindLocalByCanonicalPath(t *testing.T) {
	b := NewBuilder("c")
	root := b.LocalRoot()
	b.Function(root, "foo", true)
	u := b.Build()

	id, ok := u.FindLocalByCanonicalPath("foo")
	require.True(t, ok)
	assert.Equal(t, CanonicalPath("foo"), u.CanonicalPathOf(id))

	_, ok = u.FindLocalByCanonicalPath("missing")
	assert.False(t, ok)
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "", LastSegment(""))
	assert.Equal(t, "foo", LastSegment("foo"))
	assert.Equal(t, "bar", LastSegment("a::foo::bar"))
}

func TestBodyRoundTrips(t *testing.T) {
	b := NewBuilder("c")
	root := b.LocalRoot()
	fn := b.Function(root, "foo", true)
	u := b.Build()

	_, ok := u.Body(fn)
	assert.False(t, ok)

	want := ir.Body{Origin: "foo", Root: &ir.Lit{Node: ir.NewNode(1), Kind: ir.IntLit, Value: int64(5)}}
	u.SetBody(fn, want)
	got, ok := u.Body(fn)
	require.True(t, ok)
	assert.True(t, want.Equal(got))
}
