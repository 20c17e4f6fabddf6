// Package scenario loads a declarative description of a compilation
// universe from YAML: a stand-in for a real front end, used by the CLI's
// demo commands and by tests that want a Universe built from a file
// instead of Go code. The two-pass build — declare everything, then wire
// cross-references — resolves import edges only after every module in a
// build has been registered.
package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vericore/stubgen/internal/attrs"
	"github.com/vericore/stubgen/internal/ir"
	"github.com/vericore/stubgen/internal/universe"
)

// Spec is the root of a scenario file.
type Spec struct {
	LocalCrate string      `yaml:"local_crate"`
	Crates     []CrateSpec `yaml:"crates"`
}

// CrateSpec describes one crate's module tree.
type CrateSpec struct {
	Name string     `yaml:"name"`
	Root ModuleSpec `yaml:"root"`
}

// ModuleSpec describes one module's direct contents.
type ModuleSpec struct {
	Functions       []FunctionSpec        `yaml:"functions"`
	Modules         map[string]ModuleSpec `yaml:"modules"`
	ImportFunctions []ImportSpec          `yaml:"import_functions"`
	ImportModules   []ImportSpec          `yaml:"import_modules"`
	ImportGlobs     []string              `yaml:"import_globs"`
}

// FunctionSpec describes one function.
type FunctionSpec struct {
	Name    string  `yaml:"name"`
	Private bool    `yaml:"private"`
	BodyLit *int64  `yaml:"body_lit"`
	Proof   bool    `yaml:"proof"`
	StubBy  []StubBySpec `yaml:"stub_by"`
}

// StubBySpec describes one stub_by(original, replacement) attribute. Both
// fields are raw user-written paths exactly as collect.Collect expects to
// resolve them (keyword-relative or absolute) — not registry keys.
type StubBySpec struct {
	Original    string `yaml:"original"`
	Replacement string `yaml:"replacement"`
}

// ImportSpec describes one import declaration. Target is a
// "crate/canonical::path" reference.
type ImportSpec struct {
	Alias  string `yaml:"alias"`
	Target string `yaml:"target"`
}

// Built is everything Load produces: the assembled universe, an
// attribute extractor populated from every proof/stub_by entry, and the
// registry used to resolve ImportSpec targets and import_globs entries
// (exposed so a caller can look up a declared module or function by key).
type Built struct {
	Universe *universe.Universe
	Attrs    *attrs.StaticExtractor
	Registry map[string]universe.DefID
}

// key joins a crate name and a canonical path into a registry lookup key.
// "/" is used as the crate separator since canonical paths only ever
// contain "::".
func key(crate string, path universe.CanonicalPath) string {
	return crate + "/" + string(path)
}

// Load parses a scenario file and builds its universe.
func Load(r io.Reader) (*Built, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if spec.LocalCrate == "" {
		return nil, fmt.Errorf("scenario: local_crate must be set")
	}
	return build(spec)
}

func build(spec Spec) (*Built, error) {
	b := universe.NewBuilder(spec.LocalCrate)
	registry := map[string]universe.DefID{}
	ext := attrs.NewStaticExtractor()

	type pendingHarness struct {
		def  universe.DefID
		spec FunctionSpec
	}
	var harnesses []pendingHarness

	var declare func(crate string, parent universe.DefID, m ModuleSpec)
	declare = func(crate string, parent universe.DefID, m ModuleSpec) {
		for _, fn := range m.Functions {
			id := b.Function(parent, fn.Name, !fn.Private)
			registry[key(crate, b.Build().CanonicalPathOf(id))] = id
			if fn.BodyLit != nil {
				b.SetBody(id, ir.Body{Origin: string(b.Build().CanonicalPathOf(id)), Root: &ir.Lit{Node: ir.NewNode(uint64(id)), Kind: ir.IntLit, Value: *fn.BodyLit}})
			}
			if fn.Proof {
				harnesses = append(harnesses, pendingHarness{def: id, spec: fn})
			}
		}
		for name, sub := range m.Modules {
			id := b.Module(parent, name, true)
			registry[key(crate, b.Build().CanonicalPathOf(id))] = id
			declare(crate, id, sub)
		}
	}

	for _, c := range spec.Crates {
		root := b.CrateRoot(c.Name)
		registry[key(c.Name, "")] = root
		declare(c.Name, root, c.Root)
	}

	var wire func(crate string, parent universe.DefID, m ModuleSpec) error
	wire = func(crate string, parent universe.DefID, m ModuleSpec) error {
		for _, imp := range m.ImportFunctions {
			target, ok := registry[imp.Target]
			if !ok {
				return fmt.Errorf("scenario: import_functions: unknown target %q", imp.Target)
			}
			b.ImportFunction(parent, imp.Alias, target)
		}
		for _, imp := range m.ImportModules {
			target, ok := registry[imp.Target]
			if !ok {
				return fmt.Errorf("scenario: import_modules: unknown target %q", imp.Target)
			}
			b.ImportModule(parent, imp.Alias, target)
		}
		for _, t := range m.ImportGlobs {
			target, ok := registry[t]
			if !ok {
				return fmt.Errorf("scenario: import_globs: unknown target %q", t)
			}
			b.ImportGlob(parent, target)
		}
		for name, sub := range m.Modules {
			subID := registry[key(crate, joinCanonical(parent, b, name))]
			if err := wire(crate, subID, sub); err != nil {
				return err
			}
		}
		return nil
	}

	for _, c := range spec.Crates {
		root := registry[key(c.Name, "")]
		if err := wire(c.Name, root, c.Root); err != nil {
			return nil, err
		}
	}

	for _, h := range harnesses {
		ext.MarkProof(h.def, universe.Span{})
		for _, s := range h.spec.StubBy {
			ext.AddStubBy(h.def, universe.Span{}, s.Original, s.Replacement)
		}
	}

	return &Built{Universe: b.Build(), Attrs: ext, Registry: registry}, nil
}

func joinCanonical(parent universe.DefID, b *universe.Builder, name string) universe.CanonicalPath {
	parentPath := b.Build().CanonicalPathOf(parent)
	if parentPath == "" {
		return universe.CanonicalPath(name)
	}
	return parentPath + "::" + universe.CanonicalPath(name)
}
