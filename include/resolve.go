package include

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mikai233/gohocon/debug"
	"github.com/mikai233/gohocon/format"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/merge"
	"github.com/mikai233/gohocon/parse"
)

// Options configures include resolution (spec.md §6 "classpath_roots",
// "extension_less_include_order").
type Options struct {
	// ClasspathRoots are searched, in order, for a relative include
	// locator. Defaults to ["."] when empty.
	ClasspathRoots []string
	// BaseDir, when set, is searched before ClasspathRoots — the
	// directory of the file originally passed to Load.
	BaseDir string
	// Order controls which format wins when an extension-less locator
	// resolves to more than one file. Defaults to format.DefaultOrder().
	Order []format.Format
}

// Expand walks root, splicing in every IncludeType placeholder's content
// (spec.md §4.4), recursively expanding includes found within included
// content, and merging everything into a single include-free raw tree.
func Expand(root *ir.Node, opts Options) (*ir.Node, error) {
	st := &state{opts: opts, stack: map[string]bool{}}
	return st.expandObject(root)
}

type state struct {
	opts  Options
	stack map[string]bool
}

func (st *state) roots() []string {
	roots := make([]string, 0, len(st.opts.ClasspathRoots)+1)
	if st.opts.BaseDir != "" {
		roots = append(roots, st.opts.BaseDir)
	}
	roots = append(roots, st.opts.ClasspathRoots...)
	if len(st.opts.ClasspathRoots) == 0 {
		roots = append(roots, ".")
	}
	return roots
}

func (st *state) order() []format.Format {
	if st.opts.Order != nil {
		return st.opts.Order
	}
	return format.DefaultOrder()
}

func (st *state) expandObject(obj *ir.Node) (*ir.Node, error) {
	result := ir.EmptyObject()
	for i, f := range obj.Fields {
		v := obj.Values[i]
		if f == "" && v.Type == ir.IncludeType {
			spliced, err := st.loadInclude(v)
			if err != nil {
				return nil, err
			}
			for j, sf := range spliced.Fields {
				prior := merge.AssignField(result, sf, spliced.Values[j])
				refreshSelfPrior(spliced.Values[j], prior)
			}
			continue
		}
		expanded, err := st.expandValue(v)
		if err != nil {
			return nil, err
		}
		prior := merge.AssignField(result, f, expanded)
		refreshSelfPrior(expanded, prior)
	}
	return result, nil
}

// refreshSelfPrior re-derives a `+=` self-substitution's "prior binding"
// (spec.md §4.5) after splicing has happened: parse.Parse only sees a
// single document and so can only capture an earlier same-document
// assignment as SelfPrior, leaving it nil when the field's only earlier
// content came from an include. Once expandObject has spliced and merged
// that included content into result, AssignField's return value is the
// field's binding immediately before this assignment — exactly what a
// still-nil SelfPrior needs, so self-referencing concatenations like
// `x += v` see content the main document only received via include.
func refreshSelfPrior(value *ir.Node, prior *ir.Node) {
	if prior == nil {
		return
	}
	parts := []*ir.Node{value}
	if value.Type == ir.ConcatType {
		parts = value.Values
	}
	for _, part := range parts {
		if part.Type == ir.SubstitutionType && part.IsSelf && part.SelfPrior == nil {
			part.SelfPrior = prior.Clone()
		}
	}
}

func (st *state) expandValue(v *ir.Node) (*ir.Node, error) {
	switch v.Type {
	case ir.ObjectType:
		return st.expandObject(v)
	case ir.ArrayType:
		values := make([]*ir.Node, len(v.Values))
		for i, e := range v.Values {
			ev, err := st.expandValue(e)
			if err != nil {
				return nil, err
			}
			values[i] = ev
		}
		return ir.FromSlice(values), nil
	case ir.ConcatType:
		values := make([]*ir.Node, len(v.Values))
		for i, e := range v.Values {
			ev, err := st.expandValue(e)
			if err != nil {
				return nil, err
			}
			values[i] = ev
		}
		c := &ir.Node{Type: ir.ConcatType, Values: values, Seps: v.Seps}
		for i, cv := range values {
			cv.Parent, cv.ParentIndex = c, i
		}
		return c, nil
	default:
		return v, nil
	}
}

// loadInclude resolves one IncludeType placeholder to an include-free
// object, applying required/optional semantics (spec.md §4.4) and, for
// an extension-less locator, merging every format that resolves
// (default order: properties, then JSON, then HOCON — so HOCON wins).
func (st *state) loadInclude(n *ir.Node) (*ir.Node, error) {
	if filepath.Ext(n.IncludeLocator) != "" || n.IncludeKind == ir.IncludeURL {
		raw, path, err := st.loadSingle(n.IncludeLocator, n.IncludeKind)
		if err != nil {
			if n.IncludeRequired {
				if os.IsNotExist(err) {
					return nil, missingRequiredErr(n.IncludeLocator)
				}
				return nil, ioErr(n.IncludeLocator, err)
			}
			return ir.EmptyObject(), nil
		}
		return st.expandWithCycleGuard(path, raw)
	}

	merged := ir.EmptyObject()
	found := false
	for _, f := range st.order() {
		raw, path, err := st.loadSingle(n.IncludeLocator+f.Suffix(), n.IncludeKind)
		if err != nil {
			continue
		}
		found = true
		expanded, err := st.expandWithCycleGuard(path, raw)
		if err != nil {
			return nil, err
		}
		for i, field := range expanded.Fields {
			prior := merge.AssignField(merged, field, expanded.Values[i])
			refreshSelfPrior(expanded.Values[i], prior)
		}
	}
	if !found {
		if n.IncludeRequired {
			return nil, missingRequiredErr(n.IncludeLocator)
		}
		return ir.EmptyObject(), nil
	}
	return merged, nil
}

func (st *state) expandWithCycleGuard(path string, raw *ir.Node) (*ir.Node, error) {
	canon, err := filepath.Abs(path)
	if err != nil {
		canon = path
	}
	if resolved, err := filepath.EvalSymlinks(canon); err == nil {
		canon = resolved
	}
	if st.stack[canon] {
		return nil, cyclicErr(path)
	}
	st.stack[canon] = true
	defer delete(st.stack, canon)
	if debug.Include() {
		debug.Logf("include: expanding %s\n", canon)
	}
	return st.expandObject(raw)
}

func (st *state) loadSingle(locator string, kind ir.IncludeKind) (raw *ir.Node, path string, err error) {
	data, path, err := st.readResource(locator, kind)
	if err != nil {
		return nil, "", err
	}
	raw, err = parseByExtension(path, data)
	if err != nil {
		return nil, "", err
	}
	return raw, path, nil
}

func (st *state) readResource(locator string, kind ir.IncludeKind) (data []byte, path string, err error) {
	if kind == ir.IncludeURL {
		return fetchURL(locator)
	}
	if filepath.IsAbs(locator) {
		d, e := os.ReadFile(locator)
		if e != nil {
			return nil, "", e
		}
		return d, locator, nil
	}
	var lastErr error = fmt.Errorf("no classpath roots configured")
	for _, root := range st.roots() {
		p := filepath.Join(root, locator)
		d, e := os.ReadFile(p)
		if e == nil {
			return d, p, nil
		}
		lastErr = e
	}
	return nil, "", lastErr
}

func fetchURL(locator string) ([]byte, string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(locator)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %s fetching %s", resp.Status, locator)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, locator, nil
}

func parseByExtension(path string, data []byte) (*ir.Node, error) {
	switch filepath.Ext(path) {
	case ".json":
		return format.ParseJSON(data)
	case ".properties":
		return format.ParseProperties(data)
	default:
		return parse.Parse(data)
	}
}
