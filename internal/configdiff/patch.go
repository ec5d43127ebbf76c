package configdiff

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/mikai233/gohocon/format"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/path"
)

// MergePatch computes an RFC 7396 JSON Merge Patch taking oldNode to
// newNode (github.com/evanphx/json-patch only generates merge patches,
// not RFC 6902 patch documents, so that is what `hocon diff --patch`
// produces). ApplyMergePatch is its inverse.
func MergePatch(oldNode, newNode *ir.Node) ([]byte, error) {
	oldJSON, err := jsonBytes(oldNode)
	if err != nil {
		return nil, err
	}
	newJSON, err := jsonBytes(newNode)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(oldJSON, newJSON)
}

// ApplyMergePatch applies a patch produced by MergePatch (or any RFC 7396
// JSON Merge Patch document) to original and parses the merged result
// back into an *ir.Node.
func ApplyMergePatch(original *ir.Node, patch []byte) (*ir.Node, error) {
	originalJSON, err := jsonBytes(original)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(originalJSON, patch)
	if err != nil {
		return nil, err
	}
	return format.ParseJSON(merged)
}

func jsonBytes(n *ir.Node) ([]byte, error) {
	v, err := path.ToJSON(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
