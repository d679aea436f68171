package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// NodeTransformer rewrites a node of the document in place.
type NodeTransformer func(n ast.Node)

// Transformer applies node transformers to every node of a parsed
// document. It holds no per-document state and can be shared.
type Transformer struct {
	transformers []NodeTransformer
}

// Transform implements parser.ASTTransformer.
func (t *Transformer) Transform(root *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		for _, transform := range t.transformers {
			transform(n)
		}

		return ast.WalkContinue, nil
	})
}

func NewTransformer(transformers ...NodeTransformer) *Transformer {
	return &Transformer{transformers}
}

var _ parser.ASTTransformer = &Transformer{}

var strippedURL = []byte("#stripped")

// StripDataURL replaces inlined data URLs of links and images.
var StripDataURL NodeTransformer = func(n ast.Node) {
	stripDataURL := func(destination []byte) []byte {
		if bytes.HasPrefix(bytes.ToLower(bytes.TrimSpace(destination)), []byte("data:")) {
			return strippedURL
		}
		return destination
	}

	switch typ := n.(type) {
	case *ast.Image:
		typ.Destination = stripDataURL(typ.Destination)
	case *ast.Link:
		typ.Destination = stripDataURL(typ.Destination)
	}
}
