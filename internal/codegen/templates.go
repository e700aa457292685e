package codegen

const kindTemplate = `// Code generated by orn-syntaxgen. DO NOT EDIT.

package {{.Package}}

// Kind identifies a syntax node category.
type Kind uint16

const (
	ERROR Kind = iota
{{- range .Kinds}}
	{{.}}
{{- end}}
)

var kindNames = [...]string{
	ERROR: "ERROR",
{{- range .Kinds}}
	{{.}}: "{{.}}",
{{- end}}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ERROR"
}
`

const facadeTemplate = `// Code generated by orn-syntaxgen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .HasMany}}
	"iter"
{{end}}
	"orn/internal/{{.KindPackage}}"
{{- if .HasTokens}}
	"orn/token"
{{- end}}
)

// Node is implemented by every typed wrapper.
type Node interface {
	Syntax() *{{.KindPackage}}.Node
}

// Wrap returns the typed wrapper for a node, or nil for a kind with no
// wrapper.
func Wrap(n *{{.KindPackage}}.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
{{- range .Nodes}}
	case {{$.KindPackage}}.{{.Kind}}:
		return (*{{.Name}})(n)
{{- end}}
	default:
		return nil
	}
}

func kindIn(k {{.KindPackage}}.Kind, kinds []{{.KindPackage}}.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func nthOfSet(n *{{.KindPackage}}.Node, kinds []{{.KindPackage}}.Kind, nth int) *{{.KindPackage}}.Node {
	for c := range n.Children() {
		child, ok := c.(*{{.KindPackage}}.Node)
		if !ok || !kindIn(child.Kind(), kinds) {
			continue
		}
		if nth == 0 {
			return child
		}
		nth--
	}
	return nil
}
{{if .HasMany}}
func children[T Node](n *{{.KindPackage}}.Node, cast func(*{{.KindPackage}}.Node) (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range n.Children() {
			child, ok := c.(*{{.KindPackage}}.Node)
			if !ok {
				continue
			}
			if t, ok := cast(child); ok && !yield(t) {
				return
			}
		}
	}
}
{{end}}
{{- if .HasManyTokens}}
func tokens(n *{{.KindPackage}}.Node, kind token.Kind) iter.Seq[*{{.KindPackage}}.Token] {
	return func(yield func(*{{.KindPackage}}.Token) bool) {
		for c := range n.Children() {
			if t, ok := c.(*{{.KindPackage}}.Token); ok && t.Kind() == kind && !yield(t) {
				return
			}
		}
	}
}
{{end}}
{{- range .Sums}}
type {{.Name}} {{$.KindPackage}}.Node

var {{.SetVar}} = []{{$.KindPackage}}.Kind{
{{- range .Kinds}}
	{{$.KindPackage}}.{{.}},
{{- end}}
}

func Cast{{.Name}}(n *{{$.KindPackage}}.Node) (*{{.Name}}, bool) {
	if n == nil || !kindIn(n.Kind(), {{.SetVar}}) {
		return nil, false
	}
	return (*{{.Name}})(n), true
}

func (n *{{.Name}}) Syntax() *{{$.KindPackage}}.Node { return (*{{$.KindPackage}}.Node)(n) }

// Downcast returns the concrete wrapper behind the group.
func (n *{{.Name}}) Downcast() Node { return Wrap(n.Syntax()) }
{{end}}
{{- range $node := .Nodes}}
type {{$node.Name}} {{$.KindPackage}}.Node

func Cast{{$node.Name}}(n *{{$.KindPackage}}.Node) (*{{$node.Name}}, bool) {
	if n == nil || n.Kind() != {{$.KindPackage}}.{{$node.Kind}} {
		return nil, false
	}
	return (*{{$node.Name}})(n), true
}

func (n *{{$node.Name}}) Syntax() *{{$.KindPackage}}.Node { return (*{{$.KindPackage}}.Node)(n) }
{{range $node.Accessors}}
{{- if eq .Form "token"}}
func (n *{{$node.Name}}) {{.Method}}() (*{{$.KindPackage}}.Token, bool) {
	t := n.Syntax().NthTokenOfKind({{.TokenKind}}, {{.Index}})
	return t, t != nil
}
{{else if eq .Form "manyToken"}}
func (n *{{$node.Name}}) {{.Method}}() iter.Seq[*{{$.KindPackage}}.Token] {
	return tokens(n.Syntax(), {{.TokenKind}})
}
{{else if eq .Form "node"}}
func (n *{{$node.Name}}) {{.Method}}() ({{.ElemType}}, bool) {
	return {{.Cast}}(n.Syntax().NthChildOfKind({{$.KindPackage}}.{{.NodeKind}}, {{.Index}}))
}
{{else if eq .Form "sum"}}
func (n *{{$node.Name}}) {{.Method}}() ({{.ElemType}}, bool) {
	return {{.Cast}}(nthOfSet(n.Syntax(), {{.SetVar}}, {{.Index}}))
}
{{else}}
func (n *{{$node.Name}}) {{.Method}}() iter.Seq[{{.ElemType}}] {
	return children(n.Syntax(), {{.Cast}})
}
{{end}}
{{- end}}
{{- end}}`
