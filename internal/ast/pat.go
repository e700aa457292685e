package ast

import (
	"iter"

	"orn/internal/syntax"
	"orn/token"
)

// Pat is any pattern node.
type Pat syntax.Node

var patKinds = []syntax.Kind{
	syntax.BIND_PAT, syntax.WILDCARD_PAT, syntax.PATH_PAT,
	syntax.LITERAL_PAT, syntax.RECORD_PAT,
}

func CastPat(n *syntax.Node) (*Pat, bool) {
	if n == nil || !kindIn(n.Kind(), patKinds) {
		return nil, false
	}
	return (*Pat)(n), true
}

func (n *Pat) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Pat) Downcast() Node { return Wrap(n.Syntax()) }

type BindPat syntax.Node

func CastBindPat(n *syntax.Node) (*BindPat, bool) {
	if n == nil || n.Kind() != syntax.BIND_PAT {
		return nil, false
	}
	return (*BindPat)(n), true
}

func (n *BindPat) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *BindPat) RefToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.REF_KW, 0)
	return t, t != nil
}

func (n *BindPat) MutToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.MUT_KW, 0)
	return t, t != nil
}

func (n *BindPat) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

type WildcardPat syntax.Node

func CastWildcardPat(n *syntax.Node) (*WildcardPat, bool) {
	if n == nil || n.Kind() != syntax.WILDCARD_PAT {
		return nil, false
	}
	return (*WildcardPat)(n), true
}

func (n *WildcardPat) Syntax() *syntax.Node { return (*syntax.Node)(n) }

type PathPat syntax.Node

func CastPathPat(n *syntax.Node) (*PathPat, bool) {
	if n == nil || n.Kind() != syntax.PATH_PAT {
		return nil, false
	}
	return (*PathPat)(n), true
}

func (n *PathPat) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *PathPat) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

type LiteralPat syntax.Node

func CastLiteralPat(n *syntax.Node) (*LiteralPat, bool) {
	if n == nil || n.Kind() != syntax.LITERAL_PAT {
		return nil, false
	}
	return (*LiteralPat)(n), true
}

func (n *LiteralPat) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *LiteralPat) Literal() (*LiteralExpr, bool) {
	return CastLiteralExpr(n.Syntax().NthChildOfKind(syntax.LITERAL_EXPR, 0))
}

type RecordPat syntax.Node

func CastRecordPat(n *syntax.Node) (*RecordPat, bool) {
	if n == nil || n.Kind() != syntax.RECORD_PAT {
		return nil, false
	}
	return (*RecordPat)(n), true
}

func (n *RecordPat) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordPat) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

func (n *RecordPat) FieldList() (*RecordPatFieldList, bool) {
	return CastRecordPatFieldList(n.Syntax().NthChildOfKind(syntax.RECORD_PAT_FIELD_LIST, 0))
}

type RecordPatFieldList syntax.Node

func CastRecordPatFieldList(n *syntax.Node) (*RecordPatFieldList, bool) {
	if n == nil || n.Kind() != syntax.RECORD_PAT_FIELD_LIST {
		return nil, false
	}
	return (*RecordPatFieldList)(n), true
}

func (n *RecordPatFieldList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordPatFieldList) Fields() iter.Seq[*RecordPatField] {
	return children(n.Syntax(), CastRecordPatField)
}

type RecordPatField syntax.Node

func CastRecordPatField(n *syntax.Node) (*RecordPatField, bool) {
	if n == nil || n.Kind() != syntax.RECORD_PAT_FIELD {
		return nil, false
	}
	return (*RecordPatField)(n), true
}

func (n *RecordPatField) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordPatField) NameRef() (*NameRef, bool) {
	return CastNameRef(n.Syntax().NthChildOfKind(syntax.NAME_REF, 0))
}

func (n *RecordPatField) Pat() (*Pat, bool) {
	return CastPat(nthOfSet(n.Syntax(), patKinds, 0))
}
