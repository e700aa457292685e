package ast

import (
	"iter"

	"orn/internal/syntax"
	"orn/token"
)

// SourceFile is the root of a parsed file.
type SourceFile syntax.Node

func CastSourceFile(n *syntax.Node) (*SourceFile, bool) {
	if n == nil || n.Kind() != syntax.SOURCE_FILE {
		return nil, false
	}
	return (*SourceFile)(n), true
}

func (n *SourceFile) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *SourceFile) Items() iter.Seq[*Item] { return children(n.Syntax(), CastItem) }

// Name is a defining occurrence of an identifier.
type Name syntax.Node

func CastName(n *syntax.Node) (*Name, bool) {
	if n == nil || n.Kind() != syntax.NAME {
		return nil, false
	}
	return (*Name)(n), true
}

func (n *Name) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Name) IdentToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.IDENT, 0)
	return t, t != nil
}

// NameRef is a referencing occurrence of an identifier.
type NameRef syntax.Node

func CastNameRef(n *syntax.Node) (*NameRef, bool) {
	if n == nil || n.Kind() != syntax.NAME_REF {
		return nil, false
	}
	return (*NameRef)(n), true
}

func (n *NameRef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *NameRef) IdentToken() (*syntax.Token, bool) {
	t := n.Syntax().NthTokenOfKind(token.IDENT, 0)
	return t, t != nil
}

// Path is a possibly qualified name, e.g. std::vec::Vec.
type Path syntax.Node

func CastPath(n *syntax.Node) (*Path, bool) {
	if n == nil || n.Kind() != syntax.PATH {
		return nil, false
	}
	return (*Path)(n), true
}

func (n *Path) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Path) Qualifier() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

func (n *Path) Segment() (*PathSegment, bool) {
	return CastPathSegment(n.Syntax().NthChildOfKind(syntax.PATH_SEGMENT, 0))
}

type PathSegment syntax.Node

func CastPathSegment(n *syntax.Node) (*PathSegment, bool) {
	if n == nil || n.Kind() != syntax.PATH_SEGMENT {
		return nil, false
	}
	return (*PathSegment)(n), true
}

func (n *PathSegment) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *PathSegment) NameRef() (*NameRef, bool) {
	return CastNameRef(n.Syntax().NthChildOfKind(syntax.NAME_REF, 0))
}

func (n *PathSegment) GenericArgList() (*GenericArgList, bool) {
	return CastGenericArgList(n.Syntax().NthChildOfKind(syntax.GENERIC_ARG_LIST, 0))
}

type GenericArgList syntax.Node

func CastGenericArgList(n *syntax.Node) (*GenericArgList, bool) {
	if n == nil || n.Kind() != syntax.GENERIC_ARG_LIST {
		return nil, false
	}
	return (*GenericArgList)(n), true
}

func (n *GenericArgList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *GenericArgList) Tys() iter.Seq[*Type] { return children(n.Syntax(), CastType) }

// Attr is an attribute, e.g. #[inline] or #[doc = "..."].
type Attr syntax.Node

func CastAttr(n *syntax.Node) (*Attr, bool) {
	if n == nil || n.Kind() != syntax.ATTR {
		return nil, false
	}
	return (*Attr)(n), true
}

func (n *Attr) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Attr) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

func (n *Attr) Value() (*LiteralExpr, bool) {
	return CastLiteralExpr(n.Syntax().NthChildOfKind(syntax.LITERAL_EXPR, 0))
}

type Visibility syntax.Node

func CastVisibility(n *syntax.Node) (*Visibility, bool) {
	if n == nil || n.Kind() != syntax.VISIBILITY {
		return nil, false
	}
	return (*Visibility)(n), true
}

func (n *Visibility) Syntax() *syntax.Node { return (*syntax.Node)(n) }

// Item is any top-level declaration.
type Item syntax.Node

var itemKinds = []syntax.Kind{
	syntax.FN_DEF, syntax.STRUCT_DEF, syntax.ENUM_DEF, syntax.TRAIT_DEF,
	syntax.IMPL_BLOCK, syntax.USE_DECL, syntax.CONST_DEF, syntax.TYPE_ALIAS,
	syntax.MOD_DEF,
}

func CastItem(n *syntax.Node) (*Item, bool) {
	if n == nil || !kindIn(n.Kind(), itemKinds) {
		return nil, false
	}
	return (*Item)(n), true
}

func (n *Item) Syntax() *syntax.Node { return (*syntax.Node)(n) }

// Downcast returns the concrete wrapper behind the group.
func (n *Item) Downcast() Node { return Wrap(n.Syntax()) }

// FnDef is a function definition.
type FnDef syntax.Node

func CastFnDef(n *syntax.Node) (*FnDef, bool) {
	if n == nil || n.Kind() != syntax.FN_DEF {
		return nil, false
	}
	return (*FnDef)(n), true
}

func (n *FnDef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *FnDef) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *FnDef) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *FnDef) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *FnDef) GenericParamList() (*GenericParamList, bool) {
	return CastGenericParamList(n.Syntax().NthChildOfKind(syntax.GENERIC_PARAM_LIST, 0))
}

func (n *FnDef) ParamList() (*ParamList, bool) {
	return CastParamList(n.Syntax().NthChildOfKind(syntax.PARAM_LIST, 0))
}

func (n *FnDef) RetType() (*RetType, bool) {
	return CastRetType(n.Syntax().NthChildOfKind(syntax.RET_TYPE, 0))
}

func (n *FnDef) WhereClause() (*WhereClause, bool) {
	return CastWhereClause(n.Syntax().NthChildOfKind(syntax.WHERE_CLAUSE, 0))
}

func (n *FnDef) Body() (*BlockExpr, bool) {
	return CastBlockExpr(n.Syntax().NthChildOfKind(syntax.BLOCK_EXPR, 0))
}

type ParamList syntax.Node

func CastParamList(n *syntax.Node) (*ParamList, bool) {
	if n == nil || n.Kind() != syntax.PARAM_LIST {
		return nil, false
	}
	return (*ParamList)(n), true
}

func (n *ParamList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ParamList) Params() iter.Seq[*Param] { return children(n.Syntax(), CastParam) }

type Param syntax.Node

func CastParam(n *syntax.Node) (*Param, bool) {
	if n == nil || n.Kind() != syntax.PARAM {
		return nil, false
	}
	return (*Param)(n), true
}

func (n *Param) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Param) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *Param) Pat() (*Pat, bool) {
	return CastPat(nthOfSet(n.Syntax(), patKinds, 0))
}

func (n *Param) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

type RetType syntax.Node

func CastRetType(n *syntax.Node) (*RetType, bool) {
	if n == nil || n.Kind() != syntax.RET_TYPE {
		return nil, false
	}
	return (*RetType)(n), true
}

func (n *RetType) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RetType) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

type GenericParamList syntax.Node

func CastGenericParamList(n *syntax.Node) (*GenericParamList, bool) {
	if n == nil || n.Kind() != syntax.GENERIC_PARAM_LIST {
		return nil, false
	}
	return (*GenericParamList)(n), true
}

func (n *GenericParamList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *GenericParamList) TypeParams() iter.Seq[*TypeParam] {
	return children(n.Syntax(), CastTypeParam)
}

type TypeParam syntax.Node

func CastTypeParam(n *syntax.Node) (*TypeParam, bool) {
	if n == nil || n.Kind() != syntax.TYPE_PARAM {
		return nil, false
	}
	return (*TypeParam)(n), true
}

func (n *TypeParam) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TypeParam) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *TypeParam) Bounds() (*TypeBoundList, bool) {
	return CastTypeBoundList(n.Syntax().NthChildOfKind(syntax.TYPE_BOUND_LIST, 0))
}

type TypeBoundList syntax.Node

func CastTypeBoundList(n *syntax.Node) (*TypeBoundList, bool) {
	if n == nil || n.Kind() != syntax.TYPE_BOUND_LIST {
		return nil, false
	}
	return (*TypeBoundList)(n), true
}

func (n *TypeBoundList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TypeBoundList) Bounds() iter.Seq[*TypeBound] {
	return children(n.Syntax(), CastTypeBound)
}

type TypeBound syntax.Node

func CastTypeBound(n *syntax.Node) (*TypeBound, bool) {
	if n == nil || n.Kind() != syntax.TYPE_BOUND {
		return nil, false
	}
	return (*TypeBound)(n), true
}

func (n *TypeBound) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TypeBound) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

type WhereClause syntax.Node

func CastWhereClause(n *syntax.Node) (*WhereClause, bool) {
	if n == nil || n.Kind() != syntax.WHERE_CLAUSE {
		return nil, false
	}
	return (*WhereClause)(n), true
}

func (n *WhereClause) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *WhereClause) Preds() iter.Seq[*WherePred] {
	return children(n.Syntax(), CastWherePred)
}

type WherePred syntax.Node

func CastWherePred(n *syntax.Node) (*WherePred, bool) {
	if n == nil || n.Kind() != syntax.WHERE_PRED {
		return nil, false
	}
	return (*WherePred)(n), true
}

func (n *WherePred) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *WherePred) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

func (n *WherePred) Bounds() (*TypeBoundList, bool) {
	return CastTypeBoundList(n.Syntax().NthChildOfKind(syntax.TYPE_BOUND_LIST, 0))
}

// StructDef is a struct definition.
type StructDef syntax.Node

func CastStructDef(n *syntax.Node) (*StructDef, bool) {
	if n == nil || n.Kind() != syntax.STRUCT_DEF {
		return nil, false
	}
	return (*StructDef)(n), true
}

func (n *StructDef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *StructDef) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *StructDef) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *StructDef) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *StructDef) GenericParamList() (*GenericParamList, bool) {
	return CastGenericParamList(n.Syntax().NthChildOfKind(syntax.GENERIC_PARAM_LIST, 0))
}

func (n *StructDef) FieldList() (*RecordFieldList, bool) {
	return CastRecordFieldList(n.Syntax().NthChildOfKind(syntax.RECORD_FIELD_LIST, 0))
}

type RecordFieldList syntax.Node

func CastRecordFieldList(n *syntax.Node) (*RecordFieldList, bool) {
	if n == nil || n.Kind() != syntax.RECORD_FIELD_LIST {
		return nil, false
	}
	return (*RecordFieldList)(n), true
}

func (n *RecordFieldList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordFieldList) Fields() iter.Seq[*RecordField] {
	return children(n.Syntax(), CastRecordField)
}

type RecordField syntax.Node

func CastRecordField(n *syntax.Node) (*RecordField, bool) {
	if n == nil || n.Kind() != syntax.RECORD_FIELD {
		return nil, false
	}
	return (*RecordField)(n), true
}

func (n *RecordField) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *RecordField) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *RecordField) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *RecordField) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *RecordField) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

// EnumDef is an enum definition.
type EnumDef syntax.Node

func CastEnumDef(n *syntax.Node) (*EnumDef, bool) {
	if n == nil || n.Kind() != syntax.ENUM_DEF {
		return nil, false
	}
	return (*EnumDef)(n), true
}

func (n *EnumDef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *EnumDef) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *EnumDef) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *EnumDef) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *EnumDef) GenericParamList() (*GenericParamList, bool) {
	return CastGenericParamList(n.Syntax().NthChildOfKind(syntax.GENERIC_PARAM_LIST, 0))
}

func (n *EnumDef) VariantList() (*VariantList, bool) {
	return CastVariantList(n.Syntax().NthChildOfKind(syntax.VARIANT_LIST, 0))
}

type VariantList syntax.Node

func CastVariantList(n *syntax.Node) (*VariantList, bool) {
	if n == nil || n.Kind() != syntax.VARIANT_LIST {
		return nil, false
	}
	return (*VariantList)(n), true
}

func (n *VariantList) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *VariantList) Variants() iter.Seq[*Variant] {
	return children(n.Syntax(), CastVariant)
}

type Variant syntax.Node

func CastVariant(n *syntax.Node) (*Variant, bool) {
	if n == nil || n.Kind() != syntax.VARIANT {
		return nil, false
	}
	return (*Variant)(n), true
}

func (n *Variant) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *Variant) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *Variant) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *Variant) FieldList() (*RecordFieldList, bool) {
	return CastRecordFieldList(n.Syntax().NthChildOfKind(syntax.RECORD_FIELD_LIST, 0))
}

// TraitDef is a trait definition.
type TraitDef syntax.Node

func CastTraitDef(n *syntax.Node) (*TraitDef, bool) {
	if n == nil || n.Kind() != syntax.TRAIT_DEF {
		return nil, false
	}
	return (*TraitDef)(n), true
}

func (n *TraitDef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TraitDef) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *TraitDef) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *TraitDef) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *TraitDef) GenericParamList() (*GenericParamList, bool) {
	return CastGenericParamList(n.Syntax().NthChildOfKind(syntax.GENERIC_PARAM_LIST, 0))
}

func (n *TraitDef) AssocItems() iter.Seq[*AssocItem] {
	return children(n.Syntax(), CastAssocItem)
}

// AssocItem is a declaration allowed inside a trait or impl body.
type AssocItem syntax.Node

var assocItemKinds = []syntax.Kind{
	syntax.FN_DEF, syntax.CONST_DEF, syntax.TYPE_ALIAS,
}

func CastAssocItem(n *syntax.Node) (*AssocItem, bool) {
	if n == nil || !kindIn(n.Kind(), assocItemKinds) {
		return nil, false
	}
	return (*AssocItem)(n), true
}

func (n *AssocItem) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *AssocItem) Downcast() Node { return Wrap(n.Syntax()) }

// ImplBlock is an impl block. The Trait and SelfTy accessors live in
// extensions.go because the two slots can hold the same node kind.
type ImplBlock syntax.Node

func CastImplBlock(n *syntax.Node) (*ImplBlock, bool) {
	if n == nil || n.Kind() != syntax.IMPL_BLOCK {
		return nil, false
	}
	return (*ImplBlock)(n), true
}

func (n *ImplBlock) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ImplBlock) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *ImplBlock) GenericParamList() (*GenericParamList, bool) {
	return CastGenericParamList(n.Syntax().NthChildOfKind(syntax.GENERIC_PARAM_LIST, 0))
}

func (n *ImplBlock) AssocItems() iter.Seq[*AssocItem] {
	return children(n.Syntax(), CastAssocItem)
}

type UseDecl syntax.Node

func CastUseDecl(n *syntax.Node) (*UseDecl, bool) {
	if n == nil || n.Kind() != syntax.USE_DECL {
		return nil, false
	}
	return (*UseDecl)(n), true
}

func (n *UseDecl) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *UseDecl) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *UseDecl) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *UseDecl) Path() (*Path, bool) {
	return CastPath(n.Syntax().NthChildOfKind(syntax.PATH, 0))
}

type ConstDef syntax.Node

func CastConstDef(n *syntax.Node) (*ConstDef, bool) {
	if n == nil || n.Kind() != syntax.CONST_DEF {
		return nil, false
	}
	return (*ConstDef)(n), true
}

func (n *ConstDef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ConstDef) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *ConstDef) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *ConstDef) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *ConstDef) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

func (n *ConstDef) Value() (*Expr, bool) {
	return CastExpr(nthOfSet(n.Syntax(), exprKinds, 0))
}

type TypeAlias syntax.Node

func CastTypeAlias(n *syntax.Node) (*TypeAlias, bool) {
	if n == nil || n.Kind() != syntax.TYPE_ALIAS {
		return nil, false
	}
	return (*TypeAlias)(n), true
}

func (n *TypeAlias) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *TypeAlias) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *TypeAlias) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *TypeAlias) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *TypeAlias) GenericParamList() (*GenericParamList, bool) {
	return CastGenericParamList(n.Syntax().NthChildOfKind(syntax.GENERIC_PARAM_LIST, 0))
}

func (n *TypeAlias) Ty() (*Type, bool) {
	return CastType(nthOfSet(n.Syntax(), typeKinds, 0))
}

type ModDef syntax.Node

func CastModDef(n *syntax.Node) (*ModDef, bool) {
	if n == nil || n.Kind() != syntax.MOD_DEF {
		return nil, false
	}
	return (*ModDef)(n), true
}

func (n *ModDef) Syntax() *syntax.Node { return (*syntax.Node)(n) }

func (n *ModDef) Attrs() iter.Seq[*Attr] { return children(n.Syntax(), CastAttr) }

func (n *ModDef) Vis() (*Visibility, bool) {
	return CastVisibility(n.Syntax().NthChildOfKind(syntax.VISIBILITY, 0))
}

func (n *ModDef) Name() (*Name, bool) {
	return CastName(n.Syntax().NthChildOfKind(syntax.NAME, 0))
}

func (n *ModDef) Items() iter.Seq[*Item] { return children(n.Syntax(), CastItem) }
