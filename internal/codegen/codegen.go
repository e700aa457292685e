// Package codegen renders a compiled grammar model into Go source: the node
// kind enumeration and the typed facade wrappers. The output of emit is the
// starting point for the checked-in ast package; slots a positional by-kind
// search cannot serve are skipped here and written by hand instead.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/tliron/commonlog"

	"orn/internal/compile"
	"orn/token"
)

var log = commonlog.GetLogger("codegen")

// File is one generated source file.
type File struct {
	Name   string
	Source []byte
}

// Options steer generation.
type Options struct {
	// KindPackage and FacadePackage name the target packages.
	KindPackage   string
	FacadePackage string

	// ManualFields lists product fields whose accessors are maintained by
	// hand because sibling slots share a node kind. Keyed by definition
	// name.
	ManualFields map[string][]string
}

// DefaultOptions returns the options the syntax generator runs with.
func DefaultOptions() Options {
	return Options{
		KindPackage:   "syntax",
		FacadePackage: "ast",
		ManualFields: map[string][]string{
			"IfExpr":    {"else_branch"},
			"ImplBlock": {"trait", "self_ty"},
		},
	}
}

// Generate renders the kind enumeration and the facade for a model.
func Generate(model *compile.Model, opts Options) ([]File, error) {
	kinds, err := render("kinds", kindTemplate, kindData(model, opts))
	if err != nil {
		return nil, err
	}
	facade, err := render("facade", facadeTemplate, facadeData(model, opts))
	if err != nil {
		return nil, err
	}
	log.Debugf("generated %d definitions", len(model.Defs))
	return []File{
		{Name: "kind_gen.go", Source: kinds},
		{Name: "nodes_gen.go", Source: facade},
	}, nil
}

func render(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s output: %w", name, err)
	}
	return src, nil
}

type kindFile struct {
	Package string
	Kinds   []string
}

func kindData(model *compile.Model, opts Options) kindFile {
	data := kindFile{Package: opts.KindPackage}
	for _, def := range model.Defs {
		if def.Kind == compile.ProductDef {
			data.Kinds = append(data.Kinds, strcase.ToScreamingSnake(def.Name))
		}
	}
	return data
}

type facadeFile struct {
	Package       string
	KindPackage   string
	HasMany       bool
	HasManyTokens bool
	HasTokens     bool
	Sums          []sumDecl
	Nodes         []nodeDecl
}

type sumDecl struct {
	Name   string
	SetVar string
	Kinds  []string
}

type nodeDecl struct {
	Name      string
	Kind      string
	Accessors []accessorDecl
}

// accessorDecl is one rendered accessor. Form selects the template branch:
// token, node, sum, many or manyToken.
type accessorDecl struct {
	Form      string
	Method    string
	TokenKind string
	NodeKind  string
	Cast      string
	SetVar    string
	ElemType  string
	Index     int
}

func facadeData(model *compile.Model, opts Options) facadeFile {
	data := facadeFile{Package: opts.FacadePackage, KindPackage: opts.KindPackage}

	for _, def := range model.Defs {
		if def.Kind != compile.SumDef {
			continue
		}
		decl := sumDecl{Name: def.Name, SetVar: setVar(def.Name)}
		for _, m := range def.Members {
			decl.Kinds = append(decl.Kinds, strcase.ToScreamingSnake(m))
		}
		data.Sums = append(data.Sums, decl)
	}

	for _, def := range model.Defs {
		if def.Kind != compile.ProductDef {
			continue
		}
		decl := nodeDecl{Name: def.Name, Kind: strcase.ToScreamingSnake(def.Name)}
		for _, f := range def.Fields {
			if manual(opts, def.Name, f.Name) {
				continue
			}
			a := accessor(f)
			switch a.Form {
			case "many":
				data.HasMany = true
			case "manyToken":
				data.HasMany = true
				data.HasManyTokens = true
				data.HasTokens = true
			case "token":
				data.HasTokens = true
			}
			decl.Accessors = append(decl.Accessors, a)
		}
		data.Nodes = append(data.Nodes, decl)
	}
	return data
}

func manual(opts Options, def, field string) bool {
	for _, name := range opts.ManualFields[def] {
		if name == field {
			return true
		}
	}
	return false
}

func accessor(f compile.Field) accessorDecl {
	switch target := f.Target.(type) {
	case compile.TokenTarget:
		decl := accessorDecl{
			Method:    strcase.ToCamel(f.Name) + "Token",
			TokenKind: tokenConst(target.Kind),
			Index:     f.TargetIndex,
		}
		if f.Card == compile.Many {
			decl.Form = "manyToken"
			decl.Method += "s"
		} else {
			decl.Form = "token"
		}
		return decl
	case compile.SumTarget:
		decl := accessorDecl{
			Method:   methodName(f),
			Cast:     "Cast" + target.Name,
			SetVar:   setVar(target.Name),
			ElemType: "*" + target.Name,
			Index:    f.TargetIndex,
		}
		if f.Card == compile.Many {
			decl.Form = "many"
		} else {
			decl.Form = "sum"
		}
		return decl
	case compile.NodeTarget:
		decl := accessorDecl{
			Method:   methodName(f),
			Cast:     "Cast" + target.Name,
			NodeKind: strcase.ToScreamingSnake(target.Name),
			ElemType: "*" + target.Name,
			Index:    f.TargetIndex,
		}
		if f.Card == compile.Many {
			decl.Form = "many"
		} else {
			decl.Form = "node"
		}
		return decl
	default:
		panic(fmt.Sprintf("unhandled target %T", f.Target))
	}
}

func methodName(f compile.Field) string {
	name := strcase.ToCamel(f.Name)
	if f.Card == compile.Many && !strings.HasSuffix(name, "s") {
		name += "s"
	}
	return name
}

func setVar(sum string) string {
	return strcase.ToLowerCamel(sum) + "Kinds"
}

// tokenConst maps a token kind back to the identifier of its constant.
func tokenConst(k token.Kind) string {
	if k.IsKeyword() {
		return "token." + strcase.ToScreamingSnake(k.String()) + "_KW"
	}
	if k.IsPunct() {
		return "token." + punctConsts[k]
	}
	return "token." + strcase.ToScreamingSnake(k.String())
}

var punctConsts = map[token.Kind]string{
	token.L_PAREN: "L_PAREN", token.R_PAREN: "R_PAREN",
	token.L_BRACE: "L_BRACE", token.R_BRACE: "R_BRACE",
	token.L_BRACKET: "L_BRACKET", token.R_BRACKET: "R_BRACKET",
	token.COMMA: "COMMA", token.SEMICOLON: "SEMICOLON",
	token.COLON: "COLON", token.COLON2: "COLON2",
	token.THIN_ARROW: "THIN_ARROW", token.FAT_ARROW: "FAT_ARROW",
	token.DOT: "DOT", token.DOT2: "DOT2", token.DOT2EQ: "DOT2EQ",
	token.POUND: "POUND", token.BANG: "BANG", token.QUESTION: "QUESTION",
	token.AT: "AT", token.AMP: "AMP", token.AMP2: "AMP2",
	token.PIPE: "PIPE", token.PIPE2: "PIPE2",
	token.PLUS: "PLUS", token.MINUS: "MINUS", token.STAR: "STAR",
	token.SLASH: "SLASH", token.PERCENT: "PERCENT", token.CARET: "CARET",
	token.EQ: "EQ", token.EQ2: "EQ2", token.NEQ: "NEQ",
	token.LT: "LT", token.GT: "GT", token.LTEQ: "LTEQ", token.GTEQ: "GTEQ",
	token.SHL: "SHL", token.SHR: "SHR",
	token.PLUS_EQ: "PLUS_EQ", token.MINUS_EQ: "MINUS_EQ",
	token.STAR_EQ: "STAR_EQ", token.SLASH_EQ: "SLASH_EQ",
	token.UNDERSCORE: "UNDERSCORE",
}
