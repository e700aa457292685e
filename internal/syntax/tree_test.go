package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orn/token"
)

func TestBuildNodeRoundTrip(t *testing.T) {
	fn := NewToken(token.FN_KW, "fn")
	name := NewNode(NAME, []Element{NewToken(token.IDENT, "transfer")})
	params := NewNode(PARAM_LIST, []Element{
		NewToken(token.L_PAREN, "("),
		NewToken(token.R_PAREN, ")"),
	})

	node := NewNode(FN_DEF, []Element{fn, name, params})

	assert.Equal(t, FN_DEF, node.Kind())

	var got []Element
	for c := range node.Children() {
		got = append(got, c)
	}
	require.Len(t, got, 3)
	assert.Same(t, fn, got[0].(*Token))
	assert.Same(t, name, got[1].(*Node))
	assert.Same(t, params, got[2].(*Node))
}

func TestBuildNodeEmpty(t *testing.T) {
	node := NewNode(BLOCK_EXPR, nil)

	assert.Equal(t, BLOCK_EXPR, node.Kind())
	assert.Equal(t, 0, node.NumChildren())
	assert.Nil(t, node.FirstToken())
	assert.Nil(t, node.LastToken())
	assert.Equal(t, "", node.Text())
}

func TestBuildNodeCopiesChildList(t *testing.T) {
	children := []Element{NewToken(token.IDENT, "a")}
	node := NewNode(PATH_SEGMENT, children)

	children[0] = NewToken(token.IDENT, "b")

	assert.Equal(t, "a", node.FirstToken().Text(), "the node must own its child list")
}

func TestChildrenIsRestartable(t *testing.T) {
	node := NewNode(ARG_LIST, []Element{
		NewToken(token.L_PAREN, "("),
		NewToken(token.IDENT, "x"),
		NewToken(token.R_PAREN, ")"),
	})

	first := 0
	for range node.Children() {
		first++
	}
	second := 0
	for range node.Children() {
		second++
	}

	assert.Equal(t, 3, first)
	assert.Equal(t, first, second, "each iteration must be independent")
}

func TestChildrenEarlyStop(t *testing.T) {
	node := NewNode(ARG_LIST, []Element{
		NewToken(token.IDENT, "x"),
		NewToken(token.IDENT, "y"),
	})

	for range node.Children() {
		break
	}

	// A second iteration after an abandoned one still sees everything.
	count := 0
	for range node.Children() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestNthChildOfKind(t *testing.T) {
	lhs := NewNode(PATH_EXPR, []Element{NewToken(token.IDENT, "a")})
	rhs := NewNode(PATH_EXPR, []Element{NewToken(token.IDENT, "b")})
	node := NewNode(BIN_EXPR, []Element{lhs, NewToken(token.PLUS, "+"), rhs})

	assert.Same(t, lhs, node.NthChildOfKind(PATH_EXPR, 0))
	assert.Same(t, rhs, node.NthChildOfKind(PATH_EXPR, 1))
	assert.Nil(t, node.NthChildOfKind(PATH_EXPR, 2))
	assert.Nil(t, node.NthChildOfKind(BLOCK_EXPR, 0))
}

func TestNthTokenOfKind(t *testing.T) {
	node := NewNode(TUPLE_EXPR, []Element{
		NewToken(token.L_PAREN, "("),
		NewToken(token.COMMA, ","),
		NewToken(token.COMMA, ","),
		NewToken(token.R_PAREN, ")"),
	})

	assert.Equal(t, ",", node.NthTokenOfKind(token.COMMA, 1).Text())
	assert.Nil(t, node.NthTokenOfKind(token.COMMA, 2))
}

func TestFirstAndLastTokenDescend(t *testing.T) {
	inner := NewNode(NAME, []Element{NewToken(token.IDENT, "x")})
	empty := NewNode(ATTR, nil)
	node := NewNode(PARAM, []Element{empty, inner, NewToken(token.COLON, ":")})

	require.NotNil(t, node.FirstToken())
	assert.Equal(t, "x", node.FirstToken().Text(), "empty leading child must be skipped")
	assert.Equal(t, ":", node.LastToken().Text())
}

func TestTextConcatenation(t *testing.T) {
	name := NewNode(NAME, []Element{NewToken(token.IDENT, "balance")})
	node := NewNode(RECORD_FIELD, []Element{
		name,
		NewToken(token.COLON, ":"),
		NewNode(PATH_TYPE, []Element{NewToken(token.IDENT, "u64")}),
	})

	assert.Equal(t, "balance:u64", node.Text())
}

func TestMalformedTreesAreRepresentable(t *testing.T) {
	// A "function" missing everything but stray recovery tokens still
	// constructs; shape enforcement is not this layer's job.
	node := NewNode(FN_DEF, []Element{
		NewToken(token.FN_KW, "fn"),
		NewToken(token.ILLEGAL, "@@@"),
		NewNode(ERROR, []Element{NewToken(token.IDENT, "junk")}),
	})

	assert.Equal(t, FN_DEF, node.Kind())
	assert.Equal(t, 3, node.NumChildren())
	assert.Equal(t, "fn@@@junk", node.Text())
}

func TestNilChildrenAreDropped(t *testing.T) {
	node := NewNode(PARAM_LIST, []Element{nil, NewToken(token.L_PAREN, "("), nil})

	assert.Equal(t, 1, node.NumChildren())
}
