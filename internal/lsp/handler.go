package lsp

import (
	goerrors "errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"orn/grammar"
	"orn/internal/compile"
	"orn/token"
)

// The semantic token legend advertised to clients.
var SemanticTokenTypes = []string{
	"type",
	"typeParameter",
	"property",
	"string",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
}

// GrammarHandler implements the LSP handlers for Orn grammar files.
type GrammarHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	grammars map[string]*grammar.Grammar
}

// NewGrammarHandler creates and returns a new GrammarHandler instance.
func NewGrammarHandler() *GrammarHandler {
	return &GrammarHandler{
		content:  make(map[string]string),
		grammars: make(map[string]*grammar.Grammar),
	}
}

// Initialize responds to the client's initialize request and advertises the
// server's capabilities.
func (h *GrammarHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *GrammarHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Orn grammar LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *GrammarHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Orn grammar LSP shutdown")
	return nil
}

// SetTrace handles trace level changes; tracing is not used.
func (h *GrammarHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *GrammarHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *GrammarHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.grammars, params.TextDocument.URI)
	return nil
}

// TextDocumentDidChange handles file change notifications. The server runs
// with full-document sync, so the last change carries the whole text.
func (h *GrammarHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	text, ok := fullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-document change for %s", params.TextDocument.URI)
	}

	diagnostics := h.update(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion completes rule references with the defined rule
// names and the primitive terminal categories.
func (h *GrammarHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	h.mu.RLock()
	g := h.grammars[params.TextDocument.URI]
	h.mu.RUnlock()

	var items []protocol.CompletionItem
	if g != nil {
		for _, def := range g.Defs {
			items = append(items, protocol.CompletionItem{
				Label: def.Name,
				Kind:  ptrCompletionKind(protocol.CompletionItemKindClass),
			})
		}
	}
	for _, name := range token.PrimitiveNames() {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document.
func (h *GrammarHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	g, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(g)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode into the LSP wire format with delta-line, delta-start
	// compression.
	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		} else {
			deltaStart = t.StartChar
		}

		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), uint32(t.TokenModifiers))

		prevLine = t.Line
		prevStart = t.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

// update reparses a document and returns the diagnostics to publish. A
// clean document yields an empty, non-nil slice so stale diagnostics get
// cleared.
func (h *GrammarHandler) update(uri string, text string) []protocol.Diagnostic {
	g, err := grammar.Parse(uri, text)
	if err != nil {
		var parseErr *grammar.ParseError
		if goerrors.As(err, &parseErr) {
			return ConvertParseError(parseErr)
		}
		return []protocol.Diagnostic{}
	}

	h.mu.Lock()
	h.content[uri] = text
	h.grammars[uri] = g
	h.mu.Unlock()

	_, errs := compile.Compile(g)
	diagnostics := ConvertGrammarErrors(errs)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	return diagnostics
}

func (h *GrammarHandler) getOrLoad(ctx *glsp.Context, uri string) (*grammar.Grammar, error) {
	h.mu.RLock()
	g, ok := h.grammars[uri]
	h.mu.RUnlock()
	if ok {
		return g, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	diagnostics := h.update(uri, string(content))
	sendDiagnosticNotification(ctx, uri, diagnostics)

	h.mu.RLock()
	g = h.grammars[uri]
	h.mu.RUnlock()
	return g, nil
}

// fullText extracts the whole-document text from a change set.
func fullText(changes []any) (string, bool) {
	text, ok := "", false
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, true
		}
	}
	return text, ok
}

// uriToPath converts a file URI to a platform-local path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove the leading slash (e.g. /C:/...).
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
