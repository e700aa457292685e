// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"orn/internal/lsp"
)

const lsName = "orn-grammar"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	grammarHandler := lsp.NewGrammarHandler()

	handler = protocol.Handler{
		Initialize:                     grammarHandler.Initialize,
		Initialized:                    grammarHandler.Initialized,
		Shutdown:                       grammarHandler.Shutdown,
		SetTrace:                       grammarHandler.SetTrace,
		TextDocumentDidOpen:            grammarHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           grammarHandler.TextDocumentDidClose,
		TextDocumentDidChange:          grammarHandler.TextDocumentDidChange,
		TextDocumentCompletion:         grammarHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: grammarHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting %s LSP server %s...", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting LSP server:", err)
		os.Exit(1)
	}
}
