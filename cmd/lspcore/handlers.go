package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/lspcore/internal/dispatch"
	"github.com/dshills/lspcore/internal/protocol"
	"github.com/dshills/lspcore/internal/server"
)

// registerDemoHandlers wires a minimal plain-text handler set: document
// sync into an in-memory store, word hover, and word completion. It
// exists so the binary speaks useful LSP out of the box; real language
// support replaces it.
func registerDemoHandlers(srv *server.Server) {
	store := &documentStore{docs: make(map[protocol.DocumentURI]string)}
	reg := srv.Registry()

	reg.RegisterNotification(protocol.MethodDidOpen, dispatch.Notification( //nolint:errcheck
		func(ctx context.Context, params *protocol.DidOpenTextDocumentParams) {
			store.set(params.TextDocument.URI, params.TextDocument.Text)
		}))

	reg.RegisterNotification(protocol.MethodDidChange, dispatch.Notification( //nolint:errcheck
		func(ctx context.Context, params *protocol.DidChangeTextDocumentParams) {
			for _, change := range params.ContentChanges {
				if change.Whole != nil {
					store.set(params.TextDocument.URI, change.Whole.Text)
				}
				// The demo applies whole-document changes only.
			}
		}))

	reg.RegisterNotification(protocol.MethodDidClose, dispatch.Notification( //nolint:errcheck
		func(ctx context.Context, params *protocol.DidCloseTextDocumentParams) {
			store.remove(params.TextDocument.URI)
		}))

	reg.RegisterRequest(protocol.MethodHover, dispatch.Request( //nolint:errcheck
		func(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
			word := store.wordAt(params.TextDocument.URI, params.Position)
			if word == "" {
				return nil, nil
			}
			return &protocol.Hover{
				Contents: protocol.HoverContents{
					Markup: &protocol.MarkupContent{
						Kind:  protocol.MarkupMarkdown,
						Value: fmt.Sprintf("`%s` — %d characters", word, len(word)),
					},
				},
			}, nil
		}))

	reg.RegisterRequest(protocol.MethodCompletion, dispatch.Request( //nolint:errcheck
		func(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
			kind := protocol.CompletionItemKindText
			var items []protocol.CompletionItem
			for _, word := range store.words(params.TextDocument.URI) {
				items = append(items, protocol.CompletionItem{Label: word, Kind: &kind})
			}
			return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
		}))
}

// documentStore keeps the text of open documents.
type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]string
}

func (s *documentStore) set(uri protocol.DocumentURI, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

func (s *documentStore) remove(uri protocol.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *documentStore) text(uri protocol.DocumentURI) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[uri]
	return text, ok
}

// wordAt returns the identifier-like token under the position.
func (s *documentStore) wordAt(uri protocol.DocumentURI, pos protocol.Position) string {
	text, ok := s.text(uri)
	if !ok {
		return ""
	}
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	col := int(pos.Character)
	if col > len(line) {
		col = len(line)
	}
	start := col
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	end := col
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	return line[start:end]
}

// words returns the unique tokens of a document in first-seen order.
func (s *documentStore) words(uri protocol.DocumentURI) []string {
	text, ok := s.text(uri)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	}) {
		if !seen[word] {
			seen[word] = true
			out = append(out, word)
		}
	}
	return out
}

func isWordChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isWordRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
