package lsp

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/nickdrozd/right-to-leftsp/pkg/diag"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval"
	"github.com/nickdrozd/right-to-leftsp/pkg/eval/vals"
	"github.com/nickdrozd/right-to-leftsp/pkg/parse"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	evaler  *eval.Evaler
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{eval.NewEvaler(), make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":              s.initialize,
		"textDocument/didOpen":    s.didOpen,
		"textDocument/didChange":  s.didChange,
		"textDocument/didClose":   s.didClose,
		"textDocument/hover":      s.hover,
		"textDocument/completion": s.completion,

		// Required by spec.
		"initialized": noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		logger.Println("request", req.Method)
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider:      true,
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, s.diagnostics(uri, content))
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, s.diagnostics(uri, content))
	return nil, nil
}

func (s *server) didClose(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	delete(s.content, params.TextDocument.URI)
	return nil, nil
}

// Shows the left-to-right form of the innermost reversed list under the
// cursor. Returns null elsewhere.
func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri := params.TextDocument.URI
	content := s.content[uri]
	nodes, err := parse.Parse(parse.Source{Name: string(uri), Code: content})
	if err != nil {
		return nil, nil
	}
	l := reversedListAt(nodes, lspPositionToIdx(content, params.Position))
	if l == nil {
		return nil, nil
	}
	r := lspRangeFromRange(content, l)
	return &lsp.Hover{
		Contents: []lsp.MarkedString{{Language: "rtlsp", Value: parse.String(l)}},
		Range:    &r,
	}, nil
}

// Returns the innermost list read with the reversal marker that contains idx.
func reversedListAt(nodes []parse.Node, idx int) *parse.List {
	var found *parse.List
	for _, n := range nodes {
		l, ok := n.(*parse.List)
		if !ok || !l.Contains(idx) {
			continue
		}
		if l.Reversed {
			found = l
		}
		if inner := reversedListAt(l.Elems, idx); inner != nil {
			found = inner
		}
	}
	return found
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri := params.TextDocument.URI
	content := s.content[uri]
	dot := lspPositionToIdx(content, params.Position)
	start := strings.LastIndexFunc(content[:dot], parse.IsDelimiter) + 1
	prefix := content[start:dot]
	lspRange := lspRangeFromRange(content, diag.Ranging{From: start, To: dot})

	var items []lsp.CompletionItem
	for _, c := range s.candidates(uri, content) {
		if !strings.HasPrefix(c.name, prefix) {
			continue
		}
		items = append(items, lsp.CompletionItem{
			Label: c.name,
			Kind:  c.kind,
			TextEdit: &lsp.TextEdit{
				Range:   lspRange,
				NewText: c.name,
			},
		})
	}
	if items == nil {
		items = []lsp.CompletionItem{}
	}
	return items, nil
}

type candidate struct {
	name string
	kind lsp.CompletionItemKind
}

// Returns the special forms, the primitives and the names defined at the top
// level of the document, sorted by name. Names defined in the document
// shadow primitives.
func (s *server) candidates(uri lsp.DocumentURI, content string) []candidate {
	kinds := make(map[string]lsp.CompletionItemKind)
	for _, name := range s.evaler.Base.Names() {
		kinds[name] = valueKind(s.evaler.Base.Lookup(name))
	}
	nodes, err := parse.Parse(parse.Source{Name: string(uri), Code: content})
	if err == nil {
		for _, n := range nodes {
			if name, kind, ok := definition(n); ok {
				kinds[name] = kind
			}
		}
	}
	for name := range eval.IsBuiltinSpecial {
		kinds[name] = lsp.CIKKeyword
	}

	candidates := make([]candidate, 0, len(kinds))
	for name, kind := range kinds {
		candidates = append(candidates, candidate{name, kind})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].name < candidates[j].name
	})
	return candidates
}

func valueKind(v any, err error) lsp.CompletionItemKind {
	if err == nil && vals.Kind(v) == "fun" {
		return lsp.CIKFunction
	}
	return lsp.CIKVariable
}

// Recognizes (def name value), where value may be a fun form.
func definition(n parse.Node) (string, lsp.CompletionItemKind, bool) {
	head, _ := parse.HeadSymbol(n)
	l, ok := n.(*parse.List)
	if !ok || head != "def" || len(l.Elems) != 3 {
		return "", 0, false
	}
	name, ok := parse.Symbol(l.Elems[1])
	if !ok {
		return "", 0, false
	}
	if valueHead, _ := parse.HeadSymbol(l.Elems[2]); valueHead == "fun" {
		return string(name), lsp.CIKFunction, true
	}
	return string(name), lsp.CIKVariable, true
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, diags []lsp.Diagnostic) {
	conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diags})
}

func (s *server) diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	parseErr, compileErr := s.evaler.Check(parse.Source{Name: string(uri), Code: content})
	switch {
	case parseErr != nil:
		return []lsp.Diagnostic{diagnostic(content, "parse", parseErr)}
	case compileErr != nil:
		return []lsp.Diagnostic{diagnostic(content, "compile", compileErr)}
	}
	return []lsp.Diagnostic{}
}

func diagnostic(content, source string, err *diag.Error) lsp.Diagnostic {
	return lsp.Diagnostic{
		Range:    lspRangeFromRange(content, err),
		Severity: lsp.Error,
		Source:   source,
		Message:  err.Message,
	}
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r':
			p.Line++
			p.Character = 0
		case r == '\n':
			if lastCR {
				// Ignore \n if it's part of a \r\n sequence
			} else {
				p.Line++
				p.Character = 0
			}
		case r <= 0xFFFF:
			// Encoded in UTF-16 with one unit
			p.Character++
		default:
			// Encoded in UTF-16 with two units
			p.Character += 2
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
