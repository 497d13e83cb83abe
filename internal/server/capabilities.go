package server

import "github.com/dshills/lspcore/internal/protocol"

// buildCapabilities derives the initialize result capabilities from the
// methods the embedder registered: a handler registered for a method
// turns its provider flag on. Options-bearing providers advertise the
// boolean form; embedders needing richer options can overwrite the
// initialize handler.
func (s *Server) buildCapabilities() protocol.ServerCapabilities {
	requests, notifications := s.dispatcher.Registry().Methods()
	reqSet := make(map[string]bool, len(requests))
	for _, m := range requests {
		reqSet[m] = true
	}
	noteSet := make(map[string]bool, len(notifications))
	for _, m := range notifications {
		noteSet[m] = true
	}

	caps := protocol.ServerCapabilities{}
	enc := protocol.PositionEncodingUTF16
	caps.PositionEncoding = &enc

	if noteSet[protocol.MethodDidOpen] || noteSet[protocol.MethodDidChange] {
		openClose := noteSet[protocol.MethodDidOpen]
		change := protocol.SyncIncremental
		sync := &protocol.TextDocumentSyncOptions{
			OpenClose: &openClose,
			Change:    &change,
		}
		if noteSet[protocol.MethodWillSave] {
			tr := true
			sync.WillSave = &tr
		}
		if reqSet[protocol.MethodWillSaveWaitUntil] {
			tr := true
			sync.WillSaveWaitUntil = &tr
		}
		if noteSet[protocol.MethodDidSave] {
			save := protocol.True[protocol.SaveOptions]()
			sync.Save = &save
		}
		caps.TextDocumentSync = sync
	}

	if reqSet[protocol.MethodCompletion] {
		resolve := reqSet[protocol.MethodCompletionItemResolve]
		caps.CompletionProvider = &protocol.CompletionOptions{ResolveProvider: &resolve}
	}
	if reqSet[protocol.MethodSignatureHelp] {
		caps.SignatureHelpProvider = &protocol.SignatureHelpOptions{}
	}
	if reqSet[protocol.MethodCodeLens] {
		resolve := reqSet[protocol.MethodCodeLensResolve]
		caps.CodeLensProvider = &protocol.CodeLensOptions{ResolveProvider: &resolve}
	}
	if reqSet[protocol.MethodDocumentLink] {
		resolve := reqSet[protocol.MethodDocumentLinkResolve]
		caps.DocumentLinkProvider = &protocol.DocumentLinkOptions{ResolveProvider: &resolve}
	}
	if reqSet[protocol.MethodWorkspaceExecuteCommand] {
		caps.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{Commands: []string{}}
	}
	if reqSet[protocol.MethodDocumentDiagnostic] {
		caps.DiagnosticProvider = &protocol.DiagnosticOptions{
			InterFileDependencies: false,
			WorkspaceDiagnostics:  reqSet[protocol.MethodWorkspaceDiagnostic],
		}
	}

	boolProviders := []struct {
		method string
		set    func()
	}{
		{protocol.MethodHover, func() { caps.HoverProvider = boolCap[protocol.HoverOptions]() }},
		{protocol.MethodDeclaration, func() { caps.DeclarationProvider = boolCap[protocol.DeclarationOptions]() }},
		{protocol.MethodDefinition, func() { caps.DefinitionProvider = boolCap[protocol.DefinitionOptions]() }},
		{protocol.MethodTypeDefinition, func() { caps.TypeDefinitionProvider = boolCap[protocol.TypeDefinitionOptions]() }},
		{protocol.MethodImplementation, func() { caps.ImplementationProvider = boolCap[protocol.ImplementationOptions]() }},
		{protocol.MethodReferences, func() { caps.ReferencesProvider = boolCap[protocol.ReferenceOptions]() }},
		{protocol.MethodDocumentHighlight, func() { caps.DocumentHighlightProvider = boolCap[protocol.DocumentHighlightOptions]() }},
		{protocol.MethodDocumentSymbol, func() { caps.DocumentSymbolProvider = boolCap[protocol.DocumentSymbolOptions]() }},
		{protocol.MethodCodeAction, func() { caps.CodeActionProvider = boolCap[protocol.CodeActionOptions]() }},
		{protocol.MethodDocumentColor, func() { caps.ColorProvider = boolCap[protocol.DocumentColorOptions]() }},
		{protocol.MethodFormatting, func() { caps.DocumentFormattingProvider = boolCap[protocol.DocumentFormattingOptions]() }},
		{protocol.MethodRangeFormatting, func() { caps.DocumentRangeFormattingProvider = boolCap[protocol.DocumentRangeFormattingOptions]() }},
		{protocol.MethodRename, func() { caps.RenameProvider = boolCap[protocol.RenameOptions]() }},
		{protocol.MethodFoldingRange, func() { caps.FoldingRangeProvider = boolCap[protocol.FoldingRangeOptions]() }},
		{protocol.MethodSelectionRange, func() { caps.SelectionRangeProvider = boolCap[protocol.SelectionRangeOptions]() }},
		{protocol.MethodLinkedEditingRange, func() { caps.LinkedEditingRangeProvider = boolCap[protocol.LinkedEditingRangeOptions]() }},
		{protocol.MethodPrepareCallHierarchy, func() { caps.CallHierarchyProvider = boolCap[protocol.CallHierarchyOptions]() }},
		{protocol.MethodMoniker, func() { caps.MonikerProvider = boolCap[protocol.MonikerOptions]() }},
		{protocol.MethodPrepareTypeHierarchy, func() { caps.TypeHierarchyProvider = boolCap[protocol.TypeHierarchyOptions]() }},
		{protocol.MethodInlineValue, func() { caps.InlineValueProvider = boolCap[protocol.InlineValueOptions]() }},
		{protocol.MethodInlayHint, func() { caps.InlayHintProvider = boolCap[protocol.InlayHintOptions]() }},
		{protocol.MethodInlineCompletion, func() { caps.InlineCompletionProvider = boolCap[protocol.InlineCompletionOptions]() }},
		{protocol.MethodWorkspaceSymbol, func() { caps.WorkspaceSymbolProvider = boolCap[protocol.WorkspaceSymbolOptions]() }},
	}
	for _, p := range boolProviders {
		if reqSet[p.method] {
			p.set()
		}
	}

	if reqSet[protocol.MethodSemanticTokensFull] || reqSet[protocol.MethodSemanticTokensRange] {
		opts := &protocol.SemanticTokensOptions{
			Legend: protocol.SemanticTokensLegend{TokenTypes: []string{}, TokenModifiers: []string{}},
		}
		if reqSet[protocol.MethodSemanticTokensRange] {
			r := protocol.True[protocol.SemanticTokensRangeClientRequest]()
			opts.Range = &r
		}
		if reqSet[protocol.MethodSemanticTokensFull] {
			delta := reqSet[protocol.MethodSemanticTokensFullDelta]
			full := protocol.Of(protocol.SemanticTokensFullClientRequest{Delta: &delta})
			opts.Full = &full
		}
		caps.SemanticTokensProvider = opts
	}

	if noteSet[protocol.MethodDidChangeWorkspaceFolders] {
		supported := true
		caps.Workspace = &protocol.WorkspaceServerCapabilities{
			WorkspaceFolders: &protocol.WorkspaceFoldersServerCapabilities{Supported: &supported},
		}
	}

	return caps
}

func boolCap[T any]() *protocol.BoolOr[T] {
	c := protocol.True[T]()
	return &c
}
