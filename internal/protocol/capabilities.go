package protocol

import "github.com/dshills/lspcore/internal/anyval"

// ClientCapabilities define what the connecting editor supports.
type ClientCapabilities struct {
	Workspace        *WorkspaceClientCapabilities        `json:"workspace,omitempty"`
	TextDocument     *TextDocumentClientCapabilities     `json:"textDocument,omitempty"`
	NotebookDocument *NotebookDocumentClientCapabilities `json:"notebookDocument,omitempty"`
	Window           *WindowClientCapabilities           `json:"window,omitempty"`
	General          *GeneralClientCapabilities          `json:"general,omitempty"`
	Experimental     anyval.Value                        `json:"experimental,omitempty"`
}

// DynamicRegistrationCapability is the shared shape of per-feature client
// capabilities that only advertise dynamic registration.
type DynamicRegistrationCapability struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

// WorkspaceClientCapabilities cover workspace-scoped features.
type WorkspaceClientCapabilities struct {
	ApplyEdit              *bool                                    `json:"applyEdit,omitempty"`
	WorkspaceEdit          *WorkspaceEditClientCapabilities         `json:"workspaceEdit,omitempty"`
	DidChangeConfiguration *DynamicRegistrationCapability           `json:"didChangeConfiguration,omitempty"`
	DidChangeWatchedFiles  *DidChangeWatchedFilesClientCapabilities `json:"didChangeWatchedFiles,omitempty"`
	Symbol                 *WorkspaceSymbolClientCapabilities       `json:"symbol,omitempty"`
	ExecuteCommand         *DynamicRegistrationCapability           `json:"executeCommand,omitempty"`
	WorkspaceFolders       *bool                                    `json:"workspaceFolders,omitempty"`
	Configuration          *bool                                    `json:"configuration,omitempty"`
	SemanticTokens         *RefreshSupportCapability                `json:"semanticTokens,omitempty"`
	CodeLens               *RefreshSupportCapability                `json:"codeLens,omitempty"`
	FileOperations         *FileOperationClientCapabilities         `json:"fileOperations,omitempty"`
	InlineValue            *RefreshSupportCapability                `json:"inlineValue,omitempty"`
	InlayHint              *RefreshSupportCapability                `json:"inlayHint,omitempty"`
	Diagnostics            *RefreshSupportCapability                `json:"diagnostics,omitempty"`
	FoldingRange           *RefreshSupportCapability                `json:"foldingRange,omitempty"`
}

// RefreshSupportCapability advertises support for a workspace refresh
// request.
type RefreshSupportCapability struct {
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

// WorkspaceEditClientCapabilities describe supported workspace-edit shapes.
type WorkspaceEditClientCapabilities struct {
	DocumentChanges         *bool                    `json:"documentChanges,omitempty"`
	ResourceOperations      []ResourceOperationKind  `json:"resourceOperations,omitempty"`
	FailureHandling         *FailureHandlingKind     `json:"failureHandling,omitempty"`
	NormalizesLineEndings   *bool                    `json:"normalizesLineEndings,omitempty"`
	ChangeAnnotationSupport *ChangeAnnotationSupport `json:"changeAnnotationSupport,omitempty"`
}

// ChangeAnnotationSupport describes grouped-change presentation support.
type ChangeAnnotationSupport struct {
	GroupsOnLabel *bool `json:"groupsOnLabel,omitempty"`
}

// DidChangeWatchedFilesClientCapabilities cover watched-file registration.
type DidChangeWatchedFilesClientCapabilities struct {
	DynamicRegistration    *bool `json:"dynamicRegistration,omitempty"`
	RelativePatternSupport *bool `json:"relativePatternSupport,omitempty"`
}

// WorkspaceSymbolClientCapabilities cover workspace/symbol.
type WorkspaceSymbolClientCapabilities struct {
	DynamicRegistration *bool               `json:"dynamicRegistration,omitempty"`
	SymbolKind          *SymbolKindValueSet `json:"symbolKind,omitempty"`
	TagSupport          *SymbolTagValueSet  `json:"tagSupport,omitempty"`
	ResolveSupport      *PropertiesSupport  `json:"resolveSupport,omitempty"`
}

// SymbolKindValueSet lists the symbol kinds a client can render.
type SymbolKindValueSet struct {
	ValueSet []SymbolKind `json:"valueSet,omitempty"`
}

// SymbolTagValueSet lists the symbol tags a client can render.
type SymbolTagValueSet struct {
	ValueSet []SymbolTag `json:"valueSet,omitempty"`
}

// PropertiesSupport lists lazily resolvable properties.
type PropertiesSupport struct {
	Properties []string `json:"properties"`
}

// FileOperationClientCapabilities cover will/did file-operation events.
type FileOperationClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	DidCreate           *bool `json:"didCreate,omitempty"`
	WillCreate          *bool `json:"willCreate,omitempty"`
	DidRename           *bool `json:"didRename,omitempty"`
	WillRename          *bool `json:"willRename,omitempty"`
	DidDelete           *bool `json:"didDelete,omitempty"`
	WillDelete          *bool `json:"willDelete,omitempty"`
}

// TextDocumentClientCapabilities cover per-document features. Feature
// sections the core never reads beyond dynamic registration share
// DynamicRegistrationCapability.
type TextDocumentClientCapabilities struct {
	Synchronization    *TextDocumentSyncClientCapabilities   `json:"synchronization,omitempty"`
	Completion         *CompletionClientCapabilities         `json:"completion,omitempty"`
	Hover              *HoverClientCapabilities              `json:"hover,omitempty"`
	SignatureHelp      *SignatureHelpClientCapabilities      `json:"signatureHelp,omitempty"`
	Declaration        *DynamicRegistrationCapability        `json:"declaration,omitempty"`
	Definition         *DynamicRegistrationCapability        `json:"definition,omitempty"`
	TypeDefinition     *DynamicRegistrationCapability        `json:"typeDefinition,omitempty"`
	Implementation     *DynamicRegistrationCapability        `json:"implementation,omitempty"`
	References         *DynamicRegistrationCapability        `json:"references,omitempty"`
	DocumentHighlight  *DynamicRegistrationCapability        `json:"documentHighlight,omitempty"`
	DocumentSymbol     *DocumentSymbolClientCapabilities     `json:"documentSymbol,omitempty"`
	CodeAction         *CodeActionClientCapabilities         `json:"codeAction,omitempty"`
	CodeLens           *DynamicRegistrationCapability        `json:"codeLens,omitempty"`
	DocumentLink       *DynamicRegistrationCapability        `json:"documentLink,omitempty"`
	ColorProvider      *DynamicRegistrationCapability        `json:"colorProvider,omitempty"`
	Formatting         *DynamicRegistrationCapability        `json:"formatting,omitempty"`
	RangeFormatting    *DynamicRegistrationCapability        `json:"rangeFormatting,omitempty"`
	OnTypeFormatting   *DynamicRegistrationCapability        `json:"onTypeFormatting,omitempty"`
	Rename             *RenameClientCapabilities             `json:"rename,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities `json:"publishDiagnostics,omitempty"`
	FoldingRange       *FoldingRangeClientCapabilities       `json:"foldingRange,omitempty"`
	SelectionRange     *DynamicRegistrationCapability        `json:"selectionRange,omitempty"`
	LinkedEditingRange *DynamicRegistrationCapability        `json:"linkedEditingRange,omitempty"`
	CallHierarchy      *DynamicRegistrationCapability        `json:"callHierarchy,omitempty"`
	SemanticTokens     *SemanticTokensClientCapabilities     `json:"semanticTokens,omitempty"`
	Moniker            *DynamicRegistrationCapability        `json:"moniker,omitempty"`
	TypeHierarchy      *DynamicRegistrationCapability        `json:"typeHierarchy,omitempty"`
	InlineValue        *DynamicRegistrationCapability        `json:"inlineValue,omitempty"`
	InlayHint          *InlayHintClientCapabilities          `json:"inlayHint,omitempty"`
	Diagnostic         *DiagnosticClientCapabilities         `json:"diagnostic,omitempty"`
	InlineCompletion   *DynamicRegistrationCapability        `json:"inlineCompletion,omitempty"`
}

// TextDocumentSyncClientCapabilities cover open/close/change notifications.
type TextDocumentSyncClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	WillSave            *bool `json:"willSave,omitempty"`
	WillSaveWaitUntil   *bool `json:"willSaveWaitUntil,omitempty"`
	DidSave             *bool `json:"didSave,omitempty"`
}

// CompletionClientCapabilities cover textDocument/completion.
type CompletionClientCapabilities struct {
	DynamicRegistration *bool                       `json:"dynamicRegistration,omitempty"`
	CompletionItem      *CompletionItemCapabilities `json:"completionItem,omitempty"`
	CompletionItemKind  *CompletionItemKindValueSet `json:"completionItemKind,omitempty"`
	InsertTextMode      *InsertTextMode             `json:"insertTextMode,omitempty"`
	ContextSupport      *bool                       `json:"contextSupport,omitempty"`
	CompletionList      *CompletionListCapabilities `json:"completionList,omitempty"`
}

// CompletionItemCapabilities describe renderable completion item features.
type CompletionItemCapabilities struct {
	SnippetSupport          *bool                      `json:"snippetSupport,omitempty"`
	CommitCharactersSupport *bool                      `json:"commitCharactersSupport,omitempty"`
	DocumentationFormat     []MarkupKind               `json:"documentationFormat,omitempty"`
	DeprecatedSupport       *bool                      `json:"deprecatedSupport,omitempty"`
	PreselectSupport        *bool                      `json:"preselectSupport,omitempty"`
	TagSupport              *CompletionItemTagValueSet `json:"tagSupport,omitempty"`
	InsertReplaceSupport    *bool                      `json:"insertReplaceSupport,omitempty"`
	ResolveSupport          *PropertiesSupport         `json:"resolveSupport,omitempty"`
	InsertTextModeSupport   *InsertTextModeValueSet    `json:"insertTextModeSupport,omitempty"`
	LabelDetailsSupport     *bool                      `json:"labelDetailsSupport,omitempty"`
}

// CompletionItemKindValueSet lists renderable completion item kinds.
type CompletionItemKindValueSet struct {
	ValueSet []CompletionItemKind `json:"valueSet,omitempty"`
}

// CompletionItemTagValueSet lists renderable completion item tags.
type CompletionItemTagValueSet struct {
	ValueSet []CompletionItemTag `json:"valueSet"`
}

// InsertTextModeValueSet lists supported insert text modes.
type InsertTextModeValueSet struct {
	ValueSet []InsertTextMode `json:"valueSet"`
}

// CompletionListCapabilities describe completion-list defaults support.
type CompletionListCapabilities struct {
	ItemDefaults []string `json:"itemDefaults,omitempty"`
}

// HoverClientCapabilities cover textDocument/hover.
type HoverClientCapabilities struct {
	DynamicRegistration *bool        `json:"dynamicRegistration,omitempty"`
	ContentFormat       []MarkupKind `json:"contentFormat,omitempty"`
}

// SignatureHelpClientCapabilities cover textDocument/signatureHelp.
type SignatureHelpClientCapabilities struct {
	DynamicRegistration  *bool                             `json:"dynamicRegistration,omitempty"`
	SignatureInformation *SignatureInformationCapabilities `json:"signatureInformation,omitempty"`
	ContextSupport       *bool                             `json:"contextSupport,omitempty"`
}

// SignatureInformationCapabilities describe renderable signature features.
type SignatureInformationCapabilities struct {
	DocumentationFormat    []MarkupKind                      `json:"documentationFormat,omitempty"`
	ParameterInformation   *ParameterInformationCapabilities `json:"parameterInformation,omitempty"`
	ActiveParameterSupport *bool                             `json:"activeParameterSupport,omitempty"`
}

// ParameterInformationCapabilities describe parameter label support.
type ParameterInformationCapabilities struct {
	LabelOffsetSupport *bool `json:"labelOffsetSupport,omitempty"`
}

// DocumentSymbolClientCapabilities cover textDocument/documentSymbol.
type DocumentSymbolClientCapabilities struct {
	DynamicRegistration               *bool               `json:"dynamicRegistration,omitempty"`
	SymbolKind                        *SymbolKindValueSet `json:"symbolKind,omitempty"`
	HierarchicalDocumentSymbolSupport *bool               `json:"hierarchicalDocumentSymbolSupport,omitempty"`
	TagSupport                        *SymbolTagValueSet  `json:"tagSupport,omitempty"`
	LabelSupport                      *bool               `json:"labelSupport,omitempty"`
}

// CodeActionClientCapabilities cover textDocument/codeAction.
type CodeActionClientCapabilities struct {
	DynamicRegistration      *bool                     `json:"dynamicRegistration,omitempty"`
	CodeActionLiteralSupport *CodeActionLiteralSupport `json:"codeActionLiteralSupport,omitempty"`
	IsPreferredSupport       *bool                     `json:"isPreferredSupport,omitempty"`
	DisabledSupport          *bool                     `json:"disabledSupport,omitempty"`
	DataSupport              *bool                     `json:"dataSupport,omitempty"`
	ResolveSupport           *PropertiesSupport        `json:"resolveSupport,omitempty"`
	HonorsChangeAnnotations  *bool                     `json:"honorsChangeAnnotations,omitempty"`
}

// CodeActionLiteralSupport lists the code action kinds a client handles.
type CodeActionLiteralSupport struct {
	CodeActionKind CodeActionKindValueSet `json:"codeActionKind"`
}

// CodeActionKindValueSet lists supported code action kinds.
type CodeActionKindValueSet struct {
	ValueSet []CodeActionKind `json:"valueSet"`
}

// RenameClientCapabilities cover textDocument/rename.
type RenameClientCapabilities struct {
	DynamicRegistration           *bool                          `json:"dynamicRegistration,omitempty"`
	PrepareSupport                *bool                          `json:"prepareSupport,omitempty"`
	PrepareSupportDefaultBehavior *PrepareSupportDefaultBehavior `json:"prepareSupportDefaultBehavior,omitempty"`
	HonorsChangeAnnotations       *bool                          `json:"honorsChangeAnnotations,omitempty"`
}

// PublishDiagnosticsClientCapabilities cover publishDiagnostics rendering.
type PublishDiagnosticsClientCapabilities struct {
	RelatedInformation     *bool                  `json:"relatedInformation,omitempty"`
	TagSupport             *DiagnosticTagValueSet `json:"tagSupport,omitempty"`
	VersionSupport         *bool                  `json:"versionSupport,omitempty"`
	CodeDescriptionSupport *bool                  `json:"codeDescriptionSupport,omitempty"`
	DataSupport            *bool                  `json:"dataSupport,omitempty"`
}

// DiagnosticTagValueSet lists renderable diagnostic tags.
type DiagnosticTagValueSet struct {
	ValueSet []DiagnosticTag `json:"valueSet"`
}

// FoldingRangeClientCapabilities cover textDocument/foldingRange.
type FoldingRangeClientCapabilities struct {
	DynamicRegistration *bool                     `json:"dynamicRegistration,omitempty"`
	RangeLimit          *uint32                   `json:"rangeLimit,omitempty"`
	LineFoldingOnly     *bool                     `json:"lineFoldingOnly,omitempty"`
	FoldingRangeKind    *FoldingRangeKindValueSet `json:"foldingRangeKind,omitempty"`
	FoldingRange        *FoldingRangeCapabilities `json:"foldingRange,omitempty"`
}

// FoldingRangeKindValueSet lists supported folding kinds.
type FoldingRangeKindValueSet struct {
	ValueSet []FoldingRangeKind `json:"valueSet,omitempty"`
}

// FoldingRangeCapabilities describe collapsed-text support.
type FoldingRangeCapabilities struct {
	CollapsedText *bool `json:"collapsedText,omitempty"`
}

// SemanticTokensClientCapabilities cover textDocument/semanticTokens.
type SemanticTokensClientCapabilities struct {
	DynamicRegistration     *bool                        `json:"dynamicRegistration,omitempty"`
	Requests                SemanticTokensClientRequests `json:"requests"`
	TokenTypes              []string                     `json:"tokenTypes"`
	TokenModifiers          []string                     `json:"tokenModifiers"`
	Formats                 []TokenFormat                `json:"formats"`
	OverlappingTokenSupport *bool                        `json:"overlappingTokenSupport,omitempty"`
	MultilineTokenSupport   *bool                        `json:"multilineTokenSupport,omitempty"`
	ServerCancelSupport     *bool                        `json:"serverCancelSupport,omitempty"`
	AugmentsSyntaxTokens    *bool                        `json:"augmentsSyntaxTokens,omitempty"`
}

// SemanticTokensClientRequests describe which token requests the client
// issues. range and full are "boolean | options" unions.
type SemanticTokensClientRequests struct {
	Range *BoolOr[SemanticTokensRangeClientRequest] `json:"range,omitempty"`
	Full  *BoolOr[SemanticTokensFullClientRequest]  `json:"full,omitempty"`
}

// SemanticTokensRangeClientRequest is the options form of requests.range.
type SemanticTokensRangeClientRequest struct{}

// SemanticTokensFullClientRequest is the options form of requests.full.
type SemanticTokensFullClientRequest struct {
	Delta *bool `json:"delta,omitempty"`
}

// InlayHintClientCapabilities cover textDocument/inlayHint.
type InlayHintClientCapabilities struct {
	DynamicRegistration *bool              `json:"dynamicRegistration,omitempty"`
	ResolveSupport      *PropertiesSupport `json:"resolveSupport,omitempty"`
}

// DiagnosticClientCapabilities cover textDocument/diagnostic.
type DiagnosticClientCapabilities struct {
	DynamicRegistration    *bool `json:"dynamicRegistration,omitempty"`
	RelatedDocumentSupport *bool `json:"relatedDocumentSupport,omitempty"`
}

// NotebookDocumentClientCapabilities cover notebook synchronization.
type NotebookDocumentClientCapabilities struct {
	Synchronization *NotebookDocumentSyncClientCapabilities `json:"synchronization,omitempty"`
}

// NotebookDocumentSyncClientCapabilities cover notebook sync registration.
type NotebookDocumentSyncClientCapabilities struct {
	DynamicRegistration     *bool `json:"dynamicRegistration,omitempty"`
	ExecutionSummarySupport *bool `json:"executionSummarySupport,omitempty"`
}

// WindowClientCapabilities cover window features.
type WindowClientCapabilities struct {
	WorkDoneProgress *bool                           `json:"workDoneProgress,omitempty"`
	ShowMessage      *ShowMessageRequestCapabilities `json:"showMessage,omitempty"`
	ShowDocument     *ShowDocumentClientCapabilities `json:"showDocument,omitempty"`
}

// ShowMessageRequestCapabilities describe message-action support.
type ShowMessageRequestCapabilities struct {
	MessageActionItem *MessageActionItemCapabilities `json:"messageActionItem,omitempty"`
}

// MessageActionItemCapabilities describe action-item property passthrough.
type MessageActionItemCapabilities struct {
	AdditionalPropertiesSupport *bool `json:"additionalPropertiesSupport,omitempty"`
}

// ShowDocumentClientCapabilities advertise window/showDocument support.
type ShowDocumentClientCapabilities struct {
	Support bool `json:"support"`
}

// GeneralClientCapabilities cover protocol-wide behaviors.
type GeneralClientCapabilities struct {
	StaleRequestSupport *StaleRequestSupport            `json:"staleRequestSupport,omitempty"`
	RegularExpressions  *RegularExpressionsCapabilities `json:"regularExpressions,omitempty"`
	Markdown            *MarkdownClientCapabilities     `json:"markdown,omitempty"`
	PositionEncodings   []PositionEncodingKind          `json:"positionEncodings,omitempty"`
}

// StaleRequestSupport describes ContentModified retry behavior.
type StaleRequestSupport struct {
	Cancel                 bool     `json:"cancel"`
	RetryOnContentModified []string `json:"retryOnContentModified"`
}

// RegularExpressionsCapabilities name the client's regex engine.
type RegularExpressionsCapabilities struct {
	Engine  string  `json:"engine"`
	Version *string `json:"version,omitempty"`
}

// MarkdownClientCapabilities name the client's markdown renderer.
type MarkdownClientCapabilities struct {
	Parser      string   `json:"parser"`
	Version     *string  `json:"version,omitempty"`
	AllowedTags []string `json:"allowedTags,omitempty"`
}

// --- server capabilities ---

// ServerCapabilities advertise what this server implements. Provider
// fields declared "boolean | options" use BoolOr.
type ServerCapabilities struct {
	PositionEncoding                 *PositionEncodingKind                   `json:"positionEncoding,omitempty"`
	TextDocumentSync                 *TextDocumentSyncOptions                `json:"textDocumentSync,omitempty"`
	NotebookDocumentSync             *NotebookDocumentSyncOptions            `json:"notebookDocumentSync,omitempty"`
	CompletionProvider               *CompletionOptions                      `json:"completionProvider,omitempty"`
	HoverProvider                    *BoolOr[HoverOptions]                   `json:"hoverProvider,omitempty"`
	SignatureHelpProvider            *SignatureHelpOptions                   `json:"signatureHelpProvider,omitempty"`
	DeclarationProvider              *BoolOr[DeclarationOptions]             `json:"declarationProvider,omitempty"`
	DefinitionProvider               *BoolOr[DefinitionOptions]              `json:"definitionProvider,omitempty"`
	TypeDefinitionProvider           *BoolOr[TypeDefinitionOptions]          `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider           *BoolOr[ImplementationOptions]          `json:"implementationProvider,omitempty"`
	ReferencesProvider               *BoolOr[ReferenceOptions]               `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider        *BoolOr[DocumentHighlightOptions]       `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider           *BoolOr[DocumentSymbolOptions]          `json:"documentSymbolProvider,omitempty"`
	CodeActionProvider               *BoolOr[CodeActionOptions]              `json:"codeActionProvider,omitempty"`
	CodeLensProvider                 *CodeLensOptions                        `json:"codeLensProvider,omitempty"`
	DocumentLinkProvider             *DocumentLinkOptions                    `json:"documentLinkProvider,omitempty"`
	ColorProvider                    *BoolOr[DocumentColorOptions]           `json:"colorProvider,omitempty"`
	DocumentFormattingProvider       *BoolOr[DocumentFormattingOptions]      `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider  *BoolOr[DocumentRangeFormattingOptions] `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *DocumentOnTypeFormattingOptions        `json:"documentOnTypeFormattingProvider,omitempty"`
	RenameProvider                   *BoolOr[RenameOptions]                  `json:"renameProvider,omitempty"`
	FoldingRangeProvider             *BoolOr[FoldingRangeOptions]            `json:"foldingRangeProvider,omitempty"`
	ExecuteCommandProvider           *ExecuteCommandOptions                  `json:"executeCommandProvider,omitempty"`
	SelectionRangeProvider           *BoolOr[SelectionRangeOptions]          `json:"selectionRangeProvider,omitempty"`
	LinkedEditingRangeProvider       *BoolOr[LinkedEditingRangeOptions]      `json:"linkedEditingRangeProvider,omitempty"`
	CallHierarchyProvider            *BoolOr[CallHierarchyOptions]           `json:"callHierarchyProvider,omitempty"`
	SemanticTokensProvider           *SemanticTokensOptions                  `json:"semanticTokensProvider,omitempty"`
	MonikerProvider                  *BoolOr[MonikerOptions]                 `json:"monikerProvider,omitempty"`
	TypeHierarchyProvider            *BoolOr[TypeHierarchyOptions]           `json:"typeHierarchyProvider,omitempty"`
	InlineValueProvider              *BoolOr[InlineValueOptions]             `json:"inlineValueProvider,omitempty"`
	InlayHintProvider                *BoolOr[InlayHintOptions]               `json:"inlayHintProvider,omitempty"`
	DiagnosticProvider               *DiagnosticOptions                      `json:"diagnosticProvider,omitempty"`
	InlineCompletionProvider         *BoolOr[InlineCompletionOptions]        `json:"inlineCompletionProvider,omitempty"`
	WorkspaceSymbolProvider          *BoolOr[WorkspaceSymbolOptions]         `json:"workspaceSymbolProvider,omitempty"`
	Workspace                        *WorkspaceServerCapabilities            `json:"workspace,omitempty"`
	Experimental                     anyval.Value                            `json:"experimental,omitempty"`
}

// WorkDoneProgressOptions is embedded by option types that may report
// work-done progress.
type WorkDoneProgressOptions struct {
	WorkDoneProgress *bool `json:"workDoneProgress,omitempty"`
}

// Option literals for provider capabilities. Most carry only the shared
// progress flag.
type (
	HoverOptions                   struct{ WorkDoneProgressOptions }
	DeclarationOptions             struct{ WorkDoneProgressOptions }
	DefinitionOptions              struct{ WorkDoneProgressOptions }
	TypeDefinitionOptions          struct{ WorkDoneProgressOptions }
	ImplementationOptions          struct{ WorkDoneProgressOptions }
	ReferenceOptions               struct{ WorkDoneProgressOptions }
	DocumentHighlightOptions       struct{ WorkDoneProgressOptions }
	DocumentColorOptions           struct{ WorkDoneProgressOptions }
	DocumentFormattingOptions      struct{ WorkDoneProgressOptions }
	DocumentRangeFormattingOptions struct{ WorkDoneProgressOptions }
	SelectionRangeOptions          struct{ WorkDoneProgressOptions }
	LinkedEditingRangeOptions      struct{ WorkDoneProgressOptions }
	CallHierarchyOptions           struct{ WorkDoneProgressOptions }
	MonikerOptions                 struct{ WorkDoneProgressOptions }
	TypeHierarchyOptions           struct{ WorkDoneProgressOptions }
	InlineValueOptions             struct{ WorkDoneProgressOptions }
	InlineCompletionOptions        struct{ WorkDoneProgressOptions }
)

// DocumentSymbolOptions configures textDocument/documentSymbol.
type DocumentSymbolOptions struct {
	WorkDoneProgressOptions
	Label *string `json:"label,omitempty"`
}

// CompletionOptions configure textDocument/completion.
type CompletionOptions struct {
	WorkDoneProgressOptions
	TriggerCharacters   []string               `json:"triggerCharacters,omitempty"`
	AllCommitCharacters []string               `json:"allCommitCharacters,omitempty"`
	ResolveProvider     *bool                  `json:"resolveProvider,omitempty"`
	CompletionItem      *CompletionItemOptions `json:"completionItem,omitempty"`
}

// CompletionItemOptions configure completion item label details.
type CompletionItemOptions struct {
	LabelDetailsSupport *bool `json:"labelDetailsSupport,omitempty"`
}

// SignatureHelpOptions configure textDocument/signatureHelp.
type SignatureHelpOptions struct {
	WorkDoneProgressOptions
	TriggerCharacters   []string `json:"triggerCharacters,omitempty"`
	RetriggerCharacters []string `json:"retriggerCharacters,omitempty"`
}

// CodeActionOptions configure textDocument/codeAction.
type CodeActionOptions struct {
	WorkDoneProgressOptions
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitempty"`
	ResolveProvider *bool            `json:"resolveProvider,omitempty"`
}

// CodeLensOptions configure textDocument/codeLens.
type CodeLensOptions struct {
	WorkDoneProgressOptions
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// DocumentLinkOptions configure textDocument/documentLink.
type DocumentLinkOptions struct {
	WorkDoneProgressOptions
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// DocumentOnTypeFormattingOptions configure on-type formatting.
type DocumentOnTypeFormattingOptions struct {
	FirstTriggerCharacter string   `json:"firstTriggerCharacter"`
	MoreTriggerCharacter  []string `json:"moreTriggerCharacter,omitempty"`
}

// RenameOptions configure textDocument/rename.
type RenameOptions struct {
	WorkDoneProgressOptions
	PrepareProvider *bool `json:"prepareProvider,omitempty"`
}

// FoldingRangeOptions configure textDocument/foldingRange.
type FoldingRangeOptions struct{ WorkDoneProgressOptions }

// ExecuteCommandOptions configure workspace/executeCommand.
type ExecuteCommandOptions struct {
	WorkDoneProgressOptions
	Commands []string `json:"commands"`
}

// WorkspaceSymbolOptions configure workspace/symbol.
type WorkspaceSymbolOptions struct {
	WorkDoneProgressOptions
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// SemanticTokensOptions configure textDocument/semanticTokens.
type SemanticTokensOptions struct {
	WorkDoneProgressOptions
	Legend SemanticTokensLegend                      `json:"legend"`
	Range  *BoolOr[SemanticTokensRangeClientRequest] `json:"range,omitempty"`
	Full   *BoolOr[SemanticTokensFullClientRequest]  `json:"full,omitempty"`
}

// InlayHintOptions configure textDocument/inlayHint.
type InlayHintOptions struct {
	WorkDoneProgressOptions
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

// DiagnosticOptions configure pull diagnostics.
type DiagnosticOptions struct {
	WorkDoneProgressOptions
	Identifier            *string `json:"identifier,omitempty"`
	InterFileDependencies bool    `json:"interFileDependencies"`
	WorkspaceDiagnostics  bool    `json:"workspaceDiagnostics"`
}

// WorkspaceServerCapabilities cover workspace-scoped server features.
type WorkspaceServerCapabilities struct {
	WorkspaceFolders *WorkspaceFoldersServerCapabilities `json:"workspaceFolders,omitempty"`
	FileOperations   *FileOperationOptions               `json:"fileOperations,omitempty"`
}

// WorkspaceFoldersServerCapabilities advertise multi-root support.
type WorkspaceFoldersServerCapabilities struct {
	Supported           *bool   `json:"supported,omitempty"`
	ChangeNotifications *string `json:"changeNotifications,omitempty"`
}

// FileOperationOptions register interest in file operations.
type FileOperationOptions struct {
	DidCreate  *FileOperationRegistrationOptions `json:"didCreate,omitempty"`
	WillCreate *FileOperationRegistrationOptions `json:"willCreate,omitempty"`
	DidRename  *FileOperationRegistrationOptions `json:"didRename,omitempty"`
	WillRename *FileOperationRegistrationOptions `json:"willRename,omitempty"`
	DidDelete  *FileOperationRegistrationOptions `json:"didDelete,omitempty"`
	WillDelete *FileOperationRegistrationOptions `json:"willDelete,omitempty"`
}

// FileOperationRegistrationOptions list the patterns of interest.
type FileOperationRegistrationOptions struct {
	Filters []FileOperationFilter `json:"filters"`
}

// FileOperationFilter matches file operations by scheme and pattern.
type FileOperationFilter struct {
	Scheme  *string              `json:"scheme,omitempty"`
	Pattern FileOperationPattern `json:"pattern"`
}

// FileOperationPattern is a glob over file operation paths.
type FileOperationPattern struct {
	Glob    string                       `json:"glob"`
	Matches *FileOperationPatternKind    `json:"matches,omitempty"`
	Options *FileOperationPatternOptions `json:"options,omitempty"`
}

// FileOperationPatternOptions modify pattern matching.
type FileOperationPatternOptions struct {
	IgnoreCase *bool `json:"ignoreCase,omitempty"`
}
