package protocol

import "fmt"

// Method name constants for every method the server speaks, grouped by
// transport direction. The registries below are the closed sets the
// dispatcher validates against; an inbound method outside its registry is
// MethodNotFound, never a crash.
const (
	// Incoming requests (client → server)
	MethodInitialize                 = "initialize"
	MethodShutdown                   = "shutdown"
	MethodCompletion                 = "textDocument/completion"
	MethodCompletionItemResolve      = "completionItem/resolve"
	MethodHover                      = "textDocument/hover"
	MethodSignatureHelp              = "textDocument/signatureHelp"
	MethodDeclaration                = "textDocument/declaration"
	MethodDefinition                 = "textDocument/definition"
	MethodTypeDefinition             = "textDocument/typeDefinition"
	MethodImplementation             = "textDocument/implementation"
	MethodReferences                 = "textDocument/references"
	MethodDocumentHighlight          = "textDocument/documentHighlight"
	MethodDocumentSymbol             = "textDocument/documentSymbol"
	MethodCodeAction                 = "textDocument/codeAction"
	MethodCodeActionResolve          = "codeAction/resolve"
	MethodCodeLens                   = "textDocument/codeLens"
	MethodCodeLensResolve            = "codeLens/resolve"
	MethodDocumentLink               = "textDocument/documentLink"
	MethodDocumentLinkResolve        = "documentLink/resolve"
	MethodDocumentColor              = "textDocument/documentColor"
	MethodColorPresentation          = "textDocument/colorPresentation"
	MethodFormatting                 = "textDocument/formatting"
	MethodRangeFormatting            = "textDocument/rangeFormatting"
	MethodRangesFormatting           = "textDocument/rangesFormatting"
	MethodOnTypeFormatting           = "textDocument/onTypeFormatting"
	MethodRename                     = "textDocument/rename"
	MethodPrepareRename              = "textDocument/prepareRename"
	MethodFoldingRange               = "textDocument/foldingRange"
	MethodSelectionRange             = "textDocument/selectionRange"
	MethodPrepareCallHierarchy       = "textDocument/prepareCallHierarchy"
	MethodCallHierarchyIncomingCalls = "callHierarchy/incomingCalls"
	MethodCallHierarchyOutgoingCalls = "callHierarchy/outgoingCalls"
	MethodSemanticTokensFull         = "textDocument/semanticTokens/full"
	MethodSemanticTokensFullDelta    = "textDocument/semanticTokens/full/delta"
	MethodSemanticTokensRange        = "textDocument/semanticTokens/range"
	MethodLinkedEditingRange         = "textDocument/linkedEditingRange"
	MethodMoniker                    = "textDocument/moniker"
	MethodPrepareTypeHierarchy       = "textDocument/prepareTypeHierarchy"
	MethodTypeHierarchySupertypes    = "typeHierarchy/supertypes"
	MethodTypeHierarchySubtypes      = "typeHierarchy/subtypes"
	MethodInlayHint                  = "textDocument/inlayHint"
	MethodInlayHintResolve           = "inlayHint/resolve"
	MethodInlineValue                = "textDocument/inlineValue"
	MethodInlineCompletion           = "textDocument/inlineCompletion"
	MethodDocumentDiagnostic         = "textDocument/diagnostic"
	MethodWillSaveWaitUntil          = "textDocument/willSaveWaitUntil"
	MethodWorkspaceSymbol            = "workspace/symbol"
	MethodWorkspaceSymbolResolve     = "workspaceSymbol/resolve"
	MethodWorkspaceExecuteCommand    = "workspace/executeCommand"
	MethodWorkspaceWillCreateFiles   = "workspace/willCreateFiles"
	MethodWorkspaceWillRenameFiles   = "workspace/willRenameFiles"
	MethodWorkspaceWillDeleteFiles   = "workspace/willDeleteFiles"
	MethodWorkspaceDiagnostic        = "workspace/diagnostic"

	// Incoming notifications (client → server)
	MethodInitialized               = "initialized"
	MethodExit                      = "exit"
	MethodSetTrace                  = "$/setTrace"
	MethodCancelRequest             = "$/cancelRequest"
	MethodWorkDoneProgressCancel    = "window/workDoneProgress/cancel"
	MethodDidOpen                   = "textDocument/didOpen"
	MethodDidChange                 = "textDocument/didChange"
	MethodDidClose                  = "textDocument/didClose"
	MethodDidSave                   = "textDocument/didSave"
	MethodWillSave                  = "textDocument/willSave"
	MethodNotebookDidOpen           = "notebookDocument/didOpen"
	MethodNotebookDidChange         = "notebookDocument/didChange"
	MethodNotebookDidClose          = "notebookDocument/didClose"
	MethodNotebookDidSave           = "notebookDocument/didSave"
	MethodDidChangeConfiguration    = "workspace/didChangeConfiguration"
	MethodDidChangeWatchedFiles     = "workspace/didChangeWatchedFiles"
	MethodDidChangeWorkspaceFolders = "workspace/didChangeWorkspaceFolders"
	MethodWorkspaceDidCreateFiles   = "workspace/didCreateFiles"
	MethodWorkspaceDidRenameFiles   = "workspace/didRenameFiles"
	MethodWorkspaceDidDeleteFiles   = "workspace/didDeleteFiles"

	// Outgoing requests (server → client)
	MethodClientRegisterCapability       = "client/registerCapability"
	MethodClientUnregisterCapability     = "client/unregisterCapability"
	MethodWindowShowDocument             = "window/showDocument"
	MethodWindowShowMessageRequest       = "window/showMessageRequest"
	MethodWorkDoneProgressCreate         = "window/workDoneProgress/create"
	MethodWorkspaceApplyEdit             = "workspace/applyEdit"
	MethodWorkspaceCodeLensRefresh       = "workspace/codeLens/refresh"
	MethodWorkspaceConfiguration         = "workspace/configuration"
	MethodWorkspaceDiagnosticRefresh     = "workspace/diagnostic/refresh"
	MethodWorkspaceFoldingRangeRefresh   = "workspace/foldingRange/refresh"
	MethodWorkspaceInlayHintRefresh      = "workspace/inlayHint/refresh"
	MethodWorkspaceInlineValueRefresh    = "workspace/inlineValue/refresh"
	MethodWorkspaceSemanticTokensRefresh = "workspace/semanticTokens/refresh"
	MethodWorkspaceWorkspaceFolders      = "workspace/workspaceFolders"

	// Outgoing notifications (server → client)
	MethodLogTrace           = "$/logTrace"
	MethodTelemetryEvent     = "telemetry/event"
	MethodPublishDiagnostics = "textDocument/publishDiagnostics"
	MethodWindowLogMessage   = "window/logMessage"
	MethodWindowShowMessage  = "window/showMessage"
)

func methodSet(methods ...string) map[string]bool {
	set := make(map[string]bool, len(methods))
	for _, m := range methods {
		set[m] = true
	}
	return set
}

// IncomingRequests is the closed set of client → server request methods.
var IncomingRequests = methodSet(
	MethodInitialize, MethodShutdown,
	MethodCompletion, MethodCompletionItemResolve,
	MethodHover, MethodSignatureHelp,
	MethodDeclaration, MethodDefinition, MethodTypeDefinition, MethodImplementation,
	MethodReferences, MethodDocumentHighlight, MethodDocumentSymbol,
	MethodCodeAction, MethodCodeActionResolve,
	MethodCodeLens, MethodCodeLensResolve,
	MethodDocumentLink, MethodDocumentLinkResolve,
	MethodDocumentColor, MethodColorPresentation,
	MethodFormatting, MethodRangeFormatting, MethodRangesFormatting, MethodOnTypeFormatting,
	MethodRename, MethodPrepareRename,
	MethodFoldingRange, MethodSelectionRange,
	MethodPrepareCallHierarchy, MethodCallHierarchyIncomingCalls, MethodCallHierarchyOutgoingCalls,
	MethodSemanticTokensFull, MethodSemanticTokensFullDelta, MethodSemanticTokensRange,
	MethodLinkedEditingRange, MethodMoniker,
	MethodPrepareTypeHierarchy, MethodTypeHierarchySupertypes, MethodTypeHierarchySubtypes,
	MethodInlayHint, MethodInlayHintResolve,
	MethodInlineValue, MethodInlineCompletion,
	MethodDocumentDiagnostic, MethodWillSaveWaitUntil,
	MethodWorkspaceSymbol, MethodWorkspaceSymbolResolve, MethodWorkspaceExecuteCommand,
	MethodWorkspaceWillCreateFiles, MethodWorkspaceWillRenameFiles, MethodWorkspaceWillDeleteFiles,
	MethodWorkspaceDiagnostic,
)

// IncomingNotifications is the closed set of client → server notification
// methods.
var IncomingNotifications = methodSet(
	MethodInitialized, MethodExit,
	MethodSetTrace, MethodCancelRequest, MethodWorkDoneProgressCancel,
	MethodDidOpen, MethodDidChange, MethodDidClose, MethodDidSave, MethodWillSave,
	MethodNotebookDidOpen, MethodNotebookDidChange, MethodNotebookDidClose, MethodNotebookDidSave,
	MethodDidChangeConfiguration, MethodDidChangeWatchedFiles, MethodDidChangeWorkspaceFolders,
	MethodWorkspaceDidCreateFiles, MethodWorkspaceDidRenameFiles, MethodWorkspaceDidDeleteFiles,
)

// OutgoingRequests is the closed set of server → client request methods.
var OutgoingRequests = methodSet(
	MethodClientRegisterCapability, MethodClientUnregisterCapability,
	MethodWindowShowDocument, MethodWindowShowMessageRequest, MethodWorkDoneProgressCreate,
	MethodWorkspaceApplyEdit, MethodWorkspaceCodeLensRefresh, MethodWorkspaceConfiguration,
	MethodWorkspaceDiagnosticRefresh, MethodWorkspaceFoldingRangeRefresh,
	MethodWorkspaceInlayHintRefresh, MethodWorkspaceInlineValueRefresh,
	MethodWorkspaceSemanticTokensRefresh, MethodWorkspaceWorkspaceFolders,
)

// OutgoingNotifications is the closed set of server → client notification
// methods.
var OutgoingNotifications = methodSet(
	MethodLogTrace, MethodTelemetryEvent, MethodPublishDiagnostics,
	MethodWindowLogMessage, MethodWindowShowMessage,
)

// IsIncomingRequest reports whether method is a client → server request.
func IsIncomingRequest(method string) bool { return IncomingRequests[method] }

// IsIncomingNotification reports whether method is a client → server
// notification.
func IsIncomingNotification(method string) bool { return IncomingNotifications[method] }

// IsOutgoingRequest reports whether method is a server → client request.
func IsOutgoingRequest(method string) bool { return OutgoingRequests[method] }

// IsOutgoingNotification reports whether method is a server → client
// notification.
func IsOutgoingNotification(method string) bool { return OutgoingNotifications[method] }

// CheckIncoming classifies an inbound method string. isRequest is only
// meaningful when err is nil.
func CheckIncoming(method string) (isRequest bool, err error) {
	switch {
	case IncomingRequests[method]:
		return true, nil
	case IncomingNotifications[method]:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}
