package protocol

import (
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
)

// WorkspaceEdit represents changes to many resources in the workspace.
type WorkspaceEdit struct {
	Changes           map[DocumentURI][]TextEdit  `json:"changes,omitempty"`
	DocumentChanges   []DocumentChange            `json:"documentChanges,omitempty"`
	ChangeAnnotations map[string]ChangeAnnotation `json:"changeAnnotations,omitempty"`
}

// DocumentChange is the TextDocumentEdit | CreateFile | RenameFile |
// DeleteFile union. Discrimination: a kind attribute selects the resource
// operation ("create"/"rename"/"delete"); absence selects TextDocumentEdit.
type DocumentChange struct {
	TextDocument *TextDocumentEdit
	Create       *CreateFile
	Rename       *RenameFile
	Delete       *DeleteFile
}

// TextDocumentEdit groups edits against one document version.
type TextDocumentEdit struct {
	TextDocument OptionalVersionedTextDocumentIdentifier `json:"textDocument"`
	Edits        []TextEdit                              `json:"edits"`
}

// CreateFile is a create-resource operation.
type CreateFile struct {
	Kind         ResourceOperationKind `json:"kind"`
	URI          DocumentURI           `json:"uri"`
	Options      *CreateFileOptions    `json:"options,omitempty"`
	AnnotationID *string               `json:"annotationId,omitempty"`
}

// CreateFileOptions control overwrite behavior.
type CreateFileOptions struct {
	Overwrite      *bool `json:"overwrite,omitempty"`
	IgnoreIfExists *bool `json:"ignoreIfExists,omitempty"`
}

// RenameFile is a rename-resource operation.
type RenameFile struct {
	Kind         ResourceOperationKind `json:"kind"`
	OldURI       DocumentURI           `json:"oldUri"`
	NewURI       DocumentURI           `json:"newUri"`
	Options      *RenameFileOptions    `json:"options,omitempty"`
	AnnotationID *string               `json:"annotationId,omitempty"`
}

// RenameFileOptions control overwrite behavior.
type RenameFileOptions struct {
	Overwrite      *bool `json:"overwrite,omitempty"`
	IgnoreIfExists *bool `json:"ignoreIfExists,omitempty"`
}

// DeleteFile is a delete-resource operation.
type DeleteFile struct {
	Kind         ResourceOperationKind `json:"kind"`
	URI          DocumentURI           `json:"uri"`
	Options      *DeleteFileOptions    `json:"options,omitempty"`
	AnnotationID *string               `json:"annotationId,omitempty"`
}

// DeleteFileOptions control recursion and missing-file tolerance.
type DeleteFileOptions struct {
	Recursive         *bool `json:"recursive,omitempty"`
	IgnoreIfNotExists *bool `json:"ignoreIfNotExists,omitempty"`
}

// ApplyWorkspaceEditParams are the parameters of workspace/applyEdit.
type ApplyWorkspaceEditParams struct {
	Label *string       `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

// ApplyWorkspaceEditResult is the result of workspace/applyEdit.
type ApplyWorkspaceEditResult struct {
	Applied       bool    `json:"applied"`
	FailureReason *string `json:"failureReason,omitempty"`
	FailedChange  *uint32 `json:"failedChange,omitempty"`
}

// --- workspace notifications ---

// DidChangeConfigurationParams are the parameters of
// workspace/didChangeConfiguration.
type DidChangeConfigurationParams struct {
	Settings anyval.Value `json:"settings"`
}

// DidChangeWatchedFilesParams are the parameters of
// workspace/didChangeWatchedFiles.
type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}

// FileEvent describes one watched-file change.
type FileEvent struct {
	URI  DocumentURI    `json:"uri"`
	Type FileChangeType `json:"type"`
}

// DidChangeWorkspaceFoldersParams are the parameters of
// workspace/didChangeWorkspaceFolders.
type DidChangeWorkspaceFoldersParams struct {
	Event WorkspaceFoldersChangeEvent `json:"event"`
}

// WorkspaceFoldersChangeEvent lists added and removed folders.
type WorkspaceFoldersChangeEvent struct {
	Added   []WorkspaceFolder `json:"added"`
	Removed []WorkspaceFolder `json:"removed"`
}

// --- file operations ---

// CreateFilesParams are the parameters of workspace/willCreateFiles and
// workspace/didCreateFiles.
type CreateFilesParams struct {
	Files []FileCreate `json:"files"`
}

// FileCreate names one file being created.
type FileCreate struct {
	URI string `json:"uri"`
}

// RenameFilesParams are the parameters of workspace/willRenameFiles and
// workspace/didRenameFiles.
type RenameFilesParams struct {
	Files []FileRename `json:"files"`
}

// FileRename names one file being renamed.
type FileRename struct {
	OldURI string `json:"oldUri"`
	NewURI string `json:"newUri"`
}

// DeleteFilesParams are the parameters of workspace/willDeleteFiles and
// workspace/didDeleteFiles.
type DeleteFilesParams struct {
	Files []FileDelete `json:"files"`
}

// FileDelete names one file being deleted.
type FileDelete struct {
	URI string `json:"uri"`
}

// --- execute command / configuration ---

// ExecuteCommandParams are the parameters of workspace/executeCommand.
type ExecuteCommandParams struct {
	WorkDoneProgressParams
	Command   string         `json:"command"`
	Arguments []anyval.Value `json:"arguments,omitempty"`
}

// ConfigurationParams are the parameters of workspace/configuration.
type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

// ConfigurationItem scopes one configuration lookup.
type ConfigurationItem struct {
	ScopeURI *DocumentURI `json:"scopeUri,omitempty"`
	Section  *string      `json:"section,omitempty"`
}

// --- registration ---

// Registration registers one capability dynamically.
type Registration struct {
	ID              string       `json:"id"`
	Method          string       `json:"method"`
	RegisterOptions anyval.Value `json:"registerOptions,omitempty"`
}

// RegistrationParams are the parameters of client/registerCapability.
type RegistrationParams struct {
	Registrations []Registration `json:"registrations"`
}

// Unregistration removes one dynamic registration.
type Unregistration struct {
	ID     string `json:"id"`
	Method string `json:"method"`
}

// UnregistrationParams are the parameters of client/unregisterCapability.
type UnregistrationParams struct {
	Unregisterations []Unregistration `json:"unregisterations"`
}

// DidChangeWatchedFilesRegistrationOptions register file watchers.
type DidChangeWatchedFilesRegistrationOptions struct {
	Watchers []FileSystemWatcher `json:"watchers"`
}

// FileSystemWatcher is one glob-pattern watcher registration.
type FileSystemWatcher struct {
	GlobPattern string     `json:"globPattern"`
	Kind        *WatchKind `json:"kind,omitempty"`
}

// --- window ---

// ShowMessageParams are the parameters of window/showMessage.
type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// LogMessageParams are the parameters of window/logMessage.
type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// ShowMessageRequestParams are the parameters of window/showMessageRequest.
type ShowMessageRequestParams struct {
	Type    MessageType         `json:"type"`
	Message string              `json:"message"`
	Actions []MessageActionItem `json:"actions,omitempty"`
}

// MessageActionItem is one button offered to the user.
type MessageActionItem struct {
	Title string `json:"title"`
}

// ShowDocumentParams are the parameters of window/showDocument.
type ShowDocumentParams struct {
	URI       URI    `json:"uri"`
	External  *bool  `json:"external,omitempty"`
	TakeFocus *bool  `json:"takeFocus,omitempty"`
	Selection *Range `json:"selection,omitempty"`
}

// ShowDocumentResult is the result of window/showDocument.
type ShowDocumentResult struct {
	Success bool `json:"success"`
}

// TelemetryEventParams is the free-form payload of telemetry/event.
type TelemetryEventParams struct {
	Data anyval.Value `json:"data"`
}

// NewDocumentChangeEdit wraps a TextDocumentEdit as a DocumentChange.
func NewDocumentChangeEdit(edit TextDocumentEdit) DocumentChange {
	return DocumentChange{TextDocument: &edit}
}

// Variant reports which resource-operation kind a DocumentChange holds,
// or empty for a text document edit.
func (c DocumentChange) Variant() (ResourceOperationKind, error) {
	switch {
	case c.TextDocument != nil:
		return "", nil
	case c.Create != nil:
		return ResourceOperationCreate, nil
	case c.Rename != nil:
		return ResourceOperationRename, nil
	case c.Delete != nil:
		return ResourceOperationDelete, nil
	default:
		return "", fmt.Errorf("DocumentChange: no variant set")
	}
}
