package protocol

import "github.com/dshills/lspcore/internal/anyval"

// Notebook coverage is schema-only: the types below give the codec full
// round-trip support for notebookDocument/* traffic; the core keeps no
// notebook document store.

// NotebookDocument is a collection of cells.
type NotebookDocument struct {
	URI          URI            `json:"uri"`
	NotebookType string         `json:"notebookType"`
	Version      int32          `json:"version"`
	Metadata     anyval.Value   `json:"metadata,omitempty"`
	Cells        []NotebookCell `json:"cells"`
}

// NotebookCell is one cell of a notebook document.
type NotebookCell struct {
	Kind             NotebookCellKind  `json:"kind"`
	Document         DocumentURI       `json:"document"`
	Metadata         anyval.Value      `json:"metadata,omitempty"`
	ExecutionSummary *ExecutionSummary `json:"executionSummary,omitempty"`
}

// ExecutionSummary reports the last execution of a code cell.
type ExecutionSummary struct {
	ExecutionOrder uint32 `json:"executionOrder"`
	Success        *bool  `json:"success,omitempty"`
}

// NotebookDocumentIdentifier identifies a notebook document.
type NotebookDocumentIdentifier struct {
	URI URI `json:"uri"`
}

// VersionedNotebookDocumentIdentifier identifies a notebook version.
type VersionedNotebookDocumentIdentifier struct {
	Version int32 `json:"version"`
	URI     URI   `json:"uri"`
}

// DidOpenNotebookDocumentParams are the parameters of
// notebookDocument/didOpen.
type DidOpenNotebookDocumentParams struct {
	NotebookDocument  NotebookDocument   `json:"notebookDocument"`
	CellTextDocuments []TextDocumentItem `json:"cellTextDocuments"`
}

// DidChangeNotebookDocumentParams are the parameters of
// notebookDocument/didChange.
type DidChangeNotebookDocumentParams struct {
	NotebookDocument VersionedNotebookDocumentIdentifier `json:"notebookDocument"`
	Change           NotebookDocumentChangeEvent         `json:"change"`
}

// NotebookDocumentChangeEvent describes a notebook change.
type NotebookDocumentChangeEvent struct {
	Metadata anyval.Value                 `json:"metadata,omitempty"`
	Cells    *NotebookDocumentCellChanges `json:"cells,omitempty"`
}

// NotebookDocumentCellChanges groups structural, data, and text changes.
type NotebookDocumentCellChanges struct {
	Structure   *NotebookCellArrayChange `json:"structure,omitempty"`
	Data        []NotebookCell           `json:"data,omitempty"`
	TextContent []NotebookCellTextChange `json:"textContent,omitempty"`
}

// NotebookCellArrayChange splices the cell array.
type NotebookCellArrayChange struct {
	Array    NotebookCellSplice       `json:"array"`
	DidOpen  []TextDocumentItem       `json:"didOpen,omitempty"`
	DidClose []TextDocumentIdentifier `json:"didClose,omitempty"`
}

// NotebookCellSplice is the raw splice of the cell array.
type NotebookCellSplice struct {
	Start       uint32         `json:"start"`
	DeleteCount uint32         `json:"deleteCount"`
	Cells       []NotebookCell `json:"cells,omitempty"`
}

// NotebookCellTextChange carries text edits for one cell document.
type NotebookCellTextChange struct {
	Document VersionedTextDocumentIdentifier  `json:"document"`
	Changes  []TextDocumentContentChangeEvent `json:"changes"`
}

// DidSaveNotebookDocumentParams are the parameters of
// notebookDocument/didSave.
type DidSaveNotebookDocumentParams struct {
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`
}

// DidCloseNotebookDocumentParams are the parameters of
// notebookDocument/didClose.
type DidCloseNotebookDocumentParams struct {
	NotebookDocument  NotebookDocumentIdentifier `json:"notebookDocument"`
	CellTextDocuments []TextDocumentIdentifier   `json:"cellTextDocuments"`
}

// NotebookDocumentSyncOptions advertise notebook sync in capabilities.
type NotebookDocumentSyncOptions struct {
	NotebookSelector []NotebookSelector `json:"notebookSelector"`
	Save             *bool              `json:"save,omitempty"`
}

// NotebookSelector matches notebooks and cells for sync.
type NotebookSelector struct {
	Notebook *NotebookFilter        `json:"notebook,omitempty"`
	Cells    []NotebookCellSelector `json:"cells,omitempty"`
}

// NotebookFilter matches notebooks by type, scheme, or pattern.
type NotebookFilter struct {
	NotebookType *string `json:"notebookType,omitempty"`
	Scheme       *string `json:"scheme,omitempty"`
	Pattern      *string `json:"pattern,omitempty"`
}

// NotebookCellSelector matches cells by language.
type NotebookCellSelector struct {
	Language string `json:"language"`
}
