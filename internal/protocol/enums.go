package protocol

import "fmt"

// The enum tables below are immutable after process start. Integer enums
// validate by range table, string enums by membership; lookups outside the
// defined set fail with ErrUnknownEnumValue, which the codec re-wraps as
// InvalidParams.

// DiagnosticSeverity reports how severe a diagnostic is.
type DiagnosticSeverity int32

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

var diagnosticSeverityNames = map[DiagnosticSeverity]string{
	SeverityError:       "Error",
	SeverityWarning:     "Warning",
	SeverityInformation: "Information",
	SeverityHint:        "Hint",
}

// Valid reports whether the value is in the defined set.
func (s DiagnosticSeverity) Valid() bool { _, ok := diagnosticSeverityNames[s]; return ok }

// String returns the enum member name.
func (s DiagnosticSeverity) String() string { return intEnumName(diagnosticSeverityNames, s) }

// DiagnosticSeverityFromValue validates and converts a wire value.
func DiagnosticSeverityFromValue(v int32) (DiagnosticSeverity, error) {
	return intEnumFromValue("DiagnosticSeverity", diagnosticSeverityNames, DiagnosticSeverity(v))
}

// DiagnosticTag adds metadata about a diagnostic.
type DiagnosticTag int32

const (
	DiagnosticTagUnnecessary DiagnosticTag = 1
	DiagnosticTagDeprecated  DiagnosticTag = 2
)

var diagnosticTagNames = map[DiagnosticTag]string{
	DiagnosticTagUnnecessary: "Unnecessary",
	DiagnosticTagDeprecated:  "Deprecated",
}

func (t DiagnosticTag) Valid() bool    { _, ok := diagnosticTagNames[t]; return ok }
func (t DiagnosticTag) String() string { return intEnumName(diagnosticTagNames, t) }

// DiagnosticTagFromValue validates and converts a wire value.
func DiagnosticTagFromValue(v int32) (DiagnosticTag, error) {
	return intEnumFromValue("DiagnosticTag", diagnosticTagNames, DiagnosticTag(v))
}

// SymbolKind classifies document and workspace symbols.
type SymbolKind int32

const (
	SymbolKindFile          SymbolKind = 1
	SymbolKindModule        SymbolKind = 2
	SymbolKindNamespace     SymbolKind = 3
	SymbolKindPackage       SymbolKind = 4
	SymbolKindClass         SymbolKind = 5
	SymbolKindMethod        SymbolKind = 6
	SymbolKindProperty      SymbolKind = 7
	SymbolKindField         SymbolKind = 8
	SymbolKindConstructor   SymbolKind = 9
	SymbolKindEnum          SymbolKind = 10
	SymbolKindInterface     SymbolKind = 11
	SymbolKindFunction      SymbolKind = 12
	SymbolKindVariable      SymbolKind = 13
	SymbolKindConstant      SymbolKind = 14
	SymbolKindString        SymbolKind = 15
	SymbolKindNumber        SymbolKind = 16
	SymbolKindBoolean       SymbolKind = 17
	SymbolKindArray         SymbolKind = 18
	SymbolKindObject        SymbolKind = 19
	SymbolKindKey           SymbolKind = 20
	SymbolKindNull          SymbolKind = 21
	SymbolKindEnumMember    SymbolKind = 22
	SymbolKindStruct        SymbolKind = 23
	SymbolKindEvent         SymbolKind = 24
	SymbolKindOperator      SymbolKind = 25
	SymbolKindTypeParameter SymbolKind = 26
)

var symbolKindNames = map[SymbolKind]string{
	SymbolKindFile: "File", SymbolKindModule: "Module", SymbolKindNamespace: "Namespace",
	SymbolKindPackage: "Package", SymbolKindClass: "Class", SymbolKindMethod: "Method",
	SymbolKindProperty: "Property", SymbolKindField: "Field", SymbolKindConstructor: "Constructor",
	SymbolKindEnum: "Enum", SymbolKindInterface: "Interface", SymbolKindFunction: "Function",
	SymbolKindVariable: "Variable", SymbolKindConstant: "Constant", SymbolKindString: "String",
	SymbolKindNumber: "Number", SymbolKindBoolean: "Boolean", SymbolKindArray: "Array",
	SymbolKindObject: "Object", SymbolKindKey: "Key", SymbolKindNull: "Null",
	SymbolKindEnumMember: "EnumMember", SymbolKindStruct: "Struct", SymbolKindEvent: "Event",
	SymbolKindOperator: "Operator", SymbolKindTypeParameter: "TypeParameter",
}

func (k SymbolKind) Valid() bool    { _, ok := symbolKindNames[k]; return ok }
func (k SymbolKind) String() string { return intEnumName(symbolKindNames, k) }

// SymbolKindFromValue validates and converts a wire value.
func SymbolKindFromValue(v int32) (SymbolKind, error) {
	return intEnumFromValue("SymbolKind", symbolKindNames, SymbolKind(v))
}

// SymbolTag adds metadata about a symbol.
type SymbolTag int32

// SymbolTagDeprecated renders the symbol struck through.
const SymbolTagDeprecated SymbolTag = 1

var symbolTagNames = map[SymbolTag]string{SymbolTagDeprecated: "Deprecated"}

func (t SymbolTag) Valid() bool    { _, ok := symbolTagNames[t]; return ok }
func (t SymbolTag) String() string { return intEnumName(symbolTagNames, t) }

// SymbolTagFromValue validates and converts a wire value.
func SymbolTagFromValue(v int32) (SymbolTag, error) {
	return intEnumFromValue("SymbolTag", symbolTagNames, SymbolTag(v))
}

// CompletionItemKind classifies completion items.
type CompletionItemKind int32

const (
	CompletionItemKindText          CompletionItemKind = 1
	CompletionItemKindMethod        CompletionItemKind = 2
	CompletionItemKindFunction      CompletionItemKind = 3
	CompletionItemKindConstructor   CompletionItemKind = 4
	CompletionItemKindField         CompletionItemKind = 5
	CompletionItemKindVariable      CompletionItemKind = 6
	CompletionItemKindClass         CompletionItemKind = 7
	CompletionItemKindInterface     CompletionItemKind = 8
	CompletionItemKindModule        CompletionItemKind = 9
	CompletionItemKindProperty      CompletionItemKind = 10
	CompletionItemKindUnit          CompletionItemKind = 11
	CompletionItemKindValue         CompletionItemKind = 12
	CompletionItemKindEnum          CompletionItemKind = 13
	CompletionItemKindKeyword       CompletionItemKind = 14
	CompletionItemKindSnippet       CompletionItemKind = 15
	CompletionItemKindColor         CompletionItemKind = 16
	CompletionItemKindFile          CompletionItemKind = 17
	CompletionItemKindReference     CompletionItemKind = 18
	CompletionItemKindFolder        CompletionItemKind = 19
	CompletionItemKindEnumMember    CompletionItemKind = 20
	CompletionItemKindConstant      CompletionItemKind = 21
	CompletionItemKindStruct        CompletionItemKind = 22
	CompletionItemKindEvent         CompletionItemKind = 23
	CompletionItemKindOperator      CompletionItemKind = 24
	CompletionItemKindTypeParameter CompletionItemKind = 25
)

var completionItemKindNames = map[CompletionItemKind]string{
	CompletionItemKindText: "Text", CompletionItemKindMethod: "Method",
	CompletionItemKindFunction: "Function", CompletionItemKindConstructor: "Constructor",
	CompletionItemKindField: "Field", CompletionItemKindVariable: "Variable",
	CompletionItemKindClass: "Class", CompletionItemKindInterface: "Interface",
	CompletionItemKindModule: "Module", CompletionItemKindProperty: "Property",
	CompletionItemKindUnit: "Unit", CompletionItemKindValue: "Value",
	CompletionItemKindEnum: "Enum", CompletionItemKindKeyword: "Keyword",
	CompletionItemKindSnippet: "Snippet", CompletionItemKindColor: "Color",
	CompletionItemKindFile: "File", CompletionItemKindReference: "Reference",
	CompletionItemKindFolder: "Folder", CompletionItemKindEnumMember: "EnumMember",
	CompletionItemKindConstant: "Constant", CompletionItemKindStruct: "Struct",
	CompletionItemKindEvent: "Event", CompletionItemKindOperator: "Operator",
	CompletionItemKindTypeParameter: "TypeParameter",
}

func (k CompletionItemKind) Valid() bool    { _, ok := completionItemKindNames[k]; return ok }
func (k CompletionItemKind) String() string { return intEnumName(completionItemKindNames, k) }

// CompletionItemKindFromValue validates and converts a wire value.
func CompletionItemKindFromValue(v int32) (CompletionItemKind, error) {
	return intEnumFromValue("CompletionItemKind", completionItemKindNames, CompletionItemKind(v))
}

// CompletionItemTag adds metadata about a completion item.
type CompletionItemTag int32

// CompletionItemTagDeprecated renders the item struck through.
const CompletionItemTagDeprecated CompletionItemTag = 1

var completionItemTagNames = map[CompletionItemTag]string{CompletionItemTagDeprecated: "Deprecated"}

func (t CompletionItemTag) Valid() bool    { _, ok := completionItemTagNames[t]; return ok }
func (t CompletionItemTag) String() string { return intEnumName(completionItemTagNames, t) }

// CompletionItemTagFromValue validates and converts a wire value.
func CompletionItemTagFromValue(v int32) (CompletionItemTag, error) {
	return intEnumFromValue("CompletionItemTag", completionItemTagNames, CompletionItemTag(v))
}

// InsertTextFormat describes how an insert text should be interpreted.
type InsertTextFormat int32

const (
	InsertTextFormatPlainText InsertTextFormat = 1
	InsertTextFormatSnippet   InsertTextFormat = 2
)

var insertTextFormatNames = map[InsertTextFormat]string{
	InsertTextFormatPlainText: "PlainText",
	InsertTextFormatSnippet:   "Snippet",
}

func (f InsertTextFormat) Valid() bool    { _, ok := insertTextFormatNames[f]; return ok }
func (f InsertTextFormat) String() string { return intEnumName(insertTextFormatNames, f) }

// InsertTextFormatFromValue validates and converts a wire value.
func InsertTextFormatFromValue(v int32) (InsertTextFormat, error) {
	return intEnumFromValue("InsertTextFormat", insertTextFormatNames, InsertTextFormat(v))
}

// InsertTextMode describes whitespace handling on insert.
type InsertTextMode int32

const (
	InsertTextModeAsIs              InsertTextMode = 1
	InsertTextModeAdjustIndentation InsertTextMode = 2
)

var insertTextModeNames = map[InsertTextMode]string{
	InsertTextModeAsIs:              "AsIs",
	InsertTextModeAdjustIndentation: "AdjustIndentation",
}

func (m InsertTextMode) Valid() bool    { _, ok := insertTextModeNames[m]; return ok }
func (m InsertTextMode) String() string { return intEnumName(insertTextModeNames, m) }

// InsertTextModeFromValue validates and converts a wire value.
func InsertTextModeFromValue(v int32) (InsertTextMode, error) {
	return intEnumFromValue("InsertTextMode", insertTextModeNames, InsertTextMode(v))
}

// CompletionTriggerKind reports how a completion was triggered.
type CompletionTriggerKind int32

const (
	CompletionTriggerInvoked                  CompletionTriggerKind = 1
	CompletionTriggerCharacter                CompletionTriggerKind = 2
	CompletionTriggerForIncompleteCompletions CompletionTriggerKind = 3
)

var completionTriggerKindNames = map[CompletionTriggerKind]string{
	CompletionTriggerInvoked:                  "Invoked",
	CompletionTriggerCharacter:                "TriggerCharacter",
	CompletionTriggerForIncompleteCompletions: "TriggerForIncompleteCompletions",
}

func (k CompletionTriggerKind) Valid() bool    { _, ok := completionTriggerKindNames[k]; return ok }
func (k CompletionTriggerKind) String() string { return intEnumName(completionTriggerKindNames, k) }

// CompletionTriggerKindFromValue validates and converts a wire value.
func CompletionTriggerKindFromValue(v int32) (CompletionTriggerKind, error) {
	return intEnumFromValue("CompletionTriggerKind", completionTriggerKindNames, CompletionTriggerKind(v))
}

// SignatureHelpTriggerKind reports how signature help was triggered.
type SignatureHelpTriggerKind int32

const (
	SignatureHelpTriggerInvoked       SignatureHelpTriggerKind = 1
	SignatureHelpTriggerCharacter     SignatureHelpTriggerKind = 2
	SignatureHelpTriggerContentChange SignatureHelpTriggerKind = 3
)

var signatureHelpTriggerKindNames = map[SignatureHelpTriggerKind]string{
	SignatureHelpTriggerInvoked:       "Invoked",
	SignatureHelpTriggerCharacter:     "TriggerCharacter",
	SignatureHelpTriggerContentChange: "ContentChange",
}

func (k SignatureHelpTriggerKind) Valid() bool {
	_, ok := signatureHelpTriggerKindNames[k]
	return ok
}
func (k SignatureHelpTriggerKind) String() string {
	return intEnumName(signatureHelpTriggerKindNames, k)
}

// SignatureHelpTriggerKindFromValue validates and converts a wire value.
func SignatureHelpTriggerKindFromValue(v int32) (SignatureHelpTriggerKind, error) {
	return intEnumFromValue("SignatureHelpTriggerKind", signatureHelpTriggerKindNames, SignatureHelpTriggerKind(v))
}

// CodeActionTriggerKind reports how a code action request was triggered.
type CodeActionTriggerKind int32

const (
	CodeActionTriggerInvoked   CodeActionTriggerKind = 1
	CodeActionTriggerAutomatic CodeActionTriggerKind = 2
)

var codeActionTriggerKindNames = map[CodeActionTriggerKind]string{
	CodeActionTriggerInvoked:   "Invoked",
	CodeActionTriggerAutomatic: "Automatic",
}

func (k CodeActionTriggerKind) Valid() bool    { _, ok := codeActionTriggerKindNames[k]; return ok }
func (k CodeActionTriggerKind) String() string { return intEnumName(codeActionTriggerKindNames, k) }

// CodeActionTriggerKindFromValue validates and converts a wire value.
func CodeActionTriggerKindFromValue(v int32) (CodeActionTriggerKind, error) {
	return intEnumFromValue("CodeActionTriggerKind", codeActionTriggerKindNames, CodeActionTriggerKind(v))
}

// DocumentHighlightKind classifies a document highlight.
type DocumentHighlightKind int32

const (
	DocumentHighlightText  DocumentHighlightKind = 1
	DocumentHighlightRead  DocumentHighlightKind = 2
	DocumentHighlightWrite DocumentHighlightKind = 3
)

var documentHighlightKindNames = map[DocumentHighlightKind]string{
	DocumentHighlightText:  "Text",
	DocumentHighlightRead:  "Read",
	DocumentHighlightWrite: "Write",
}

func (k DocumentHighlightKind) Valid() bool    { _, ok := documentHighlightKindNames[k]; return ok }
func (k DocumentHighlightKind) String() string { return intEnumName(documentHighlightKindNames, k) }

// DocumentHighlightKindFromValue validates and converts a wire value.
func DocumentHighlightKindFromValue(v int32) (DocumentHighlightKind, error) {
	return intEnumFromValue("DocumentHighlightKind", documentHighlightKindNames, DocumentHighlightKind(v))
}

// TextDocumentSyncKind defines how document changes are synced.
type TextDocumentSyncKind int32

const (
	SyncNone        TextDocumentSyncKind = 0
	SyncFull        TextDocumentSyncKind = 1
	SyncIncremental TextDocumentSyncKind = 2
)

var textDocumentSyncKindNames = map[TextDocumentSyncKind]string{
	SyncNone:        "None",
	SyncFull:        "Full",
	SyncIncremental: "Incremental",
}

func (k TextDocumentSyncKind) Valid() bool    { _, ok := textDocumentSyncKindNames[k]; return ok }
func (k TextDocumentSyncKind) String() string { return intEnumName(textDocumentSyncKindNames, k) }

// TextDocumentSyncKindFromValue validates and converts a wire value.
func TextDocumentSyncKindFromValue(v int32) (TextDocumentSyncKind, error) {
	return intEnumFromValue("TextDocumentSyncKind", textDocumentSyncKindNames, TextDocumentSyncKind(v))
}

// TextDocumentSaveReason reports why a document is being saved.
type TextDocumentSaveReason int32

const (
	SaveReasonManual     TextDocumentSaveReason = 1
	SaveReasonAfterDelay TextDocumentSaveReason = 2
	SaveReasonFocusOut   TextDocumentSaveReason = 3
)

var textDocumentSaveReasonNames = map[TextDocumentSaveReason]string{
	SaveReasonManual:     "Manual",
	SaveReasonAfterDelay: "AfterDelay",
	SaveReasonFocusOut:   "FocusOut",
}

func (r TextDocumentSaveReason) Valid() bool    { _, ok := textDocumentSaveReasonNames[r]; return ok }
func (r TextDocumentSaveReason) String() string { return intEnumName(textDocumentSaveReasonNames, r) }

// TextDocumentSaveReasonFromValue validates and converts a wire value.
func TextDocumentSaveReasonFromValue(v int32) (TextDocumentSaveReason, error) {
	return intEnumFromValue("TextDocumentSaveReason", textDocumentSaveReasonNames, TextDocumentSaveReason(v))
}

// MessageType classifies window/showMessage and window/logMessage payloads.
type MessageType int32

const (
	MessageError   MessageType = 1
	MessageWarning MessageType = 2
	MessageInfo    MessageType = 3
	MessageLog     MessageType = 4
)

var messageTypeNames = map[MessageType]string{
	MessageError:   "Error",
	MessageWarning: "Warning",
	MessageInfo:    "Info",
	MessageLog:     "Log",
}

func (t MessageType) Valid() bool    { _, ok := messageTypeNames[t]; return ok }
func (t MessageType) String() string { return intEnumName(messageTypeNames, t) }

// MessageTypeFromValue validates and converts a wire value.
func MessageTypeFromValue(v int32) (MessageType, error) {
	return intEnumFromValue("MessageType", messageTypeNames, MessageType(v))
}

// FileChangeType reports a watched-file event type.
type FileChangeType int32

const (
	FileCreated FileChangeType = 1
	FileChanged FileChangeType = 2
	FileDeleted FileChangeType = 3
)

var fileChangeTypeNames = map[FileChangeType]string{
	FileCreated: "Created",
	FileChanged: "Changed",
	FileDeleted: "Deleted",
}

func (t FileChangeType) Valid() bool    { _, ok := fileChangeTypeNames[t]; return ok }
func (t FileChangeType) String() string { return intEnumName(fileChangeTypeNames, t) }

// FileChangeTypeFromValue validates and converts a wire value.
func FileChangeTypeFromValue(v int32) (FileChangeType, error) {
	return intEnumFromValue("FileChangeType", fileChangeTypeNames, FileChangeType(v))
}

// WatchKind is a bit mask of the events a watcher is interested in.
type WatchKind int32

const (
	WatchCreate WatchKind = 1
	WatchChange WatchKind = 2
	WatchDelete WatchKind = 4
)

// Valid reports whether the mask uses only defined bits and is non-empty.
func (k WatchKind) Valid() bool {
	return k > 0 && k&^(WatchCreate|WatchChange|WatchDelete) == 0
}

// WatchKindFromValue validates and converts a wire value.
func WatchKindFromValue(v int32) (WatchKind, error) {
	k := WatchKind(v)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: WatchKind %d", ErrUnknownEnumValue, v)
	}
	return k, nil
}

// NotebookCellKind classifies notebook cells.
type NotebookCellKind int32

const (
	NotebookCellMarkup NotebookCellKind = 1
	NotebookCellCode   NotebookCellKind = 2
)

var notebookCellKindNames = map[NotebookCellKind]string{
	NotebookCellMarkup: "Markup",
	NotebookCellCode:   "Code",
}

func (k NotebookCellKind) Valid() bool    { _, ok := notebookCellKindNames[k]; return ok }
func (k NotebookCellKind) String() string { return intEnumName(notebookCellKindNames, k) }

// NotebookCellKindFromValue validates and converts a wire value.
func NotebookCellKindFromValue(v int32) (NotebookCellKind, error) {
	return intEnumFromValue("NotebookCellKind", notebookCellKindNames, NotebookCellKind(v))
}

// PrepareSupportDefaultBehavior describes default prepare-rename behavior.
type PrepareSupportDefaultBehavior int32

// PrepareDefaultIdentifier selects per-language identifier ranges.
const PrepareDefaultIdentifier PrepareSupportDefaultBehavior = 1

var prepareSupportDefaultBehaviorNames = map[PrepareSupportDefaultBehavior]string{
	PrepareDefaultIdentifier: "Identifier",
}

func (b PrepareSupportDefaultBehavior) Valid() bool {
	_, ok := prepareSupportDefaultBehaviorNames[b]
	return ok
}
func (b PrepareSupportDefaultBehavior) String() string {
	return intEnumName(prepareSupportDefaultBehaviorNames, b)
}

// PrepareSupportDefaultBehaviorFromValue validates and converts a wire value.
func PrepareSupportDefaultBehaviorFromValue(v int32) (PrepareSupportDefaultBehavior, error) {
	return intEnumFromValue("PrepareSupportDefaultBehavior", prepareSupportDefaultBehaviorNames, PrepareSupportDefaultBehavior(v))
}

// intEnumName returns the member name or a numeric fallback.
func intEnumName[E ~int32](names map[E]string, v E) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", int32(v))
}

func intEnumFromValue[E ~int32](enum string, names map[E]string, v E) (E, error) {
	if _, ok := names[v]; !ok {
		return 0, fmt.Errorf("%w: %s %d", ErrUnknownEnumValue, enum, int32(v))
	}
	return v, nil
}

// --- string enums ---

// MarkupKind describes a documentation content type.
type MarkupKind string

const (
	MarkupPlainText MarkupKind = "plaintext"
	MarkupMarkdown  MarkupKind = "markdown"
)

var markupKinds = stringEnumSet(MarkupPlainText, MarkupMarkdown)

func (k MarkupKind) Valid() bool { return markupKinds[string(k)] }

// ParseMarkupKind validates and converts a wire value.
func ParseMarkupKind(s string) (MarkupKind, error) {
	return stringEnumParse("MarkupKind", markupKinds, MarkupKind(s))
}

// PositionEncodingKind is the negotiated character-offset encoding.
type PositionEncodingKind string

const (
	PositionEncodingUTF8  PositionEncodingKind = "utf-8"
	PositionEncodingUTF16 PositionEncodingKind = "utf-16"
	PositionEncodingUTF32 PositionEncodingKind = "utf-32"
)

var positionEncodingKinds = stringEnumSet(PositionEncodingUTF8, PositionEncodingUTF16, PositionEncodingUTF32)

func (k PositionEncodingKind) Valid() bool { return positionEncodingKinds[string(k)] }

// ParsePositionEncodingKind validates and converts a wire value.
func ParsePositionEncodingKind(s string) (PositionEncodingKind, error) {
	return stringEnumParse("PositionEncodingKind", positionEncodingKinds, PositionEncodingKind(s))
}

// TraceValues controls the verbosity of $/logTrace notifications.
type TraceValues string

const (
	TraceOff      TraceValues = "off"
	TraceMessages TraceValues = "messages"
	TraceVerbose  TraceValues = "verbose"
)

var traceValues = stringEnumSet(TraceOff, TraceMessages, TraceVerbose)

func (t TraceValues) Valid() bool { return traceValues[string(t)] }

// ParseTraceValues validates and converts a wire value.
func ParseTraceValues(s string) (TraceValues, error) {
	return stringEnumParse("TraceValues", traceValues, TraceValues(s))
}

// CodeActionKind is the hierarchical kind of a code action.
type CodeActionKind string

const (
	CodeActionEmpty                 CodeActionKind = ""
	CodeActionQuickFix              CodeActionKind = "quickfix"
	CodeActionRefactor              CodeActionKind = "refactor"
	CodeActionRefactorExtract       CodeActionKind = "refactor.extract"
	CodeActionRefactorInline        CodeActionKind = "refactor.inline"
	CodeActionRefactorRewrite       CodeActionKind = "refactor.rewrite"
	CodeActionSource                CodeActionKind = "source"
	CodeActionSourceOrganizeImports CodeActionKind = "source.organizeImports"
	CodeActionSourceFixAll          CodeActionKind = "source.fixAll"
)

var codeActionKinds = stringEnumSet(
	CodeActionEmpty, CodeActionQuickFix, CodeActionRefactor,
	CodeActionRefactorExtract, CodeActionRefactorInline, CodeActionRefactorRewrite,
	CodeActionSource, CodeActionSourceOrganizeImports, CodeActionSourceFixAll,
)

func (k CodeActionKind) Valid() bool { return codeActionKinds[string(k)] }

// ParseCodeActionKind validates and converts a wire value.
func ParseCodeActionKind(s string) (CodeActionKind, error) {
	return stringEnumParse("CodeActionKind", codeActionKinds, CodeActionKind(s))
}

// FoldingRangeKind is a well-known folding range category.
type FoldingRangeKind string

const (
	FoldingRangeComment FoldingRangeKind = "comment"
	FoldingRangeImports FoldingRangeKind = "imports"
	FoldingRangeRegion  FoldingRangeKind = "region"
)

var foldingRangeKinds = stringEnumSet(FoldingRangeComment, FoldingRangeImports, FoldingRangeRegion)

func (k FoldingRangeKind) Valid() bool { return foldingRangeKinds[string(k)] }

// ParseFoldingRangeKind validates and converts a wire value.
func ParseFoldingRangeKind(s string) (FoldingRangeKind, error) {
	return stringEnumParse("FoldingRangeKind", foldingRangeKinds, FoldingRangeKind(s))
}

// TokenFormat is the semantic-token wire format.
type TokenFormat string

// TokenFormatRelative is the only format defined by 3.17.
const TokenFormatRelative TokenFormat = "relative"

var tokenFormats = stringEnumSet(TokenFormatRelative)

func (f TokenFormat) Valid() bool { return tokenFormats[string(f)] }

// ParseTokenFormat validates and converts a wire value.
func ParseTokenFormat(s string) (TokenFormat, error) {
	return stringEnumParse("TokenFormat", tokenFormats, TokenFormat(s))
}

// MonikerKind reports the direction of a moniker.
type MonikerKind string

const (
	MonikerImport MonikerKind = "import"
	MonikerExport MonikerKind = "export"
	MonikerLocal  MonikerKind = "local"
)

var monikerKinds = stringEnumSet(MonikerImport, MonikerExport, MonikerLocal)

func (k MonikerKind) Valid() bool { return monikerKinds[string(k)] }

// ParseMonikerKind validates and converts a wire value.
func ParseMonikerKind(s string) (MonikerKind, error) {
	return stringEnumParse("MonikerKind", monikerKinds, MonikerKind(s))
}

// UniquenessLevel reports the scope in which a moniker is unique.
type UniquenessLevel string

const (
	UniquenessDocument UniquenessLevel = "document"
	UniquenessProject  UniquenessLevel = "project"
	UniquenessGroup    UniquenessLevel = "group"
	UniquenessScheme   UniquenessLevel = "scheme"
	UniquenessGlobal   UniquenessLevel = "global"
)

var uniquenessLevels = stringEnumSet(
	UniquenessDocument, UniquenessProject, UniquenessGroup, UniquenessScheme, UniquenessGlobal,
)

func (l UniquenessLevel) Valid() bool { return uniquenessLevels[string(l)] }

// ParseUniquenessLevel validates and converts a wire value.
func ParseUniquenessLevel(s string) (UniquenessLevel, error) {
	return stringEnumParse("UniquenessLevel", uniquenessLevels, UniquenessLevel(s))
}

// ResourceOperationKind is a workspace-edit resource operation.
type ResourceOperationKind string

const (
	ResourceOperationCreate ResourceOperationKind = "create"
	ResourceOperationRename ResourceOperationKind = "rename"
	ResourceOperationDelete ResourceOperationKind = "delete"
)

var resourceOperationKinds = stringEnumSet(
	ResourceOperationCreate, ResourceOperationRename, ResourceOperationDelete,
)

func (k ResourceOperationKind) Valid() bool { return resourceOperationKinds[string(k)] }

// ParseResourceOperationKind validates and converts a wire value.
func ParseResourceOperationKind(s string) (ResourceOperationKind, error) {
	return stringEnumParse("ResourceOperationKind", resourceOperationKinds, ResourceOperationKind(s))
}

// FailureHandlingKind describes how the client handles edit failures.
type FailureHandlingKind string

const (
	FailureHandlingAbort                 FailureHandlingKind = "abort"
	FailureHandlingTransactional         FailureHandlingKind = "transactional"
	FailureHandlingTextOnlyTransactional FailureHandlingKind = "textOnlyTransactional"
	FailureHandlingUndo                  FailureHandlingKind = "undo"
)

var failureHandlingKinds = stringEnumSet(
	FailureHandlingAbort, FailureHandlingTransactional,
	FailureHandlingTextOnlyTransactional, FailureHandlingUndo,
)

func (k FailureHandlingKind) Valid() bool { return failureHandlingKinds[string(k)] }

// ParseFailureHandlingKind validates and converts a wire value.
func ParseFailureHandlingKind(s string) (FailureHandlingKind, error) {
	return stringEnumParse("FailureHandlingKind", failureHandlingKinds, FailureHandlingKind(s))
}

// DocumentDiagnosticReportKind discriminates pull-diagnostic reports.
type DocumentDiagnosticReportKind string

const (
	DiagnosticReportFull      DocumentDiagnosticReportKind = "full"
	DiagnosticReportUnchanged DocumentDiagnosticReportKind = "unchanged"
)

var documentDiagnosticReportKinds = stringEnumSet(DiagnosticReportFull, DiagnosticReportUnchanged)

func (k DocumentDiagnosticReportKind) Valid() bool {
	return documentDiagnosticReportKinds[string(k)]
}

// ParseDocumentDiagnosticReportKind validates and converts a wire value.
func ParseDocumentDiagnosticReportKind(s string) (DocumentDiagnosticReportKind, error) {
	return stringEnumParse("DocumentDiagnosticReportKind", documentDiagnosticReportKinds, DocumentDiagnosticReportKind(s))
}

// FileOperationPatternKind restricts a file-operation pattern to files or
// folders.
type FileOperationPatternKind string

const (
	FileOperationPatternFile   FileOperationPatternKind = "file"
	FileOperationPatternFolder FileOperationPatternKind = "folder"
)

var fileOperationPatternKinds = stringEnumSet(FileOperationPatternFile, FileOperationPatternFolder)

func (k FileOperationPatternKind) Valid() bool { return fileOperationPatternKinds[string(k)] }

// ParseFileOperationPatternKind validates and converts a wire value.
func ParseFileOperationPatternKind(s string) (FileOperationPatternKind, error) {
	return stringEnumParse("FileOperationPatternKind", fileOperationPatternKinds, FileOperationPatternKind(s))
}

func stringEnumSet[E ~string](members ...E) map[string]bool {
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[string(m)] = true
	}
	return set
}

func stringEnumParse[E ~string](enum string, set map[string]bool, v E) (E, error) {
	if !set[string(v)] {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, enum, string(v))
	}
	return v, nil
}
