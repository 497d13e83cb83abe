package protocol

import (
	"fmt"

	"github.com/dshills/lspcore/internal/anyval"
)

// --- completion ---

// CompletionParams are the parameters of textDocument/completion.
type CompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context *CompletionContext `json:"context,omitempty"`
}

// CompletionContext carries trigger information.
type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter *string               `json:"triggerCharacter,omitempty"`
}

// CompletionList is the result of textDocument/completion.
type CompletionList struct {
	IsIncomplete bool                    `json:"isIncomplete"`
	ItemDefaults *CompletionItemDefaults `json:"itemDefaults,omitempty"`
	Items        []CompletionItem        `json:"items"`
}

// CompletionItemDefaults factor shared item properties out of the list.
type CompletionItemDefaults struct {
	CommitCharacters []string          `json:"commitCharacters,omitempty"`
	EditRange        *Range            `json:"editRange,omitempty"`
	InsertTextFormat *InsertTextFormat `json:"insertTextFormat,omitempty"`
	InsertTextMode   *InsertTextMode   `json:"insertTextMode,omitempty"`
	Data             anyval.Value      `json:"data,omitempty"`
}

// CompletionItem is a single completion proposal.
type CompletionItem struct {
	Label               string                      `json:"label"`
	LabelDetails        *CompletionItemLabelDetails `json:"labelDetails,omitempty"`
	Kind                *CompletionItemKind         `json:"kind,omitempty"`
	Tags                []CompletionItemTag         `json:"tags,omitempty"`
	Detail              *string                     `json:"detail,omitempty"`
	Documentation       *Documentation              `json:"documentation,omitempty"`
	Deprecated          *bool                       `json:"deprecated,omitempty"`
	Preselect           *bool                       `json:"preselect,omitempty"`
	SortText            *string                     `json:"sortText,omitempty"`
	FilterText          *string                     `json:"filterText,omitempty"`
	InsertText          *string                     `json:"insertText,omitempty"`
	InsertTextFormat    *InsertTextFormat           `json:"insertTextFormat,omitempty"`
	InsertTextMode      *InsertTextMode             `json:"insertTextMode,omitempty"`
	TextEdit            *CompletionTextEdit         `json:"textEdit,omitempty"`
	TextEditText        *string                     `json:"textEditText,omitempty"`
	AdditionalTextEdits []TextEdit                  `json:"additionalTextEdits,omitempty"`
	CommitCharacters    []string                    `json:"commitCharacters,omitempty"`
	Command             *Command                    `json:"command,omitempty"`
	Data                anyval.Value                `json:"data,omitempty"`
}

// CompletionItemLabelDetails add detail text beside the label.
type CompletionItemLabelDetails struct {
	Detail      *string `json:"detail,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Documentation is a string-or-MarkupContent union. Discrimination:
// string wire value → Plain, object → Markup.
type Documentation struct {
	Plain  *string
	Markup *MarkupContent
}

// DecodeAny discriminates by value kind.
func (d *Documentation) DecodeAny(v anyval.Value) error {
	if s, ok := v.AsString(); ok {
		d.Plain = &s
		return nil
	}
	if v.Kind() == anyval.KindObject {
		kindVal, ok := v.Get("kind")
		if !ok {
			return fmt.Errorf("MarkupContent: missing required attribute kind")
		}
		kindS, ok := kindVal.AsString()
		if !ok {
			return fmt.Errorf("MarkupContent: kind: expected string, received %s", kindVal.Kind())
		}
		kind, err := ParseMarkupKind(kindS)
		if err != nil {
			return err
		}
		valVal, ok := v.Get("value")
		if !ok {
			return fmt.Errorf("MarkupContent: missing required attribute value")
		}
		valS, ok := valVal.AsString()
		if !ok {
			return fmt.Errorf("MarkupContent: value: expected string, received %s", valVal.Kind())
		}
		d.Markup = &MarkupContent{Kind: kind, Value: valS}
		return nil
	}
	return fmt.Errorf("Documentation: expected string or object, received %s", v.Kind())
}

// EncodeAny implements the inverse of DecodeAny.
func (d Documentation) EncodeAny() (anyval.Value, error) {
	switch {
	case d.Plain != nil:
		return anyval.String(*d.Plain), nil
	case d.Markup != nil:
		obj := anyval.NewObject()
		obj.Set("kind", anyval.String(string(d.Markup.Kind))) //nolint:errcheck
		obj.Set("value", anyval.String(d.Markup.Value))       //nolint:errcheck
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("Documentation: no variant set")
	}
}

// CompletionTextEdit is a TextEdit-or-InsertReplaceEdit union.
// Discrimination: a newText+range object → Edit; newText+insert+replace →
// InsertReplace.
type CompletionTextEdit struct {
	Edit          *TextEdit
	InsertReplace *InsertReplaceEdit
}

// InsertReplaceEdit offers separate insert and replace ranges.
type InsertReplaceEdit struct {
	NewText string `json:"newText"`
	Insert  Range  `json:"insert"`
	Replace Range  `json:"replace"`
}

// DecodeAny discriminates on presence of the insert key.
func (e *CompletionTextEdit) DecodeAny(v anyval.Value) error {
	if v.Kind() != anyval.KindObject {
		return fmt.Errorf("CompletionTextEdit: expected object, received %s", v.Kind())
	}
	newTextVal, ok := v.Get("newText")
	if !ok {
		return fmt.Errorf("CompletionTextEdit: missing required attribute newText")
	}
	newText, ok := newTextVal.AsString()
	if !ok {
		return fmt.Errorf("CompletionTextEdit: newText: expected string, received %s", newTextVal.Kind())
	}
	if insertVal, hasInsert := v.Get("insert"); hasInsert {
		replaceVal, ok := v.Get("replace")
		if !ok {
			return fmt.Errorf("InsertReplaceEdit: missing required attribute replace")
		}
		ire := &InsertReplaceEdit{NewText: newText}
		if err := decodeRange(insertVal, &ire.Insert); err != nil {
			return fmt.Errorf("InsertReplaceEdit: insert: %w", err)
		}
		if err := decodeRange(replaceVal, &ire.Replace); err != nil {
			return fmt.Errorf("InsertReplaceEdit: replace: %w", err)
		}
		e.InsertReplace = ire
		return nil
	}
	rangeVal, ok := v.Get("range")
	if !ok {
		return fmt.Errorf("TextEdit: missing required attribute range")
	}
	te := &TextEdit{NewText: newText}
	if err := decodeRange(rangeVal, &te.Range); err != nil {
		return fmt.Errorf("TextEdit: range: %w", err)
	}
	e.Edit = te
	return nil
}

// EncodeAny implements the inverse of DecodeAny.
func (e CompletionTextEdit) EncodeAny() (anyval.Value, error) {
	obj := anyval.NewObject()
	switch {
	case e.Edit != nil:
		obj.Set("range", encodeRange(e.Edit.Range))       //nolint:errcheck
		obj.Set("newText", anyval.String(e.Edit.NewText)) //nolint:errcheck
		return obj, nil
	case e.InsertReplace != nil:
		obj.Set("newText", anyval.String(e.InsertReplace.NewText)) //nolint:errcheck
		obj.Set("insert", encodeRange(e.InsertReplace.Insert))     //nolint:errcheck
		obj.Set("replace", encodeRange(e.InsertReplace.Replace))   //nolint:errcheck
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("CompletionTextEdit: no variant set")
	}
}

// --- hover ---

// HoverParams are the parameters of textDocument/hover.
type HoverParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// Hover is the result of textDocument/hover.
type Hover struct {
	Contents HoverContents `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// HoverContents is the MarkupContent | MarkedString | MarkedString[]
// union. Discrimination: array → Marked (list); object with a kind key →
// Markup; string or object with language key → Marked (single).
type HoverContents struct {
	Markup *MarkupContent
	Marked []MarkedString
}

// DecodeAny discriminates per the rule above.
func (h *HoverContents) DecodeAny(v anyval.Value) error {
	if arr, ok := v.AsArray(); ok {
		marked := make([]MarkedString, len(arr))
		for i, elem := range arr {
			if err := marked[i].DecodeAny(elem); err != nil {
				return fmt.Errorf("HoverContents[%d]: %w", i, err)
			}
		}
		h.Marked = marked
		return nil
	}
	if v.Kind() == anyval.KindObject && v.Has("kind") {
		var doc Documentation
		if err := doc.DecodeAny(v); err != nil {
			return err
		}
		h.Markup = doc.Markup
		return nil
	}
	var ms MarkedString
	if err := ms.DecodeAny(v); err != nil {
		return err
	}
	h.Marked = []MarkedString{ms}
	return nil
}

// EncodeAny implements the inverse of DecodeAny. A single Marked entry
// encodes as a bare MarkedString.
func (h HoverContents) EncodeAny() (anyval.Value, error) {
	switch {
	case h.Markup != nil:
		obj := anyval.NewObject()
		obj.Set("kind", anyval.String(string(h.Markup.Kind))) //nolint:errcheck
		obj.Set("value", anyval.String(h.Markup.Value))       //nolint:errcheck
		return obj, nil
	case len(h.Marked) == 1:
		return h.Marked[0].EncodeAny()
	case h.Marked != nil:
		arr := anyval.Array()
		for _, ms := range h.Marked {
			elem, err := ms.EncodeAny()
			if err != nil {
				return anyval.Value{}, err
			}
			arr, _ = arr.Append(elem)
		}
		return arr, nil
	default:
		return anyval.Value{}, fmt.Errorf("HoverContents: no variant set")
	}
}

// --- signature help ---

// SignatureHelpParams are the parameters of textDocument/signatureHelp.
type SignatureHelpParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	Context *SignatureHelpContext `json:"context,omitempty"`
}

// SignatureHelpContext carries trigger information.
type SignatureHelpContext struct {
	TriggerKind         SignatureHelpTriggerKind `json:"triggerKind"`
	TriggerCharacter    *string                  `json:"triggerCharacter,omitempty"`
	IsRetrigger         bool                     `json:"isRetrigger"`
	ActiveSignatureHelp *SignatureHelp           `json:"activeSignatureHelp,omitempty"`
}

// SignatureHelp is the result of textDocument/signatureHelp.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature *uint32                `json:"activeSignature,omitempty"`
	ActiveParameter *uint32                `json:"activeParameter,omitempty"`
}

// SignatureInformation describes one callable signature.
type SignatureInformation struct {
	Label           string                 `json:"label"`
	Documentation   *Documentation         `json:"documentation,omitempty"`
	Parameters      []ParameterInformation `json:"parameters,omitempty"`
	ActiveParameter *uint32                `json:"activeParameter,omitempty"`
}

// ParameterInformation describes one signature parameter.
type ParameterInformation struct {
	Label         ParameterLabel `json:"label"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

// ParameterLabel is a string-or-offset-pair union. Discrimination: string
// → Text, two-element array → Offsets.
type ParameterLabel struct {
	Text    *string
	Offsets *[2]uint32
}

// DecodeAny discriminates by value kind.
func (l *ParameterLabel) DecodeAny(v anyval.Value) error {
	if s, ok := v.AsString(); ok {
		l.Text = &s
		return nil
	}
	if arr, ok := v.AsArray(); ok {
		if len(arr) != 2 {
			return fmt.Errorf("ParameterInformation: label: expected [start, end], received %d elements", len(arr))
		}
		var offs [2]uint32
		for i, elem := range arr {
			u, ok := elem.AsUint()
			if !ok {
				iv, iok := elem.AsInt()
				if !iok || iv < 0 {
					return fmt.Errorf("ParameterInformation: label[%d]: expected unsigned integer, received %s", i, elem.Kind())
				}
				u = uint32(iv)
			}
			offs[i] = u
		}
		l.Offsets = &offs
		return nil
	}
	return fmt.Errorf("ParameterInformation: label: expected string or array, received %s", v.Kind())
}

// EncodeAny implements the inverse of DecodeAny.
func (l ParameterLabel) EncodeAny() (anyval.Value, error) {
	switch {
	case l.Text != nil:
		return anyval.String(*l.Text), nil
	case l.Offsets != nil:
		return anyval.Array(anyval.Uint(l.Offsets[0]), anyval.Uint(l.Offsets[1])), nil
	default:
		return anyval.Value{}, fmt.Errorf("ParameterLabel: no variant set")
	}
}

// --- navigation ---

// DeclarationParams are the parameters of textDocument/declaration.
type DeclarationParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// DefinitionParams are the parameters of textDocument/definition.
type DefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// TypeDefinitionParams are the parameters of textDocument/typeDefinition.
type TypeDefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// ImplementationParams are the parameters of textDocument/implementation.
type ImplementationParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// ReferenceParams are the parameters of textDocument/references.
type ReferenceParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context ReferenceContext `json:"context"`
}

// ReferenceContext controls declaration inclusion.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// DocumentHighlightParams are the parameters of
// textDocument/documentHighlight.
type DocumentHighlightParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// DocumentHighlight is one highlighted occurrence.
type DocumentHighlight struct {
	Range Range                  `json:"range"`
	Kind  *DocumentHighlightKind `json:"kind,omitempty"`
}

// --- symbols ---

// DocumentSymbolParams are the parameters of textDocument/documentSymbol.
type DocumentSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentSymbol is a hierarchical symbol; Children may recurse.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         *string          `json:"detail,omitempty"`
	Kind           SymbolKind       `json:"kind"`
	Tags           []SymbolTag      `json:"tags,omitempty"`
	Deprecated     *bool            `json:"deprecated,omitempty"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// SymbolInformation is the flat symbol representation.
type SymbolInformation struct {
	Name          string      `json:"name"`
	Kind          SymbolKind  `json:"kind"`
	Tags          []SymbolTag `json:"tags,omitempty"`
	Deprecated    *bool       `json:"deprecated,omitempty"`
	Location      Location    `json:"location"`
	ContainerName *string     `json:"containerName,omitempty"`
}

// WorkspaceSymbolParams are the parameters of workspace/symbol.
type WorkspaceSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Query string `json:"query"`
}

// WorkspaceSymbol is the 3.17 workspace symbol shape with a lazily
// resolvable location.
type WorkspaceSymbol struct {
	Name          string                  `json:"name"`
	Kind          SymbolKind              `json:"kind"`
	Tags          []SymbolTag             `json:"tags,omitempty"`
	ContainerName *string                 `json:"containerName,omitempty"`
	Location      WorkspaceSymbolLocation `json:"location"`
	Data          anyval.Value            `json:"data,omitempty"`
}

// WorkspaceSymbolLocation is a Location-or-URI-only union.
// Discrimination: presence of the range key.
type WorkspaceSymbolLocation struct {
	Location *Location
	URIOnly  *TextDocumentIdentifier
}

// DecodeAny discriminates on presence of the range key.
func (l *WorkspaceSymbolLocation) DecodeAny(v anyval.Value) error {
	if v.Kind() != anyval.KindObject {
		return fmt.Errorf("WorkspaceSymbol: location: expected object, received %s", v.Kind())
	}
	uriVal, ok := v.Get("uri")
	if !ok {
		return fmt.Errorf("WorkspaceSymbol: location: missing required attribute uri")
	}
	uri, ok := uriVal.AsString()
	if !ok {
		return fmt.Errorf("WorkspaceSymbol: location: uri: expected string, received %s", uriVal.Kind())
	}
	if rangeVal, hasRange := v.Get("range"); hasRange {
		loc := &Location{URI: DocumentURI(uri)}
		if err := decodeRange(rangeVal, &loc.Range); err != nil {
			return err
		}
		l.Location = loc
		return nil
	}
	l.URIOnly = &TextDocumentIdentifier{URI: DocumentURI(uri)}
	return nil
}

// EncodeAny implements the inverse of DecodeAny.
func (l WorkspaceSymbolLocation) EncodeAny() (anyval.Value, error) {
	obj := anyval.NewObject()
	switch {
	case l.Location != nil:
		obj.Set("uri", anyval.String(string(l.Location.URI))) //nolint:errcheck
		obj.Set("range", encodeRange(l.Location.Range))       //nolint:errcheck
		return obj, nil
	case l.URIOnly != nil:
		obj.Set("uri", anyval.String(string(l.URIOnly.URI))) //nolint:errcheck
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("WorkspaceSymbolLocation: no variant set")
	}
}

// --- code action / code lens / document link ---

// CodeActionParams are the parameters of textDocument/codeAction.
type CodeActionParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeActionContext carries the diagnostics and requested kinds.
type CodeActionContext struct {
	Diagnostics []Diagnostic           `json:"diagnostics"`
	Only        []CodeActionKind       `json:"only,omitempty"`
	TriggerKind *CodeActionTriggerKind `json:"triggerKind,omitempty"`
}

// CodeAction is a returned action or quick fix.
type CodeAction struct {
	Title       string              `json:"title"`
	Kind        *CodeActionKind     `json:"kind,omitempty"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty"`
	IsPreferred *bool               `json:"isPreferred,omitempty"`
	Disabled    *CodeActionDisabled `json:"disabled,omitempty"`
	Edit        *WorkspaceEdit      `json:"edit,omitempty"`
	Command     *Command            `json:"command,omitempty"`
	Data        anyval.Value        `json:"data,omitempty"`
}

// CodeActionDisabled explains why an action cannot run.
type CodeActionDisabled struct {
	Reason string `json:"reason"`
}

// CodeLensParams are the parameters of textDocument/codeLens.
type CodeLensParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// CodeLens is a command rendered beside source.
type CodeLens struct {
	Range   Range        `json:"range"`
	Command *Command     `json:"command,omitempty"`
	Data    anyval.Value `json:"data,omitempty"`
}

// DocumentLinkParams are the parameters of textDocument/documentLink.
type DocumentLinkParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentLink is a clickable range in a document.
type DocumentLink struct {
	Range   Range        `json:"range"`
	Target  *URI         `json:"target,omitempty"`
	Tooltip *string      `json:"tooltip,omitempty"`
	Data    anyval.Value `json:"data,omitempty"`
}

// --- color ---

// DocumentColorParams are the parameters of textDocument/documentColor.
type DocumentColorParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// Color is an RGBA color; components are in [0, 1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// ColorInformation pairs a color with its document range.
type ColorInformation struct {
	Range Range `json:"range"`
	Color Color `json:"color"`
}

// ColorPresentationParams are the parameters of
// textDocument/colorPresentation.
type ColorPresentationParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Color        Color                  `json:"color"`
	Range        Range                  `json:"range"`
}

// ColorPresentation is one way to serialize a color.
type ColorPresentation struct {
	Label               string     `json:"label"`
	TextEdit            *TextEdit  `json:"textEdit,omitempty"`
	AdditionalTextEdits []TextEdit `json:"additionalTextEdits,omitempty"`
}

// --- formatting ---

// FormattingOptions are editor formatting settings. Keys beyond the
// fields below are not kept: the codec ignores them on decode.
type FormattingOptions struct {
	TabSize                uint32 `json:"tabSize"`
	InsertSpaces           bool   `json:"insertSpaces"`
	TrimTrailingWhitespace *bool  `json:"trimTrailingWhitespace,omitempty"`
	InsertFinalNewline     *bool  `json:"insertFinalNewline,omitempty"`
	TrimFinalNewlines      *bool  `json:"trimFinalNewlines,omitempty"`
}

// DocumentFormattingParams are the parameters of textDocument/formatting.
type DocumentFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
}

// DocumentRangeFormattingParams are the parameters of
// textDocument/rangeFormatting.
type DocumentRangeFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Options      FormattingOptions      `json:"options"`
}

// DocumentRangesFormattingParams are the parameters of
// textDocument/rangesFormatting.
type DocumentRangesFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Ranges       []Range                `json:"ranges"`
	Options      FormattingOptions      `json:"options"`
}

// DocumentOnTypeFormattingParams are the parameters of
// textDocument/onTypeFormatting.
type DocumentOnTypeFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
	Ch           string                 `json:"ch"`
	Options      FormattingOptions      `json:"options"`
}

// --- rename ---

// RenameParams are the parameters of textDocument/rename.
type RenameParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
	NewName      string                 `json:"newName"`
}

// PrepareRenameParams are the parameters of textDocument/prepareRename.
type PrepareRenameParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// PrepareRenameResult is the Range | {range, placeholder} |
// {defaultBehavior} union. Discrimination: start key → Range; placeholder
// key → Placeholder; defaultBehavior key → DefaultBehavior.
type PrepareRenameResult struct {
	Range           *Range
	Placeholder     *RenamePlaceholder
	DefaultBehavior *RenameDefaultBehavior
}

// RenamePlaceholder pairs the rename range with its placeholder text.
type RenamePlaceholder struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

// RenameDefaultBehavior defers the range to the client.
type RenameDefaultBehavior struct {
	DefaultBehavior bool `json:"defaultBehavior"`
}

// DecodeAny discriminates per the rule above.
func (r *PrepareRenameResult) DecodeAny(v anyval.Value) error {
	if v.Kind() != anyval.KindObject {
		return fmt.Errorf("PrepareRenameResult: expected object, received %s", v.Kind())
	}
	switch {
	case v.Has("placeholder"):
		rangeVal, ok := v.Get("range")
		if !ok {
			return fmt.Errorf("PrepareRenameResult: missing required attribute range")
		}
		ph := &RenamePlaceholder{}
		if err := decodeRange(rangeVal, &ph.Range); err != nil {
			return err
		}
		phVal, _ := v.Get("placeholder")
		s, ok := phVal.AsString()
		if !ok {
			return fmt.Errorf("PrepareRenameResult: placeholder: expected string, received %s", phVal.Kind())
		}
		ph.Placeholder = s
		r.Placeholder = ph
		return nil
	case v.Has("defaultBehavior"):
		dbVal, _ := v.Get("defaultBehavior")
		b, ok := dbVal.AsBool()
		if !ok {
			return fmt.Errorf("PrepareRenameResult: defaultBehavior: expected boolean, received %s", dbVal.Kind())
		}
		r.DefaultBehavior = &RenameDefaultBehavior{DefaultBehavior: b}
		return nil
	case v.Has("start"):
		var rng Range
		if err := decodeRange(v, &rng); err != nil {
			return err
		}
		r.Range = &rng
		return nil
	default:
		return fmt.Errorf("PrepareRenameResult: unrecognized variant")
	}
}

// EncodeAny implements the inverse of DecodeAny.
func (r PrepareRenameResult) EncodeAny() (anyval.Value, error) {
	switch {
	case r.Range != nil:
		return encodeRange(*r.Range), nil
	case r.Placeholder != nil:
		obj := anyval.NewObject()
		obj.Set("range", encodeRange(r.Placeholder.Range))               //nolint:errcheck
		obj.Set("placeholder", anyval.String(r.Placeholder.Placeholder)) //nolint:errcheck
		return obj, nil
	case r.DefaultBehavior != nil:
		obj := anyval.NewObject()
		obj.Set("defaultBehavior", anyval.Bool(r.DefaultBehavior.DefaultBehavior)) //nolint:errcheck
		return obj, nil
	default:
		return anyval.Value{}, fmt.Errorf("PrepareRenameResult: no variant set")
	}
}

// --- folding / selection / linked editing ---

// FoldingRangeParams are the parameters of textDocument/foldingRange.
type FoldingRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// FoldingRange is one foldable region.
type FoldingRange struct {
	StartLine      uint32            `json:"startLine"`
	StartCharacter *uint32           `json:"startCharacter,omitempty"`
	EndLine        uint32            `json:"endLine"`
	EndCharacter   *uint32           `json:"endCharacter,omitempty"`
	Kind           *FoldingRangeKind `json:"kind,omitempty"`
	CollapsedText  *string           `json:"collapsedText,omitempty"`
}

// SelectionRangeParams are the parameters of textDocument/selectionRange.
type SelectionRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Positions    []Position             `json:"positions"`
}

// SelectionRange is a range with an optional enclosing parent.
type SelectionRange struct {
	Range  Range           `json:"range"`
	Parent *SelectionRange `json:"parent,omitempty"`
}

// LinkedEditingRangeParams are the parameters of
// textDocument/linkedEditingRange.
type LinkedEditingRangeParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// LinkedEditingRanges is the result of textDocument/linkedEditingRange.
type LinkedEditingRanges struct {
	Ranges      []Range `json:"ranges"`
	WordPattern *string `json:"wordPattern,omitempty"`
}

// --- moniker ---

// MonikerParams are the parameters of textDocument/moniker.
type MonikerParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// Moniker is a stable symbol identifier across indexes.
type Moniker struct {
	Scheme     string          `json:"scheme"`
	Identifier string          `json:"identifier"`
	Unique     UniquenessLevel `json:"unique"`
	Kind       *MonikerKind    `json:"kind,omitempty"`
}

// --- inlay hints / inline values / inline completion ---

// InlayHintParams are the parameters of textDocument/inlayHint.
type InlayHintParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// InlayHint is one inline annotation.
type InlayHint struct {
	Position     Position       `json:"position"`
	Label        InlayHintLabel `json:"label"`
	Kind         *InlayHintKind `json:"kind,omitempty"`
	TextEdits    []TextEdit     `json:"textEdits,omitempty"`
	Tooltip      *Documentation `json:"tooltip,omitempty"`
	PaddingLeft  *bool          `json:"paddingLeft,omitempty"`
	PaddingRight *bool          `json:"paddingRight,omitempty"`
	Data         anyval.Value   `json:"data,omitempty"`
}

// InlayHintKind classifies an inlay hint.
type InlayHintKind int32

const (
	InlayHintType      InlayHintKind = 1
	InlayHintParameter InlayHintKind = 2
)

var inlayHintKindNames = map[InlayHintKind]string{
	InlayHintType:      "Type",
	InlayHintParameter: "Parameter",
}

func (k InlayHintKind) Valid() bool    { _, ok := inlayHintKindNames[k]; return ok }
func (k InlayHintKind) String() string { return intEnumName(inlayHintKindNames, k) }

// InlayHintKindFromValue validates and converts a wire value.
func InlayHintKindFromValue(v int32) (InlayHintKind, error) {
	return intEnumFromValue("InlayHintKind", inlayHintKindNames, InlayHintKind(v))
}

// InlayHintLabel is a string-or-parts union. Discrimination: string →
// Text, array → Parts.
type InlayHintLabel struct {
	Text  *string
	Parts []InlayHintLabelPart
}

// InlayHintLabelPart is one interactive label segment.
type InlayHintLabelPart struct {
	Value    string         `json:"value"`
	Tooltip  *Documentation `json:"tooltip,omitempty"`
	Location *Location      `json:"location,omitempty"`
	Command  *Command       `json:"command,omitempty"`
}

// InlineValueParams are the parameters of textDocument/inlineValue.
type InlineValueParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      InlineValueContext     `json:"context"`
}

// InlineValueContext carries the active stack frame.
type InlineValueContext struct {
	FrameID         int32 `json:"frameId"`
	StoppedLocation Range `json:"stoppedLocation"`
}

// InlineValueText is a literal inline value.
type InlineValueText struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

// InlineValueVariableLookup asks the client to look up a variable.
type InlineValueVariableLookup struct {
	Range               Range   `json:"range"`
	VariableName        *string `json:"variableName,omitempty"`
	CaseSensitiveLookup bool    `json:"caseSensitiveLookup"`
}

// InlineValueEvaluatableExpression asks the client to evaluate text.
type InlineValueEvaluatableExpression struct {
	Range      Range   `json:"range"`
	Expression *string `json:"expression,omitempty"`
}

// InlineValue is the text | variable-lookup | evaluatable-expression
// union. Discrimination: text key → Text; caseSensitiveLookup key →
// Variable; otherwise → Expression.
type InlineValue struct {
	Text       *InlineValueText
	Variable   *InlineValueVariableLookup
	Expression *InlineValueEvaluatableExpression
}

// InlineCompletionParams are the parameters of
// textDocument/inlineCompletion.
type InlineCompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	Context InlineCompletionContext `json:"context"`
}

// InlineCompletionContext carries trigger information.
type InlineCompletionContext struct {
	TriggerKind            InlineCompletionTriggerKind `json:"triggerKind"`
	SelectedCompletionInfo *SelectedCompletionInfo     `json:"selectedCompletionInfo,omitempty"`
}

// InlineCompletionTriggerKind reports how inline completion was triggered.
type InlineCompletionTriggerKind int32

const (
	InlineCompletionInvoked   InlineCompletionTriggerKind = 1
	InlineCompletionAutomatic InlineCompletionTriggerKind = 2
)

var inlineCompletionTriggerKindNames = map[InlineCompletionTriggerKind]string{
	InlineCompletionInvoked:   "Invoked",
	InlineCompletionAutomatic: "Automatic",
}

func (k InlineCompletionTriggerKind) Valid() bool {
	_, ok := inlineCompletionTriggerKindNames[k]
	return ok
}
func (k InlineCompletionTriggerKind) String() string {
	return intEnumName(inlineCompletionTriggerKindNames, k)
}

// InlineCompletionTriggerKindFromValue validates and converts a wire value.
func InlineCompletionTriggerKindFromValue(v int32) (InlineCompletionTriggerKind, error) {
	return intEnumFromValue("InlineCompletionTriggerKind", inlineCompletionTriggerKindNames, InlineCompletionTriggerKind(v))
}

// SelectedCompletionInfo describes the currently selected popup item.
type SelectedCompletionInfo struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

// InlineCompletionList is the result of textDocument/inlineCompletion.
type InlineCompletionList struct {
	Items []InlineCompletionItem `json:"items"`
}

// InlineCompletionItem is one inline completion proposal.
type InlineCompletionItem struct {
	InsertText string   `json:"insertText"`
	FilterText *string  `json:"filterText,omitempty"`
	Range      *Range   `json:"range,omitempty"`
	Command    *Command `json:"command,omitempty"`
}

// --- call hierarchy / type hierarchy ---

// CallHierarchyPrepareParams are the parameters of
// textDocument/prepareCallHierarchy.
type CallHierarchyPrepareParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// CallHierarchyItem identifies a callable for hierarchy navigation.
type CallHierarchyItem struct {
	Name           string       `json:"name"`
	Kind           SymbolKind   `json:"kind"`
	Tags           []SymbolTag  `json:"tags,omitempty"`
	Detail         *string      `json:"detail,omitempty"`
	URI            DocumentURI  `json:"uri"`
	Range          Range        `json:"range"`
	SelectionRange Range        `json:"selectionRange"`
	Data           anyval.Value `json:"data,omitempty"`
}

// CallHierarchyIncomingCallsParams are the parameters of
// callHierarchy/incomingCalls.
type CallHierarchyIncomingCallsParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Item CallHierarchyItem `json:"item"`
}

// CallHierarchyIncomingCall is one caller of the item.
type CallHierarchyIncomingCall struct {
	From       CallHierarchyItem `json:"from"`
	FromRanges []Range           `json:"fromRanges"`
}

// CallHierarchyOutgoingCallsParams are the parameters of
// callHierarchy/outgoingCalls.
type CallHierarchyOutgoingCallsParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Item CallHierarchyItem `json:"item"`
}

// CallHierarchyOutgoingCall is one callee of the item.
type CallHierarchyOutgoingCall struct {
	To         CallHierarchyItem `json:"to"`
	FromRanges []Range           `json:"fromRanges"`
}

// TypeHierarchyPrepareParams are the parameters of
// textDocument/prepareTypeHierarchy.
type TypeHierarchyPrepareParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// TypeHierarchyItem identifies a type for hierarchy navigation.
type TypeHierarchyItem struct {
	Name           string       `json:"name"`
	Kind           SymbolKind   `json:"kind"`
	Tags           []SymbolTag  `json:"tags,omitempty"`
	Detail         *string      `json:"detail,omitempty"`
	URI            DocumentURI  `json:"uri"`
	Range          Range        `json:"range"`
	SelectionRange Range        `json:"selectionRange"`
	Data           anyval.Value `json:"data,omitempty"`
}

// TypeHierarchySupertypesParams are the parameters of
// typeHierarchy/supertypes.
type TypeHierarchySupertypesParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Item TypeHierarchyItem `json:"item"`
}

// TypeHierarchySubtypesParams are the parameters of
// typeHierarchy/subtypes.
type TypeHierarchySubtypesParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Item TypeHierarchyItem `json:"item"`
}

// --- semantic tokens ---

// SemanticTokensLegend maps token indices to names.
type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

// SemanticTokensParams are the parameters of
// textDocument/semanticTokens/full.
type SemanticTokensParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// SemanticTokens is the encoded token stream.
type SemanticTokens struct {
	ResultID *string  `json:"resultId,omitempty"`
	Data     []uint32 `json:"data"`
}

// SemanticTokensDeltaParams are the parameters of
// textDocument/semanticTokens/full/delta.
type SemanticTokensDeltaParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument     TextDocumentIdentifier `json:"textDocument"`
	PreviousResultID string                 `json:"previousResultId"`
}

// SemanticTokensDelta is the edit-based delta result.
type SemanticTokensDelta struct {
	ResultID *string              `json:"resultId,omitempty"`
	Edits    []SemanticTokensEdit `json:"edits"`
}

// SemanticTokensEdit is one splice of the token data array.
type SemanticTokensEdit struct {
	Start       uint32   `json:"start"`
	DeleteCount uint32   `json:"deleteCount"`
	Data        []uint32 `json:"data,omitempty"`
}

// SemanticTokensRangeParams are the parameters of
// textDocument/semanticTokens/range.
type SemanticTokensRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}
