package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldType enumerates the kinds of form fields a mission module can carry.
// Header and info fields are display-only and never hold answer data.
type FieldType string

const (
	FieldTypeHeader   FieldType = "header"
	FieldTypeInfo     FieldType = "info"
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeFile     FieldType = "file"
)

// IsInput reports whether the field collects an answer.
func (t FieldType) IsInput() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox, FieldTypeFile:
		return true
	default:
		return false
	}
}

// FormField describes one entry of a module form. Display fields carry Text;
// input fields carry Label/Placeholder and, for choice fields, Options.
// AITask/AIPrompt are opaque passthrough data used only when requesting
// mentor feedback.
type FormField struct {
	ID            string    `json:"id"`
	Type          FieldType `json:"type"`
	Label         string    `json:"label,omitempty"`
	Placeholder   string    `json:"placeholder,omitempty"`
	Text          string    `json:"text,omitempty"`
	Options       []string  `json:"options,omitempty"`
	OptionsSource string    `json:"optionsSource,omitempty"`
	Optional      bool      `json:"optional,omitempty"`
	AITask        string    `json:"aiTask,omitempty"`
	AIPrompt      string    `json:"aiPrompt,omitempty"`
}

// ModuleDefinition is one stage of the project journey. IDs are positive and
// define ordering: modules are always processed by ascending ID.
type ModuleDefinition struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Fields      []FormField `json:"content"`
}

// FileStatus marks whether an evidence file has been durably stored.
// A pending file was selected on the student's device but never uploaded;
// it must not be treated as uploaded anywhere.
type FileStatus string

const (
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusPending  FileStatus = "pending"
)

// StoredFile is the durable descriptor for an evidence artifact.
type StoredFile struct {
	Name     string     `json:"name"`
	URL      string     `json:"url,omitempty"`
	MimeType string     `json:"mimeType,omitempty"`
	Size     int64      `json:"size,omitempty"`
	Status   FileStatus `json:"status"`
}

// LocalFile is a transient in-memory file handle the student selected but
// has not uploaded. It only exists pre-sanitization and is never persisted.
type LocalFile struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// FieldValueKind discriminates the shapes a module answer can take.
type FieldValueKind string

const (
	FieldValueAbsent    FieldValueKind = "ABSENT"
	FieldValueText      FieldValueKind = "TEXT"
	FieldValueList      FieldValueKind = "LIST"
	FieldValueFile      FieldValueKind = "FILE"
	FieldValueLocalFile FieldValueKind = "LOCAL_FILE"
	FieldValueUnknown   FieldValueKind = "UNKNOWN"
)

// FieldValue is the tagged union of per-field answers: plain text, checkbox
// selections, a stored-file descriptor, a transient local file handle, or an
// unknown shape preserved verbatim so data is never dropped silently.
type FieldValue struct {
	Kind  FieldValueKind
	Text  string
	List  []string
	File  *StoredFile
	Local *LocalFile
	Raw   json.RawMessage
}

// TextValue builds a text answer.
func TextValue(text string) FieldValue {
	return FieldValue{Kind: FieldValueText, Text: text}
}

// ListValue builds a checkbox-selection answer.
func ListValue(items ...string) FieldValue {
	return FieldValue{Kind: FieldValueList, List: items}
}

// FileValue builds a stored-file answer.
func FileValue(file StoredFile) FieldValue {
	return FieldValue{Kind: FieldValueFile, File: &file}
}

// LocalFileValue builds a transient local-file answer.
func LocalFileValue(file LocalFile) FieldValue {
	return FieldValue{Kind: FieldValueLocalFile, Local: &file}
}

// MarshalJSON writes the wire shape the review screens consume: strings,
// string arrays and file objects, with unknown payloads emitted verbatim.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case FieldValueText:
		return json.Marshal(v.Text)
	case FieldValueList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	case FieldValueFile:
		return json.Marshal(v.File)
	case FieldValueLocalFile:
		return json.Marshal(v.Local)
	case FieldValueUnknown:
		if len(v.Raw) == 0 {
			return []byte("null"), nil
		}
		return v.Raw, nil
	case FieldValueAbsent, "":
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unsupported field value kind %q", v.Kind)
	}
}

// UnmarshalJSON classifies the loose wire shapes into the tagged union.
// A JSON object with a file status is a StoredFile; a file-like object
// without one is a transient local handle that sanitization will resolve.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = FieldValue{Kind: FieldValueAbsent}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*v = FieldValue{Kind: FieldValueText, Text: text}
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err == nil {
			*v = FieldValue{Kind: FieldValueList, List: list}
			return nil
		}
		*v = FieldValue{Kind: FieldValueUnknown, Raw: append(json.RawMessage(nil), trimmed...)}
		return nil
	case '{':
		var probe struct {
			Name   *string `json:"name"`
			Status *string `json:"status"`
		}
		if err := json.Unmarshal(trimmed, &probe); err == nil && probe.Name != nil {
			if probe.Status != nil {
				var file StoredFile
				if err := json.Unmarshal(trimmed, &file); err != nil {
					return err
				}
				*v = FieldValue{Kind: FieldValueFile, File: &file}
				return nil
			}
			var local LocalFile
			if err := json.Unmarshal(trimmed, &local); err != nil {
				return err
			}
			*v = FieldValue{Kind: FieldValueLocalFile, Local: &local}
			return nil
		}
		*v = FieldValue{Kind: FieldValueUnknown, Raw: append(json.RawMessage(nil), trimmed...)}
		return nil
	default:
		*v = FieldValue{Kind: FieldValueUnknown, Raw: append(json.RawMessage(nil), trimmed...)}
		return nil
	}
}

// ModuleData maps field IDs (plus synthetic AI-feedback keys) to answers.
type ModuleData map[string]FieldValue

// AIFeedbackKey derives the synthetic key storing mentor feedback attached
// to a field's answer.
func AIFeedbackKey(fieldID string) string {
	return fieldID + "__aiFeedback"
}

// SanitizeModuleData normalizes answers into a durable shape before
// persistence. Transient local file handles become pending StoredFile
// descriptors with no URL; everything else passes through unchanged, so the
// function is idempotent and total.
func SanitizeModuleData(raw ModuleData) ModuleData {
	if raw == nil {
		return nil
	}
	sanitized := make(ModuleData, len(raw))
	for key, value := range raw {
		if value.Kind == FieldValueLocalFile && value.Local != nil {
			sanitized[key] = FileValue(StoredFile{
				Name:     value.Local.Name,
				MimeType: value.Local.MimeType,
				Size:     value.Local.Size,
				Status:   FileStatusPending,
			})
			continue
		}
		sanitized[key] = value
	}
	return sanitized
}

// Clone returns a deep copy so transition functions never share buckets
// with their inputs.
func (d ModuleData) Clone() ModuleData {
	if d == nil {
		return nil
	}
	out := make(ModuleData, len(d))
	for key, value := range d {
		out[key] = value.clone()
	}
	return out
}

func (v FieldValue) clone() FieldValue {
	out := v
	if v.List != nil {
		out.List = append([]string(nil), v.List...)
	}
	if v.File != nil {
		file := *v.File
		out.File = &file
	}
	if v.Local != nil {
		local := *v.Local
		out.Local = &local
	}
	if v.Raw != nil {
		out.Raw = append(json.RawMessage(nil), v.Raw...)
	}
	return out
}
