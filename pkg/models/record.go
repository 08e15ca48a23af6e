package models

// FieldError is a single validation error attached to a field, as supplied
// by the host (typically from a failed server-side submission).
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormRecord is one sub-form entry in a panel.
//
// ID doubles as the record's index into CollectionState.Forms. It is
// assigned once, when the record is created, and is never reused or
// renumbered — not even after deletion. Display order is carried by
// Position instead.
type FormRecord struct {
	ID int `json:"id"`

	// InstanceAsStr is the host's string representation of the linked
	// object, used as a header fallback when no custom header is set.
	InstanceAsStr string `json:"instanceAsStr,omitempty"`

	IsEditing  bool `json:"isEditing"`
	IsNew      bool `json:"isNew"`
	IsDeleted  bool `json:"isDeleted"`
	HasChanged bool `json:"hasChanged"`

	// Position is the 1-based rank of the record among all records in the
	// panel, deleted ones included.
	Position int `json:"position"`

	// Depth is the 1-based nesting level in nested panels. Zero means the
	// panel is flat and depth is not tracked.
	Depth int `json:"depth,omitempty"`

	// ForceFormRender forces the form fragment to be materialized even
	// when the record is not being edited, changed or deleted. The host
	// sets this to redisplay pre-existing validation errors.
	ForceFormRender bool `json:"forceFormRender,omitempty"`

	// Fields maps field names to their current string values.
	Fields map[string]string `json:"fields"`

	// Extra carries auxiliary rendering metadata per field, such as the
	// title of a chosen page or the preview of a chosen image. It is not
	// editable through the panel.
	Extra map[string]any `json:"extra"`

	// Errors maps field names to their validation errors, in display order.
	Errors map[string][]FieldError `json:"errors,omitempty"`
}

// CollectionState is the whole panel state.
//
// Forms is append-only and identity-indexed: Forms[i].ID == i holds at all
// times. Records are never reordered or compacted; deletion flips IsDeleted
// and ordering lives in each record's Position.
type CollectionState struct {
	Forms     []FormRecord `json:"forms"`
	EmptyForm FormRecord   `json:"emptyForm"`
}

// HasErrors reports whether any field on the record carries errors.
func (r FormRecord) HasErrors() bool {
	for _, errs := range r.Errors {
		if len(errs) > 0 {
			return true
		}
	}
	return false
}

// NeedsFormRender reports whether the record's form fragment must exist in
// the document. Edited, changed and deleted records keep their fragments so
// the host's field extraction still finds every field on submission.
func (r FormRecord) NeedsFormRender(canEdit bool) bool {
	return canEdit && (r.IsEditing || r.HasChanged || r.IsDeleted || r.ForceFormRender)
}

// Clone returns a deep copy of the record. The copy shares no maps or
// slices with the receiver.
func (r FormRecord) Clone() FormRecord {
	out := r
	if r.Fields != nil {
		out.Fields = make(map[string]string, len(r.Fields))
		for k, v := range r.Fields {
			out.Fields[k] = v
		}
	}
	if r.Extra != nil {
		out.Extra = make(map[string]any, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = cloneValue(v)
		}
	}
	if r.Errors != nil {
		out.Errors = make(map[string][]FieldError, len(r.Errors))
		for k, v := range r.Errors {
			out.Errors[k] = append([]FieldError(nil), v...)
		}
	}
	return out
}

// WithEditing derives a copy with the editing flag set. Opening an edit
// also marks the record as changed, matching the panel lifecycle.
func (r FormRecord) WithEditing(editing bool) FormRecord {
	out := r.Clone()
	out.IsEditing = editing
	if editing {
		out.HasChanged = true
	}
	return out
}

// WithDeleted derives a copy flagged as deleted.
func (r FormRecord) WithDeleted() FormRecord {
	out := r.Clone()
	out.IsDeleted = true
	return out
}

// WithFields derives a copy carrying new field values, used when an edit
// is closed and the editor's values are harvested back into the record.
func (r FormRecord) WithFields(fields map[string]string) FormRecord {
	out := r.Clone()
	out.IsEditing = false
	out.Fields = make(map[string]string, len(fields))
	for k, v := range fields {
		out.Fields[k] = v
	}
	return out
}

// Clone returns a deep copy of the state.
func (s CollectionState) Clone() CollectionState {
	out := CollectionState{
		Forms:     make([]FormRecord, len(s.Forms)),
		EmptyForm: s.EmptyForm.Clone(),
	}
	for i, f := range s.Forms {
		out.Forms[i] = f.Clone()
	}
	return out
}

// NewRecord materializes a record from the panel's empty-form template.
// The caller supplies the id (always the current length of Forms) and the
// provisional position; nested panels start new records at depth 1 and
// move them into place afterwards.
func (s CollectionState) NewRecord(id, position, depth int) FormRecord {
	rec := s.EmptyForm.Clone()
	rec.ID = id
	rec.Position = position
	rec.Depth = depth
	rec.IsNew = true
	rec.IsEditing = true
	rec.HasChanged = true
	rec.IsDeleted = false
	if rec.Extra == nil {
		rec.Extra = map[string]any{}
	}
	if rec.Errors == nil {
		rec.Errors = map[string][]FieldError{}
	}
	return rec
}

// EmptyState returns a placeholder state for use before the host's real
// snapshot is installed.
func EmptyState() CollectionState {
	return CollectionState{
		Forms: []FormRecord{},
		EmptyForm: FormRecord{
			ID:       0,
			Position: 1,
			Fields:   map[string]string{},
			Extra:    map[string]any{},
		},
	}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
