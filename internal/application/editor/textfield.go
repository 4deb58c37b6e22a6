package editor

import (
	"context"
	"errors"

	contentStore "beardball/internal/adapters/storage/content"
	domain "beardball/internal/domain/content"
)

// ContentService is the slice of the content orchestrator fields need:
// path reads with an explicit found flag, and serialized path writes.
type ContentService interface {
	GetValue(ctx context.Context, path string) (any, bool, error)
	Update(ctx context.Context, path string, value any) (contentStore.SaveStatus, error)
}

// Notification is the transient acknowledgment shown after a Save attempt.
type Notification struct {
	Success bool
	Message string
}

// Notifier receives exactly one notification per Save attempt.
type Notifier interface {
	Notify(n Notification)
}

// Variant selects the text field's editing affordance.
type Variant int

const (
	VariantSingleLine Variant = iota
	VariantMultiLine
	VariantHeading
)

// Confirm/cancel keys for single-line editing.
const (
	KeyConfirm = "Enter"
	KeyCancel  = "Escape"
)

// ErrNotEditing is returned when Save or SetDraft is called outside an edit.
var ErrNotEditing = errors.New("field is not in edit state")

// TextField binds one rendered string to a key path in the content document.
// It holds a committed value mirroring the store and, while editing, an
// in-progress draft that touches nothing until Save. A field without a key
// path is never editable — it renders its literal default forever.
type TextField struct {
	defaultValue string
	keyPath      string
	variant      Variant

	svc      ContentService
	notifier Notifier
	mode     *Controller

	committed string
	draft     string
	editing   bool
}

// TextFieldConfig carries construction inputs for a TextField.
type TextFieldConfig struct {
	DefaultValue string
	KeyPath      string // empty disables editing entirely
	Variant      Variant
	Service      ContentService
	Notifier     Notifier // nil drops notifications
	Mode         *Controller
}

// NewTextField creates a field displaying its literal default until synced.
// PRE: cfg.Service and cfg.Mode are non-nil when KeyPath is set
// POST: field is in display state showing DefaultValue
func NewTextField(cfg TextFieldConfig) *TextField {
	return &TextField{
		defaultValue: cfg.DefaultValue,
		keyPath:      cfg.KeyPath,
		variant:      cfg.Variant,
		svc:          cfg.Service,
		notifier:     cfg.Notifier,
		mode:         cfg.Mode,
		committed:    cfg.DefaultValue,
	}
}

// Sync refreshes the committed value from the store: the override when the
// path resolves, the literal default otherwise. Called on mount and whenever
// the key path changes. A store failure degrades to the default.
// POST: Display() reflects the store or the default; edit state untouched
func (f *TextField) Sync(ctx context.Context) {
	if f.keyPath == "" {
		f.committed = f.defaultValue
		return
	}
	v, found, err := f.svc.GetValue(ctx, f.keyPath)
	if err != nil || !found {
		f.committed = f.defaultValue
		return
	}
	f.committed = domain.String(v)
}

// Rebind points the field at a new key path and re-synchronizes.
// POST: committed value reflects the new path
func (f *TextField) Rebind(ctx context.Context, keyPath string) {
	f.keyPath = keyPath
	f.editing = false
	f.Sync(ctx)
}

// BeginEdit enters edit state, seeding the draft with the displayed value
// and requesting input focus. A click outside edit mode, on a field with no
// key path, or during an edit does nothing.
// POST: returns true if the field entered edit state
func (f *TextField) BeginEdit() bool {
	if f.editing || f.keyPath == "" || f.mode == nil || !f.mode.Active() {
		return false
	}
	f.editing = true
	f.draft = f.committed
	return true
}

// SetDraft replaces the in-progress value. Only meaningful while editing.
func (f *TextField) SetDraft(v string) error {
	if !f.editing {
		return ErrNotEditing
	}
	f.draft = v
	return nil
}

// Save commits the draft with exactly one store write. The displayed value
// updates optimistically even when persistence degrades; the notification
// distinguishes "saved permanently" from "saved locally only."
// POST: field back in display state; notifier invoked exactly once
func (f *TextField) Save(ctx context.Context) error {
	if !f.editing {
		return ErrNotEditing
	}
	status, err := f.svc.Update(ctx, f.keyPath, f.draft)

	f.committed = f.draft
	f.editing = false

	switch {
	case err != nil:
		f.notify(Notification{Success: false, Message: "Save failed"})
		return err
	case !status.Persisted():
		f.notify(Notification{Success: false, Message: "Save failed - using local storage"})
	default:
		f.notify(Notification{Success: true, Message: "Saved permanently"})
	}
	return nil
}

// Cancel discards the draft and reverts to the committed value. Performs
// zero store calls, so abandoning an edit is always safe.
// POST: field back in display state; store untouched
func (f *TextField) Cancel() {
	f.draft = f.committed
	f.editing = false
}

// HandleKey maps the confirm/cancel keys for single-line fields. Multi-line
// and heading variants ignore the confirm key (newlines are content).
// POST: returns true if the key ended the edit
func (f *TextField) HandleKey(ctx context.Context, key string) bool {
	if !f.editing {
		return false
	}
	switch key {
	case KeyConfirm:
		if f.variant != VariantSingleLine && f.variant != VariantHeading {
			return false
		}
		f.Save(ctx)
		return true
	case KeyCancel:
		f.Cancel()
		return true
	}
	return false
}

// Display returns the committed value shown in display state.
func (f *TextField) Display() string { return f.committed }

// Draft returns the in-progress value while editing.
func (f *TextField) Draft() string { return f.draft }

// Editing reports whether the field is in edit state.
func (f *TextField) Editing() bool { return f.editing }

// Editable reports whether the field can ever enter edit state.
func (f *TextField) Editable() bool { return f.keyPath != "" }

// KeyPath returns the bound key path (empty for static fields).
func (f *TextField) KeyPath() string { return f.keyPath }

func (f *TextField) notify(n Notification) {
	if f.notifier != nil {
		f.notifier.Notify(n)
	}
}
