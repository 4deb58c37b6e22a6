package editor

import (
	"context"
	"encoding/base64"
	"fmt"

	domain "beardball/internal/domain/content"
	"beardball/internal/domain/photo"
)

// PresetImage is a curated stock image offered as a one-click draft choice.
type PresetImage struct {
	Label string
	URL   string
}

// PresetImages are the quick options shown alongside the URL and upload
// inputs. Picking one only sets the draft; Save still decides.
var PresetImages = []PresetImage{
	{Label: "Basketball Player", URL: "https://images.unsplash.com/photo-1546519638-68e109498ffc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
	{Label: "Court Action", URL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
	{Label: "Training Session", URL: "https://images.unsplash.com/photo-1574623452334-1e0ac2b3ccb4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
}

// ImageField binds a rendered image source to a key path. The draft can come
// from a pasted URL, a preset, or an uploaded file encoded as a data URL.
// Like TextField, nothing reaches the store before Save.
type ImageField struct {
	defaultSrc string
	keyPath    string

	svc      ContentService
	notifier Notifier
	mode     *Controller

	committed string
	draft     string
	editing   bool
}

// ImageFieldConfig carries construction inputs for an ImageField.
type ImageFieldConfig struct {
	DefaultSrc string
	KeyPath    string // empty disables editing entirely
	Service    ContentService
	Notifier   Notifier
	Mode       *Controller
}

// NewImageField creates a field displaying its default source until synced.
func NewImageField(cfg ImageFieldConfig) *ImageField {
	return &ImageField{
		defaultSrc: cfg.DefaultSrc,
		keyPath:    cfg.KeyPath,
		svc:        cfg.Service,
		notifier:   cfg.Notifier,
		mode:       cfg.Mode,
		committed:  cfg.DefaultSrc,
	}
}

// Sync refreshes the committed source from the store, falling back to the
// default when the path does not resolve or the load fails.
func (f *ImageField) Sync(ctx context.Context) {
	if f.keyPath == "" {
		f.committed = f.defaultSrc
		return
	}
	v, found, err := f.svc.GetValue(ctx, f.keyPath)
	if err != nil || !found {
		f.committed = f.defaultSrc
		return
	}
	f.committed = domain.String(v)
}

// BeginEdit enters edit state with the draft seeded from the current source.
// POST: returns true if the field entered edit state
func (f *ImageField) BeginEdit() bool {
	if f.editing || f.keyPath == "" || f.mode == nil || !f.mode.Active() {
		return false
	}
	f.editing = true
	f.draft = f.committed
	return true
}

// SetDraftURL replaces the draft with a direct image URL or preset.
func (f *ImageField) SetDraftURL(url string) error {
	if !f.editing {
		return ErrNotEditing
	}
	f.draft = url
	return nil
}

// AcceptUpload validates an uploaded file and, when acceptable, encodes it
// as a data URL draft. A rejected upload changes nothing: committed and
// draft values survive untouched and the error names the reason.
// PRE: field is in edit state
// POST: on error, Draft() and Display() are unchanged
func (f *ImageField) AcceptUpload(contentType string, data []byte) error {
	if !f.editing {
		return ErrNotEditing
	}
	if err := photo.ValidateUpload(contentType, int64(len(data))); err != nil {
		return fmt.Errorf("upload rejected: %w", err)
	}
	f.draft = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return nil
}

// Save commits the draft source with a single store write. The preview
// becomes the displayed image even on degraded persistence.
// POST: field back in display state; notifier invoked exactly once
func (f *ImageField) Save(ctx context.Context) error {
	if !f.editing {
		return ErrNotEditing
	}
	status, err := f.svc.Update(ctx, f.keyPath, f.draft)

	f.committed = f.draft
	f.editing = false

	switch {
	case err != nil:
		f.notify(Notification{Success: false, Message: "Save Failed"})
		return err
	case !status.Persisted():
		f.notify(Notification{Success: false, Message: "Image saved to local storage only"})
	default:
		f.notify(Notification{Success: true, Message: "Image Saved!"})
	}
	return nil
}

// Cancel discards the draft with zero store calls.
func (f *ImageField) Cancel() {
	f.draft = f.committed
	f.editing = false
}

// Display returns the committed image source.
func (f *ImageField) Display() string { return f.committed }

// Draft returns the in-progress source while editing.
func (f *ImageField) Draft() string { return f.draft }

// Preview returns the draft while editing, else the committed source.
func (f *ImageField) Preview() string {
	if f.editing && f.draft != "" {
		return f.draft
	}
	return f.committed
}

// Editing reports whether the field is in edit state.
func (f *ImageField) Editing() bool { return f.editing }

// Editable reports whether the field can ever enter edit state.
func (f *ImageField) Editable() bool { return f.keyPath != "" }

func (f *ImageField) notify(n Notification) {
	if f.notifier != nil {
		f.notifier.Notify(n)
	}
}
