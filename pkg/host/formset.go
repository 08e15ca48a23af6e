package host

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/formdeck/formdeck-cli/pkg/models"
	"github.com/formdeck/formdeck-cli/pkg/panel"
)

// ManagementFields is the set of host form fields the panel keeps in sync
// so an ordinary submission of the surrounding form persists the panel's
// state. Implementations write into whatever the host's data fields are;
// FieldValues is the in-memory one.
type ManagementFields interface {
	// SetTotalForms receives the live record count.
	SetTotalForms(value string)
	// SetSortOrder receives a JSON array of every record's position, in
	// id order. Only written when ordering is enabled.
	SetSortOrder(value string)
	// SetDeleted receives a JSON array of the ids flagged deleted.
	SetDeleted(value string)
}

// FieldValues is a plain in-memory ManagementFields, useful as the host
// document stand-in for tests and for the CLI's sync output.
type FieldValues struct {
	TotalForms string
	SortOrder  string
	Deleted    string
}

func (f *FieldValues) SetTotalForms(value string) { f.TotalForms = value }
func (f *FieldValues) SetSortOrder(value string)  { f.SortOrder = value }
func (f *FieldValues) SetDeleted(value string)    { f.Deleted = value }

// Formset binds a panel store to the host's management fields and form
// template. It owns no state of its own; it derives everything from the
// store on every dispatch.
type Formset struct {
	Prefix   string
	Template string
	CanOrder bool
	Log      zerolog.Logger
}

// Bind subscribes the management-field mirrors to the store and writes
// the current values once so the fields are correct before the first
// user action.
func (fs *Formset) Bind(store *panel.Store, fields ManagementFields) {
	sync := func(state *models.CollectionState) {
		fields.SetTotalForms(strconv.Itoa(panel.LiveCount(state)))
		if fs.CanOrder {
			fields.SetSortOrder(marshalInts(panel.SortOrders(state)))
		}
		fields.SetDeleted(marshalInts(panel.DeletedIDs(state)))
	}
	store.Subscribe(sync)
	sync(store.State())
}

// MaterializeForm builds the fragment for one record from the bound
// template.
func (fs *Formset) MaterializeForm(record models.FormRecord) (*Fragment, error) {
	return Materialize(fs.Template, fs.Prefix, record, fs.Log)
}

func marshalInts(values []int) string {
	// Marshalling a []int cannot fail.
	out, _ := json.Marshal(values)
	return string(out)
}
