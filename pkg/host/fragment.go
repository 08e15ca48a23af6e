package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

// Fragment is one record's materialized form markup. It is produced by
// substituting the record id into the host's template and parsed into a
// tree so field values, errors and chooser previews can be pushed into
// the elements the host's own submission handling will read back out.
//
// All lookups are confined to the fragment's subtree, so several panels
// can coexist without id collisions leaking across them. A missing
// element is never an error: the host may well render a template without
// some field's widget, and one absent widget must not stop the rest of
// the fragment from initializing.
type Fragment struct {
	record models.FormRecord
	prefix string
	root   *html.Node
	log    zerolog.Logger
}

// Materialize builds the fragment for record from the host template.
// Every occurrence of the __prefix__ token is textually replaced with the
// record id before parsing; that is the whole of the templating contract.
func Materialize(template, formsetPrefix string, record models.FormRecord, log zerolog.Logger) (*Fragment, error) {
	substituted := strings.ReplaceAll(template, PrefixToken, strconv.Itoa(record.ID))

	doc, err := html.Parse(strings.NewReader(substituted))
	if err != nil {
		return nil, fmt.Errorf("parsing form template for record %d: %w", record.ID, err)
	}

	root := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "body"
	})
	if root == nil {
		return nil, fmt.Errorf("form template for record %d produced no content", record.ID)
	}

	return &Fragment{
		record: record.Clone(),
		prefix: formsetPrefix,
		root:   root,
		log:    log,
	}, nil
}

// Record returns the record this fragment was materialized for.
func (f *Fragment) Record() models.FormRecord {
	return f.record
}

// Init runs the full post-mount initialization: current values pushed
// into the inputs, error blocks attached, chooser widgets re-initialized.
// Embedded scripts are returned for the integration's trusted runner.
func (f *Fragment) Init() []string {
	f.PushValues()
	f.AttachErrors()
	f.InitChoosers()
	return f.Scripts()
}

// PushValues copies the record's field values into the matching input,
// textarea and select elements. Checkbox inputs get a boolean checked
// state instead of a value string.
func (f *Fragment) PushValues() {
	for name, value := range f.record.Fields {
		element := f.elementByID(FieldID(f.prefix, f.record.ID, name))
		if element == nil {
			f.log.Debug().Str("field", name).Int("form", f.record.ID).Msg("no input element for field")
			continue
		}

		switch element.Data {
		case "input":
			if attrValue(element, "type") == "checkbox" {
				// A non-empty value string means checked, matching how the
				// host serializes checkbox state.
				if value != "" && value != "false" {
					setAttr(element, "checked", "checked")
				} else {
					removeAttr(element, "checked")
				}
			} else {
				setAttr(element, "value", value)
			}
		case "textarea":
			setText(element, value)
		case "select":
			selectOption(element, value)
		}
	}
}

// HarvestValues reads current values back out of the fragment, the
// inverse of PushValues, used when an edit is closed. Fields whose
// element cannot be found keep their previous value.
func (f *Fragment) HarvestValues() map[string]string {
	out := make(map[string]string, len(f.record.Fields))
	for name, previous := range f.record.Fields {
		element := f.elementByID(FieldID(f.prefix, f.record.ID, name))
		if element == nil {
			out[name] = previous
			continue
		}

		switch element.Data {
		case "input":
			if attrValue(element, "type") == "checkbox" {
				if hasAttr(element, "checked") {
					out[name] = "true"
				} else {
					out[name] = ""
				}
			} else {
				out[name] = attrValue(element, "value")
			}
		case "textarea":
			out[name] = textContent(element)
		case "select":
			out[name] = selectedOption(element)
		default:
			out[name] = previous
		}
	}
	return out
}

// AttachErrors renders each field's error list adjacent to the field: the
// enclosing .field wrapper gets the error class and one error block with
// one entry per error. Fields without a wrapper are skipped.
func (f *Fragment) AttachErrors() {
	for name, errs := range f.record.Errors {
		if len(errs) == 0 {
			continue
		}

		element := f.elementByID(FieldID(f.prefix, f.record.ID, name))
		if element == nil {
			f.log.Debug().Str("field", name).Int("form", f.record.ID).Msg("no element to attach errors to")
			continue
		}
		wrapper := closestByClass(element, "field")
		if wrapper == nil {
			continue
		}

		addClass(wrapper, "error")

		content := firstByClass(wrapper, "field-content")
		if content == nil {
			content = wrapper
		}

		block := &html.Node{Type: html.ElementNode, Data: "p"}
		setAttr(block, "class", "error-message")
		for _, fieldErr := range errs {
			span := &html.Node{Type: html.ElementNode, Data: "span"}
			span.AppendChild(&html.Node{Type: html.TextNode, Data: fieldErr.Message})
			block.AppendChild(span)
		}
		content.AppendChild(block)
	}
}

// Chooser widget classes the host is known to embed. Image choosers get
// their own preview handling.
var titleChooserClasses = []string{"page-chooser", "snippet-chooser", "document-chooser"}

// InitChoosers re-initializes chooser widgets found in the fragment. The
// target field name is derived from the widget's structured element id;
// when the record already has a value for that field, the widget's
// empty-state marker is stripped and its preview content populated from
// the record's extra metadata.
func (f *Fragment) InitChoosers() {
	for _, class := range titleChooserClasses {
		for _, chooser := range f.elementsByClass(class) {
			field, ok := ChooserField(attrValue(chooser, "id"))
			if !ok || f.record.Fields[field] == "" {
				continue
			}

			removeClass(chooser, "blank")

			title := firstByClass(chooser, "title")
			if title == nil {
				f.log.Debug().Str("field", field).Str("chooser", class).Msg("chooser has no title element")
				continue
			}
			setText(title, f.extraString(field, "title"))
		}
	}

	for _, chooser := range f.elementsByClass("image-chooser") {
		field, ok := ChooserField(attrValue(chooser, "id"))
		if !ok || f.record.Fields[field] == "" {
			continue
		}

		removeClass(chooser, "blank")

		preview := firstByClass(chooser, "preview-image")
		if preview == nil {
			continue
		}
		img := findNode(preview, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "img"
		})
		if img == nil {
			f.log.Debug().Str("field", field).Msg("image chooser has no preview img")
			continue
		}

		extra, ok := f.record.Extra[field].(map[string]any)
		if !ok {
			continue
		}
		previewData, ok := extra["preview_image"].(map[string]any)
		if !ok {
			continue
		}
		for _, attr := range []string{"src", "alt", "width", "height"} {
			if value, ok := previewData[attr]; ok {
				setAttr(img, attr, anyToString(value))
			}
		}
	}
}

// Scripts returns the bodies of script elements embedded in the
// fragment, in document order. The caller decides whether and how to run
// them; the markup is collaborator-authored, trusted content — never
// end-user input — and this is deliberately the only way to get at it.
func (f *Fragment) Scripts() []string {
	var scripts []string
	walk(f.root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			scripts = append(scripts, textContent(n))
		}
	})
	return scripts
}

// Render serializes the fragment back to markup.
func (f *Fragment) Render() (string, error) {
	var sb strings.Builder
	for child := f.root.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (f *Fragment) extraString(field, key string) string {
	extra, ok := f.record.Extra[field].(map[string]any)
	if !ok {
		return ""
	}
	value, ok := extra[key]
	if !ok {
		return ""
	}
	return anyToString(value)
}

func (f *Fragment) elementByID(id string) *html.Node {
	return findNode(f.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attrValue(n, "id") == id
	})
}

func (f *Fragment) elementsByClass(class string) []*html.Node {
	var out []*html.Node
	walk(f.root, func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			out = append(out, n)
		}
	})
	return out
}

func anyToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
