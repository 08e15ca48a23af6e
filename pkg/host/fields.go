package host

import (
	"fmt"
	"regexp"
)

// PrefixToken is the placeholder the host leaves in its form template.
// Materializing a record's form substitutes every occurrence with the
// record id, which namespaces all element identifiers to that record.
const PrefixToken = "__prefix__"

// FieldID returns the element identifier for one field of one record,
// following the host's {formsetPrefix}-{id}-{fieldName} convention.
func FieldID(prefix string, id int, field string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, id, field)
}

// Chooser widgets carry ids shaped like id_<prefix>-<n>-<field>-chooser.
var chooserIDPattern = regexp.MustCompile(`id_[^-]*-\d+-([^-]*)-chooser`)

// ChooserField extracts the field name a chooser widget belongs to from
// the widget's element id.
func ChooserField(elementID string) (string, bool) {
	match := chooserIDPattern.FindStringSubmatch(elementID)
	if match == nil {
		return "", false
	}
	return match[1], true
}
