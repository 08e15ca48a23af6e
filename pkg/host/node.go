package host

import (
	"strings"

	"golang.org/x/net/html"
)

// Small traversal and attribute helpers over x/net/html nodes. Lookups
// always start from a given subtree root, never from the whole document.

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, match); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func classList(n *html.Node) []string {
	return strings.Fields(attrValue(n, "class"))
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range classList(n) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	classes := append(classList(n), class)
	setAttr(n, "class", strings.Join(classes, " "))
}

func removeClass(n *html.Node, class string) {
	classes := classList(n)
	out := classes[:0]
	for _, c := range classes {
		if c != class {
			out = append(out, c)
		}
	}
	setAttr(n, "class", strings.Join(out, " "))
}

// closestByClass walks up from n looking for an ancestor (or n itself)
// carrying the class.
func closestByClass(n *html.Node, class string) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && hasClass(cur, class) {
			return cur
		}
	}
	return nil
}

// firstByClass returns the first descendant of n (excluding n itself)
// with the class, in document order.
func firstByClass(n *html.Node, class string) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, func(c *html.Node) bool {
			return c.Type == html.ElementNode && hasClass(c, class)
		}); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// setText replaces n's children with a single text node.
func setText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// selectOption marks the option matching value as selected and clears the
// flag from every other option.
func selectOption(selectEl *html.Node, value string) {
	walk(selectEl, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "option" {
			return
		}
		if optionValue(n) == value {
			setAttr(n, "selected", "selected")
		} else {
			removeAttr(n, "selected")
		}
	})
}

// selectedOption returns the value of the selected option, or of the
// first option when none is marked, mirroring how a select element
// reports its value.
func selectedOption(selectEl *html.Node) string {
	first, haveFirst := "", false
	found, haveFound := "", false
	walk(selectEl, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "option" {
			return
		}
		if !haveFirst {
			first, haveFirst = optionValue(n), true
		}
		if !haveFound && hasAttr(n, "selected") {
			found, haveFound = optionValue(n), true
		}
	})
	if haveFound {
		return found
	}
	return first
}

func optionValue(option *html.Node) string {
	if hasAttr(option, "value") {
		return attrValue(option, "value")
	}
	return strings.TrimSpace(textContent(option))
}
