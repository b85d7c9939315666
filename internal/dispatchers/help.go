package dispatchers

import "strings"

const (
	usageOptionalOpen  = "["
	usageOptionalClose = "]"
	usageRequiredOpen  = "("
	usageRequiredClose = ")"
	usageOr            = "|"
)

// SmartUsage is the condensed usage of one child.
type SmartUsage struct {
	Node  *Node
	Usage string
}

// AllUsage lists every executable path below node, one line each.
// Redirects end their line with "-> target" or "..." for the root.
// With restricted set, nodes src cannot use are left out.
func (d *Dispatcher) AllUsage(node *Node, src Source, restricted bool) []string {
	var result []string
	d.allUsage(node, src, &result, "", restricted)
	return result
}

func (d *Dispatcher) allUsage(node *Node, src Source, result *[]string, prefix string, restricted bool) {
	if restricted && !node.CanUse(src) {
		return
	}
	if node.command != nil {
		*result = append(*result, prefix)
	}

	if node.redirect != nil {
		redirect := d.RedirectText(node.redirect)
		if prefix == "" {
			*result = append(*result, node.UsageText()+" "+redirect)
		} else {
			*result = append(*result, prefix+" "+redirect)
		}
		return
	}

	for _, child := range node.order {
		next := child.UsageText()
		if prefix != "" {
			next = prefix + " " + next
		}
		d.allUsage(child, src, result, next, restricted)
	}
}

// SmartUsage returns one condensed usage line per child of node that src
// may use. Optional parts are bracketed, alternatives joined with "|".
func (d *Dispatcher) SmartUsage(node *Node, src Source) []SmartUsage {
	var result []SmartUsage
	optional := node.command != nil
	for _, child := range node.order {
		if usage, ok := d.smartUsage(child, src, optional, false); ok {
			result = append(result, SmartUsage{Node: child, Usage: usage})
		}
	}
	return result
}

func (d *Dispatcher) smartUsage(node *Node, src Source, optional, deep bool) (string, bool) {
	if !node.CanUse(src) {
		return "", false
	}

	self := node.UsageText()
	if optional {
		self = usageOptionalOpen + self + usageOptionalClose
	}
	if deep {
		return self, true
	}

	if node.redirect != nil {
		return self + " " + d.RedirectText(node.redirect), true
	}

	childOptional := node.command != nil
	open, close := usageRequiredOpen, usageRequiredClose
	if childOptional {
		open, close = usageOptionalOpen, usageOptionalClose
	}

	var children []*Node
	for _, child := range node.order {
		if child.CanUse(src) {
			children = append(children, child)
		}
	}

	switch {
	case len(children) == 1:
		if usage, ok := d.smartUsage(children[0], src, childOptional, childOptional); ok {
			return self + " " + usage, true
		}
	case len(children) > 1:
		var distinct []string
		seen := map[string]bool{}
		for _, child := range children {
			if usage, ok := d.smartUsage(child, src, childOptional, true); ok && !seen[usage] {
				seen[usage] = true
				distinct = append(distinct, usage)
			}
		}
		if len(distinct) == 1 {
			usage := distinct[0]
			if childOptional {
				usage = usageOptionalOpen + usage + usageOptionalClose
			}
			return self + " " + usage, true
		}
		if len(distinct) > 1 {
			names := make([]string, len(children))
			for i, child := range children {
				names[i] = child.UsageText()
			}
			return self + " " + open + strings.Join(names, usageOr) + close, true
		}
	}
	return self, true
}

// RedirectText is how usage shows a redirect to target: "..." for the
// root, "-> target" otherwise.
func (d *Dispatcher) RedirectText(target *Node) string {
	if target == d.root {
		return "..."
	}
	return "-> " + target.UsageText()
}

// Path returns the literal and argument names leading from the root to
// target, or nil when target is not in the tree.
func (d *Dispatcher) Path(target *Node) []string {
	var walk func(node *Node, path []string) []string
	walk = func(node *Node, path []string) []string {
		if node == target {
			return path
		}
		for _, child := range node.order {
			if found := walk(child, append(path[:len(path):len(path)], child.Name())); found != nil {
				return found
			}
		}
		return nil
	}
	if target == d.root {
		return []string{}
	}
	return walk(d.root, []string{})
}

// FindNode follows names from the root; it returns nil at the first miss.
func (d *Dispatcher) FindNode(path ...string) *Node {
	node := d.root
	for _, name := range path {
		node = node.Child(name)
		if node == nil {
			return nil
		}
	}
	return node
}
