package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func usageTree() *Dispatcher {
	c := returns(1)
	d := NewDispatcher()
	d.Register(Literal("a").
		Then(Literal("1").Then(Literal("i").Executes(c)).Then(Literal("ii").Executes(c))).
		Then(Literal("2").Then(Literal("i").Executes(c)).Then(Literal("ii").Executes(c))))
	d.Register(Literal("b").Then(Literal("1").Executes(c)))
	d.Register(Literal("c").Executes(c))
	d.Register(Literal("d").Requires(func(Source) bool { return false }).Executes(c))
	d.Register(Literal("e").Executes(c).
		Then(Literal("1").Executes(c).Then(Literal("i").Executes(c)).Then(Literal("ii").Executes(c))))
	d.Register(Literal("f").
		Then(Literal("1").Then(Literal("i").Executes(c))).
		Then(Literal("2").Then(Literal("i").Executes(c)).Then(Literal("ii").Executes(c))))
	d.Register(Literal("g").Executes(c).Then(Literal("1").Then(Literal("i").Executes(c))))
	h := d.Register(Literal("h").Executes(c).
		Then(Literal("1").Then(Literal("i").Executes(c))).
		Then(Literal("2").Then(Literal("i").Then(Literal("ii").Executes(c)))).
		Then(Literal("3").Executes(c)))
	d.Register(Literal("i").Executes(c).Then(Literal("1").Executes(c)).Then(Literal("2").Executes(c)))
	d.Register(Literal("j").Redirect(d.Root()))
	d.Register(Literal("k").Redirect(h))
	return d
}

func TestAllUsage_Restricted(t *testing.T) {
	d := usageTree()

	require.Equal(t, []string{
		"a 1 i", "a 1 ii", "a 2 i", "a 2 ii",
		"b 1",
		"c",
		"e", "e 1", "e 1 i", "e 1 ii",
		"f 1 i", "f 2 i", "f 2 ii",
		"g", "g 1 i",
		"h", "h 1 i", "h 2 i ii", "h 3",
		"i", "i 1", "i 2",
		"j ...",
		"k -> h",
	}, d.AllUsage(d.Root(), player("steve"), true))
}

func TestAllUsage_Unrestricted(t *testing.T) {
	d := usageTree()

	usages := d.AllUsage(d.Root(), player("steve"), false)
	require.Contains(t, usages, "d")
	require.Len(t, usages, 25)
}

func TestAllUsage_Subtree(t *testing.T) {
	d := usageTree()

	require.Equal(t, []string{"", "1", "1 i", "1 ii"}, d.AllUsage(d.FindNode("e"), player("steve"), true))
}

func TestSmartUsage_Root(t *testing.T) {
	d := usageTree()

	got := map[string]string{}
	var order []string
	for _, u := range d.SmartUsage(d.Root(), player("steve")) {
		got[u.Node.Name()] = u.Usage
		order = append(order, u.Node.Name())
	}

	require.Equal(t, []string{"a", "b", "c", "e", "f", "g", "h", "i", "j", "k"}, order)
	require.Equal(t, map[string]string{
		"a": "a (1|2)",
		"b": "b 1",
		"c": "c",
		"e": "e [1]",
		"f": "f (1|2)",
		"g": "g [1]",
		"h": "h [1|2|3]",
		"i": "i [1|2]",
		"j": "j ...",
		"k": "k -> h",
	}, got)
}

func TestSmartUsage_Subtree(t *testing.T) {
	d := usageTree()

	got := map[string]string{}
	for _, u := range d.SmartUsage(d.FindNode("h"), player("steve")) {
		got[u.Node.Name()] = u.Usage
	}
	require.Equal(t, map[string]string{
		"1": "[1] i",
		"2": "[2] i ii",
		"3": "[3]",
	}, got)
}

func TestSmartUsage_ArgumentsAndOptions(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("give").Then(Argument("amount", intType{}).Executes(returns(1)).
		Then(Argument("count", intType{}).AsOption().Executes(returns(1)))))

	usages := d.SmartUsage(d.Root(), player("steve"))
	require.Len(t, usages, 1)
	require.Equal(t, "give <amount> [--count <count>]", usages[0].Usage)
}

func TestPathAndFindNode(t *testing.T) {
	d := usageTree()

	node := d.FindNode("a", "1", "i")
	require.NotNil(t, node)
	require.Equal(t, []string{"a", "1", "i"}, d.Path(node))

	require.Empty(t, d.Path(d.Root()))
	require.Nil(t, d.Path(NewRootNode()))
	require.Nil(t, d.FindNode("a", "3"))
	require.Same(t, d.Root(), d.FindNode())
}
