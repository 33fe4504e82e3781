package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/btindex/btree"
)

// Dot outputs the node structure of tree in Graphviz DOT format.
// Inner nodes are drawn as records with one field per key.
func Dot[V any](w io.Writer, tree *btree.Tree[V]) error {
	if tree == nil {
		return ErrNilTree
	}
	var nodelist, edgelist strings.Builder
	tree.WalkNodes(func(node btree.NodeInfo) bool {
		fmt.Fprintf(&nodelist, "\"n%d\" [label=\"%s\" %s];\n", node.ID, dotLabel(node), nodeDotStyles(node))
		if node.Parent >= 0 {
			fmt.Fprintf(&edgelist, "\"n%d\" -> \"n%d\";\n", node.Parent, node.ID)
		}
		return true
	})
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func dotLabel(node btree.NodeInfo) string {
	if len(node.Keys) == 0 {
		return ""
	}
	sep := " "
	if !node.Leaf {
		sep = " | "
	}
	labels := make([]string, len(node.Keys))
	for i, k := range node.Keys {
		labels[i] = strconv.FormatInt(k, 10)
	}
	return strings.Join(labels, sep)
}

func nodeDotStyles(node btree.NodeInfo) string {
	s := ",style=filled"
	if node.Leaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=record"
	}
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[node.Depth%len(hexcolors)])
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
