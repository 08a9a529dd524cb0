package ukkonen

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// WriteDot outputs the internal structure of a suffix tree in Graphviz DOT format
// (for debugging purposes). Suffix links are drawn as dashed arrows.
func (t *Tree[K, V]) WriteDot(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for id, nd := range t.nodes {
		label := fmt.Sprintf("%d", id)
		if len(nd.data) > 0 {
			label += "\\n" + dotEscape(fmt.Sprint(nd.data))
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label,
			nodeDotStyles(nodeID(id) == root, len(nd.edges) == 0))
		for _, first := range slices.Sorted(maps.Keys(nd.edges)) {
			e := nd.edges[first]
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"%s\"];\n", id, e.target,
				dotEscape(e.label.String()))
		}
		if nd.suffix != noNode {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,color=\"#888888\"];\n", id, nd.suffix)
		}
	}
	sb.WriteString(nodelist)
	sb.WriteString(edgelist)
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		T().Errorf("suffix tree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isroot bool, isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	if isroot {
		s += ",fillcolor=\"#FFBB88\""
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

