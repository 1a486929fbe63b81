package bst

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*bstNode]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*bstNode]int),
		max:     1,
	}
}

func (ids *nodeids) alloc(node *bstNode) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the shape of a tree in Graphviz DOT format. Absent
// children of internal nodes are drawn as small empty circles, so left and
// right edges can be told apart.
func WriteDot(t Tree, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	nilid := 0
	t.ForEach(func(n Node) bool {
		node := asNode(n)
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, dotEscape(node.key), styles)
		if node.IsLeaf() {
			return true
		}
		for _, child := range [...]*bstNode{node.left, node.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotEscape(key string) string {
	return dotEscaper.Replace(key)
}
