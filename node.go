package bst

func (n *bstNode) Key() string {
	return n.key
}

func (n *bstNode) Left() Node {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *bstNode) Right() Node {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *bstNode) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// hasChild is true for internal nodes
func (n *bstNode) hasChild() bool {
	return !n.IsLeaf()
}

// attach sets a previously absent child slot. It is the only mutation a
// node ever sees.
func (n *bstNode) attach(key string, right bool) *bstNode {
	child := newNode(key)
	if right {
		if n.right != nil {
			panic("bst: right child already present")
		}
		n.right = child
	} else {
		if n.left != nil {
			panic("bst: left child already present")
		}
		n.left = child
	}
	return child
}

// asNode unwraps a Node handed in by a client. Foreign Node implementations
// are not part of any tree and yield nil.
func asNode(n Node) *bstNode {
	if n == nil {
		return nil
	}
	node, _ := n.(*bstNode)
	return node
}
