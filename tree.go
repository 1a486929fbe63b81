package bst

func (t *tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) Root() Node {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root
}

func (t *tree) Insert(key string) {
	if t.root == nil {
		t.root = newNode(key)
		t.size++
		T().Debugf("bst: %q is the root", key)
		return
	}

	depth := 1
	curr := t.root
	for {
		if t.cmp(key, curr.key) > 0 {
			if curr.right == nil {
				curr.attach(key, true)
				break
			}
			curr = curr.right
		} else {
			// equal keys go left as well
			if curr.left == nil {
				curr.attach(key, false)
				break
			}
			curr = curr.left
		}
		depth++
	}
	t.size++
	T().Debugf("bst: %q placed below %q at depth %d", key, curr.key, depth)
}

// Traverse returns a new pre-order iterator: a node is visited before its
// left sub-tree, which is visited before its right sub-tree.
func (t *tree) Traverse() Iterator {
	it := &iterator{tree: t}
	if t != nil {
		it.nextNode = t.root
	}
	return it
}

func (t *tree) ForEach(callback Callback) {
	if t == nil || t.root == nil {
		return
	}
	stack := []*bstNode{t.root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callback(curr) {
			return
		}
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

func (it *iterator) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator) Next() (Node, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.nextNode
	it.next()
	return cur, nil
}

func (it *iterator) next() {
	cur := it.nextNode
	if cur.left != nil {
		if cur.right != nil {
			it.pending = append(it.pending, cur.right)
		}
		it.nextNode = cur.left
		return
	}
	if cur.right != nil {
		it.nextNode = cur.right
		return
	}
	if n := len(it.pending); n > 0 {
		it.nextNode = it.pending[n-1]
		it.pending = it.pending[:n-1]
		return
	}
	it.nextNode = nil
}

// Keys returns the keys of t in traversal order.
func Keys(t Tree) []string {
	keys := make([]string, 0, t.Size())
	t.ForEach(func(n Node) bool {
		keys = append(keys, n.Key())
		return true
	})
	return keys
}
