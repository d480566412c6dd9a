package game

// Node is one explored position in the game tree, with the ordered list of
// children search actually generated. That list can be a strict subset of
// the legal moves when the search was cut off by depth or pruning. A caller
// replays a line of play by following Position.ChosenChild on the engine's
// turns and FindChild on the opponent's.
type Node struct {
	pos      *Position
	children []*Node
}

func NewNode(pos *Position) *Node {
	return &Node{pos: pos}
}

func (n *Node) Position() *Position { return n.pos }

func (n *Node) Children() []*Node { return n.children }

// AppendChild adds an explored successor. Children stay in the order search
// generated them.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child)
}

// FindChild scans the explored children for one whose position has the same
// grid as pos. It returns nil when the subtree was never generated; the
// caller then starts a fresh one-node tree at pos and expands it on demand.
func (n *Node) FindChild(pos *Position) *Node {
	for _, child := range n.children {
		if child.pos.EqualGrid(pos) {
			return child
		}
	}
	return nil
}
