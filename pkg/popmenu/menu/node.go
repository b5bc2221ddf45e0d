package menu

type NodeKind int

const (
	NodeKindSurface NodeKind = iota
	NodeKindFrame
	NodeKindGrid
	NodeKindItem
	NodeKindDismiss
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindSurface:
		return "surface"
	case NodeKindFrame:
		return "frame"
	case NodeKindGrid:
		return "grid"
	case NodeKindItem:
		return "item"
	case NodeKindDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Rect is a pixel rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H int32
}

func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Margins struct {
	Left, Top, Bottom int32
}

// Node is one element of the menu's visual tree. Bounds are the rest
// position; TranslationY is the animated offset applied on top of them.
type Node struct {
	Kind         NodeKind
	Bounds       Rect
	Margins      Margins
	Row, Column  int
	ItemIndex    int
	Item         *Item
	TranslationY float64
	OnClick      func()

	parent   *Node
	children []*Node
}

func newNode(kind NodeKind, bounds Rect) *Node {
	return &Node{Kind: kind, Bounds: bounds, ItemIndex: -1}
}

// NewSurfaceRoot creates the content root a host surface exposes. Nodes are
// only considered attached while they hang off a surface root.
func NewSurfaceRoot(width, height int32) *Node {
	return newNode(NodeKindSurface, Rect{W: width, H: height})
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// AddChild re-parents child under n.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild is a no-op when child is not a direct child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Detach removes n from its parent. Detaching a detached node does nothing.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) Attached() bool {
	for p := n; p != nil; p = p.parent {
		if p.Kind == NodeKindSurface {
			return true
		}
	}
	return false
}

// SetTranslationY ignores updates for nodes that are no longer on a surface.
func (n *Node) SetTranslationY(value float64) bool {
	if !n.Attached() {
		return false
	}
	n.TranslationY = value
	return true
}

// Translation is the accumulated vertical offset of n and its ancestors.
func (n *Node) Translation() float64 {
	var total float64
	for p := n; p != nil; p = p.parent {
		total += p.TranslationY
	}
	return total
}

// VisualBounds is Bounds shifted by the accumulated translation.
func (n *Node) VisualBounds() Rect {
	r := n.Bounds
	r.Y += int32(n.Translation())
	return r
}

func (n *Node) Click() bool {
	if n.OnClick == nil {
		return false
	}
	n.OnClick()
	return true
}

// HitTest returns the last-drawn clickable node under (x, y), or nil.
func (n *Node) HitTest(x, y int32) *Node {
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	if n.OnClick != nil && n.VisualBounds().Contains(x, y) {
		return n
	}
	return nil
}

// Walk visits n and its descendants depth-first in draw order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
