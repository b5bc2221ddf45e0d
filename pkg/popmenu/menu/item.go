package menu

// Icon references an image for a menu item. Exactly one of Bytes or
// Filename is expected; Bytes wins when both are set. Width and Height are
// only required for SVG data.
type Icon struct {
	Filename string
	Bytes    []byte
	Width    int32
	Height   int32
}

func (i Icon) IsZero() bool {
	return i.Filename == "" && len(i.Bytes) == 0
}

type Item struct {
	Text    string
	Icon    Icon
	Payload any
}
