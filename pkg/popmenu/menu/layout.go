package menu

// DensityConverter turns density-independent units into physical pixels.
type DensityConverter interface {
	ToPixels(dp int) int32
}

// Density is a fixed pixels-per-dp factor. Results are truncated.
type Density float64

func (d Density) ToPixels(dp int) int32 {
	return int32(float64(dp) * float64(d))
}

// Geometry is the derived grid arrangement for one screen size.
type Geometry struct {
	ItemWidth         int32
	RowCount          int32
	TopMargin         int32
	HorizontalPadding int32
	VerticalPadding   int32
	ColumnCount       int32
}

// ComputeGeometry sizes square cells so that columns and their surrounding
// padding span the screen width, then centres the rows vertically.
func ComputeGeometry(itemCount int, cfg Config, screenWidth, screenHeight int32, density DensityConverter) (Geometry, error) {
	if cfg.ColumnCount < 1 {
		return Geometry{}, &ConfigurationError{Field: "column_count", Value: cfg.ColumnCount, Reason: "must be at least 1"}
	}
	if itemCount < 0 {
		itemCount = 0
	}

	cols := int32(cfg.ColumnCount)
	hPadding := density.ToPixels(cfg.HorizontalPadding)
	vPadding := density.ToPixels(cfg.VerticalPadding)

	itemWidth := (screenWidth - (cols+1)*hPadding) / cols
	if itemWidth <= 0 {
		return Geometry{}, &LayoutError{
			ScreenWidth: screenWidth,
			ColumnCount: cfg.ColumnCount,
			PaddingPx:   hPadding,
			ItemWidthPx: itemWidth,
		}
	}

	rowCount := (int32(itemCount) + cols - 1) / cols
	topMargin := (screenHeight - (itemWidth+vPadding)*rowCount + vPadding) / 2

	return Geometry{
		ItemWidth:         itemWidth,
		RowCount:          rowCount,
		TopMargin:         topMargin,
		HorizontalPadding: hPadding,
		VerticalPadding:   vPadding,
		ColumnCount:       cols,
	}, nil
}

// Cell returns the rest rectangle and margins of the item at index.
func (g Geometry) Cell(index int) (Rect, Margins, int, int) {
	row := index / int(g.ColumnCount)
	col := index % int(g.ColumnCount)

	margins := Margins{Left: g.HorizontalPadding, Top: g.VerticalPadding}
	if row == 0 {
		margins.Top = g.TopMargin
	}

	rect := Rect{
		X: g.HorizontalPadding + int32(col)*(g.ItemWidth+g.HorizontalPadding),
		Y: g.TopMargin + int32(row)*(g.ItemWidth+g.VerticalPadding),
		W: g.ItemWidth,
		H: g.ItemWidth,
	}

	return rect, margins, row, col
}

// Layout is a built, detached visual tree.
type Layout struct {
	Root     *Node
	Grid     *Node
	Items    []*Node
	Dismiss  *Node
	Geometry Geometry
}

// BuildLayout constructs the frame, the item grid and the dismiss
// affordance. The returned tree is not attached to any surface.
func BuildLayout(items []Item, cfg Config, screenWidth, screenHeight int32, density DensityConverter) (*Layout, error) {
	geometry, err := ComputeGeometry(len(items), cfg, screenWidth, screenHeight, density)
	if err != nil {
		return nil, err
	}

	screen := Rect{W: screenWidth, H: screenHeight}
	root := newNode(NodeKindFrame, screen)
	grid := newNode(NodeKindGrid, screen)

	itemNodes := make([]*Node, 0, len(items))
	for i := range items {
		rect, margins, row, col := geometry.Cell(i)

		node := newNode(NodeKindItem, rect)
		node.Margins = margins
		node.Row = row
		node.Column = col
		node.ItemIndex = i
		node.Item = &items[i]

		grid.AddChild(node)
		itemNodes = append(itemNodes, node)
	}
	root.AddChild(grid)

	dismissSize := density.ToPixels(cfg.DismissSize)
	dismissInset := density.ToPixels(cfg.DismissInset)
	dismiss := newNode(NodeKindDismiss, Rect{
		X: (screenWidth - dismissSize) / 2,
		Y: screenHeight - dismissInset - dismissSize,
		W: dismissSize,
		H: dismissSize,
	})
	dismiss.Margins = Margins{Bottom: dismissInset}
	root.AddChild(dismiss)

	return &Layout{
		Root:     root,
		Grid:     grid,
		Items:    itemNodes,
		Dismiss:  dismiss,
		Geometry: geometry,
	}, nil
}

// RowSizes reports how many items sit on each row.
func (l *Layout) RowSizes() []int {
	sizes := make([]int, l.Geometry.RowCount)
	for _, n := range l.Items {
		sizes[n.Row]++
	}
	return sizes
}
