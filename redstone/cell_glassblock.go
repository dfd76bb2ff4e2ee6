package redstone

// GlassBlock is a transparent block. Like Air it carries no redstone state;
// unlike Air it is a SolidBlock's "non-solid but occupied" neighbour and
// never conducts or stores power.
type GlassBlock struct{}

// Kind implements Cell.
func (GlassBlock) Kind() Kind { return KindGlassBlock }

// Update implements Cell. GlassBlock has no dynamics.
func (GlassBlock) Update(*Engine, Pos) {}

// Clone implements Cell.
func (b GlassBlock) Clone() Cell { return b }

// Equal implements Cell.
func (GlassBlock) Equal(other Cell) bool {
	_, ok := other.(GlassBlock)
	return ok
}
