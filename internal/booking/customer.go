package booking

// CustomerKind selects which rate table of a hotel applies
type CustomerKind int

const (
	Regular CustomerKind = iota
	Rewards
)

func (k CustomerKind) String() string {
	switch k {
	case Regular:
		return "Regular"
	case Rewards:
		return "Rewards"
	default:
		return "Unknown"
	}
}
