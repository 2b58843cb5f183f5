package powerset

// SampleDefinition Returns the four-state reference NFA over {a, b} with s accepting.
// States are declared in the order p, q, s, r, which fixes the interning order of the
// composite states.
func SampleDefinition() Definition {
	return Definition{
		States: []StateDef{
			{Name: "p"},
			{Name: "q"},
			{Name: "s", Accepting: true},
			{Name: "r"},
		},
		Start: "p",
		Transitions: []TransitionDef{
			{Symbol: "a", From: "p", To: "q"},
			{Symbol: "a", From: "p", To: "r"},
			{Symbol: "b", From: "p", To: "r"},

			{Symbol: "b", From: "r", To: "p"},
			{Symbol: "a", From: "r", To: "r"},
			{Symbol: "a", From: "r", To: "s"},

			{Symbol: "b", From: "q", To: "q"},
			{Symbol: "b", From: "q", To: "s"},

			{Symbol: "a", From: "s", To: "s"},
			{Symbol: "a", From: "s", To: "r"},
			{Symbol: "b", From: "s", To: "r"},
		},
	}
}
