package powerset

// Definition Describes an input NFA. It is a plain value: New copies what it needs and
// never keeps a reference to the slices.
type Definition struct {
	States      []StateDef      `yaml:"states" mapstructure:"states"`
	Transitions []TransitionDef `yaml:"transitions" mapstructure:"transitions"`
	Start       string          `yaml:"start" mapstructure:"start"`

	// Accepting names accept states in addition to the ones flagged in States.
	Accepting []string `yaml:"accepting" mapstructure:"accepting"`
}

// StateDef One original state.
type StateDef struct {
	Name      string `yaml:"name" mapstructure:"name"`
	Accepting bool   `yaml:"accepting" mapstructure:"accepting"`
}

// TransitionDef One labeled edge of the NFA.
type TransitionDef struct {
	Symbol string `yaml:"symbol" mapstructure:"symbol"`
	From   string `yaml:"from" mapstructure:"from"`
	To     string `yaml:"to" mapstructure:"to"`
}

// acceptingNames Returns the names of all accept states, flagged ones first, in declaration order
// and without duplicates.
func (d Definition) acceptingNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(d.Accepting))
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, s := range d.States {
		if s.Accepting {
			add(s.Name)
		}
	}
	for _, name := range d.Accepting {
		add(name)
	}
	return names
}
