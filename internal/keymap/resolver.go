package keymap

import "github.com/charmbracelet/bubbles/key"

// Resolver maps key strings to actions and exposes the bindings to
// bubbles/help.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	help     []key.Binding       // in declaration order, one per action
	contexts [][]key.Binding     // help columns, one per context
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	var columns []string
	column := make(map[string]int)
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		_, seen := r.byAction[b.Action]
		r.byAction[b.Action] = dedupe(append(r.byAction[b.Action], b.Keys...))
		if seen || len(b.Keys) == 0 {
			continue
		}

		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		r.help = append(r.help, kb)
		i, ok := column[b.Context]
		if !ok {
			i = len(columns)
			column[b.Context] = i
			columns = append(columns, b.Context)
			r.contexts = append(r.contexts, nil)
		}
		r.contexts[i] = append(r.contexts[i], kb)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(k string) Action {
	return r.bindings[k]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// ShortHelp implements help.KeyMap.
func (r *Resolver) ShortHelp() []key.Binding {
	return r.help
}

// FullHelp implements help.KeyMap with one column per context.
func (r *Resolver) FullHelp() [][]key.Binding {
	return r.contexts
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
