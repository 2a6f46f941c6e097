package popupctl

import "github.com/llehouerou/tidy/internal/ui/popup"

// stack holds layer keys from bottom to top.
type stack []string

func (s stack) contains(key string) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

// sync drops keys that have no layer this frame and pushes new ones on
// top, in the order given. It reports the keys that were added.
func (s *stack) sync(frame map[string]popup.Layer, order []string) (added []string) {
	kept := (*s)[:0]
	for _, k := range *s {
		if _, ok := frame[k]; ok {
			kept = append(kept, k)
		}
	}
	*s = kept
	for _, k := range order {
		if !s.contains(k) {
			*s = append(*s, k)
			added = append(added, k)
		}
	}
	return added
}
