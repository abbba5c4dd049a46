package dom

// Ref is a handle that receives the host element it is attached to.
//
// Current is set when the element renders, mirroring a mount.
type Ref struct {
	Current *Element
}

// NewRef returns an empty ref.
func NewRef() *Ref {
	return &Ref{}
}

func (r *Ref) attach(el *Element) {
	if r != nil {
		r.Current = el
	}
}
