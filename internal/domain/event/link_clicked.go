package event

// LinkClicked is raised after a successful redirect. Link carries the
// post-increment record so live subscribers can render it directly.
type LinkClicked struct {
	Base
	Link LinkSnapshot `json:"link"`
}

func NewLinkClicked(link LinkSnapshot) LinkClicked {
	return LinkClicked{
		Base: NewBase(link.ID),
		Link: link,
	}
}

func (e LinkClicked) EventName() string {
	return LinkClickedName
}
