package event

// LinkCreated is raised after a new link has been stored.
type LinkCreated struct {
	Base
	Link LinkSnapshot `json:"link"`
}

func NewLinkCreated(link LinkSnapshot) LinkCreated {
	return LinkCreated{
		Base: NewBase(link.ID),
		Link: link,
	}
}

func (e LinkCreated) EventName() string {
	return LinkCreatedName
}
