package event

// PurgeAggregateID is used as the aggregate id of purge events, which are
// about the link table as a whole rather than a single link.
const PurgeAggregateID = "links"

// LinkPurged is raised when a sweep removed expired links.
type LinkPurged struct {
	Base
	Count int `json:"count"`
}

func NewLinkPurged(count int) LinkPurged {
	return LinkPurged{
		Base:  NewBase(PurgeAggregateID),
		Count: count,
	}
}

func (e LinkPurged) EventName() string {
	return LinkPurgedName
}
