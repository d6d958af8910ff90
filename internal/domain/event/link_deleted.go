package event

// LinkDeleted is raised when a link is removed by request.
type LinkDeleted struct {
	Base
	ShortCode string `json:"short_code"`
}

func NewLinkDeleted(linkID, shortCode string) LinkDeleted {
	return LinkDeleted{
		Base:      NewBase(linkID),
		ShortCode: shortCode,
	}
}

func (e LinkDeleted) EventName() string {
	return LinkDeletedName
}
