package schema

type CategoryID string

const (
	CategoryShopping  CategoryID = "shopping"
	CategoryCleaning  CategoryID = "cleaning"
	CategoryTools     CategoryID = "tools"
	CategoryTransport CategoryID = "transport"
	CategoryTech      CategoryID = "tech"
	CategoryOther     CategoryID = "other"
)

var HelpCategories = []CategoryID{
	CategoryShopping,
	CategoryCleaning,
	CategoryTools,
	CategoryTransport,
	CategoryTech,
	CategoryOther,
}

func (c CategoryID) Valid() bool {
	for _, id := range HelpCategories {
		if c == id {
			return true
		}
	}
	return false
}

type CategorySet map[CategoryID]struct{}

func NewCategorySet(ids ...CategoryID) CategorySet {
	s := make(CategorySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s CategorySet) Has(id CategoryID) bool {
	_, ok := s[id]
	return ok
}
