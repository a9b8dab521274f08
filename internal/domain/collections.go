package domain

// CollectionSpec describes one managed content collection.
type CollectionSpec struct {
	Name string
	// PublicCap limits how many rows the public view returns; 0 = uncapped.
	PublicCap int
}

// Collection names. These double as the URL segment for content endpoints
// and as the sheet names in roster import/export workbooks.
const (
	CollectionGuests    = "guests"
	CollectionMentors   = "mentors"
	CollectionJudges    = "judges"
	CollectionWorkshops = "workshops"
	CollectionSponsors  = "sponsors"
	CollectionVentures  = "ventures"
)

// Collections is the registry of managed collections in display order.
var Collections = []CollectionSpec{
	{Name: CollectionGuests, PublicCap: 6},
	{Name: CollectionMentors, PublicCap: 12},
	{Name: CollectionJudges, PublicCap: 6},
	{Name: CollectionWorkshops, PublicCap: 3},
	{Name: CollectionSponsors},
	{Name: CollectionVentures},
}

// LookupCollection resolves a collection name against the registry.
func LookupCollection(name string) (CollectionSpec, bool) {
	for _, spec := range Collections {
		if spec.Name == name {
			return spec, true
		}
	}
	return CollectionSpec{}, false
}

// UpdatableFields lists the item fields an admin may write individually.
// Identity and timestamps are server-owned.
var UpdatableFields = map[string]bool{
	"name":        true,
	"title":       true,
	"subtitle":    true,
	"description": true,
	"highlights":  true,
	"image_url":   true,
	"link_url":    true,
	"sort_order":  true,
}
