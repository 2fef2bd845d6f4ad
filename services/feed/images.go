package feed

import (
	"strings"

	"urbanease/models"
)

// categoryImages maps exact (lower-cased) categories to stock photos. Entries
// for "painting" and "beauty" have no dedicated category but are reachable
// through keyword matching.
var categoryImages = map[string]string{
	"cleaning":       "https://images.unsplash.com/photo-1612857017655-7b035a3d8a5f?w=800&q=80",
	"house cleaning": "https://images.unsplash.com/photo-1612857017655-7b035a3d8a5f?w=800&q=80",
	"plumbing":       "https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=800&q=80",
	"electrical":     "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=800&q=80",
	"ac repair":      "https://plus.unsplash.com/premium_photo-1683134512538-7b390d0adc9e?q=80&w=800&auto=format&fit=crop",
	"pest control":   "https://images.unsplash.com/photo-1584650543209-482833075c32?w=800&q=80",
	"carpentry":      "https://images.unsplash.com/photo-1622547748225-3fc4abd2cca0?w=800&q=80",
	"gardening":      "https://images.unsplash.com/photo-1558904541-efa843a96f01?w=800&q=80",
	"grocery":        "https://images.unsplash.com/photo-1542838132-92c53300491e?w=800&q=80",
	"daily supplies": "https://images.unsplash.com/photo-1542838132-92c53300491e?w=800&q=80",
	"painting":       "https://images.unsplash.com/photo-1581578731117-104f8a3d46a8?w=800&q=80",
	"beauty":         "https://images.unsplash.com/photo-1507089947368-19c1da9775ae?w=800&q=80",
}

// keywordGroup routes free-text matches to a category image. Groups are
// checked in order; the first hit wins.
type keywordGroup struct {
	keywords []string
	category string
}

var keywordGroups = []keywordGroup{
	{[]string{"grocery", "vegetable", "fruit", "daily", "dairy"}, "grocery"},
	{[]string{"clean", "maid", "mop", "house"}, "cleaning"},
	{[]string{"plumb", "pipe", "leak", "sink"}, "plumbing"},
	{[]string{"electr", "wir", "power", "shock"}, "electrical"},
	{[]string{"paint", "wall", "decor"}, "painting"},
	{[]string{"ac", "cool", "conditioner"}, "ac repair"},
	{[]string{"beauty", "hair", "facial", "makeup"}, "beauty"},
	{[]string{"pest", "bug", "insect"}, "pest control"},
	{[]string{"wood", "furniture", "carpenter"}, "carpentry"},
}

// genericImages is the deterministic last-resort pool. A listing with no
// category or keyword match always lands on the same entry for the same text.
var genericImages = []string{
	"https://images.unsplash.com/photo-1507089947368-19c1da9775ae?w=800&q=80",
	"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&q=80",
	"https://images.unsplash.com/photo-1581578731117-104f8a3d46a8?w=800&q=80",
}

// ResolveImage picks a display image for a listing. It is pure and total:
// provider-uploaded absolute URLs win, then an exact category match, then
// keyword heuristics, then a charcode-hash pick from the generic pool.
func ResolveImage(listing models.Listing) string {
	if listing.HasTrustedImage() {
		return listing.Image
	}

	category := strings.ToLower(strings.TrimSpace(listing.Category))
	title := strings.ToLower(strings.TrimSpace(listing.Title))
	text := category + " " + title

	if img, ok := categoryImages[category]; ok {
		return img
	}

	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return categoryImages[group.category]
			}
		}
	}

	sum := 0
	for _, r := range text {
		sum += int(r)
	}
	return genericImages[sum%len(genericImages)]
}
