package roster

// View is the compact projection of a record used in group occurrences and
// duplicate previews, so reports stay readable without dumping full records.
type View struct {
	Name             any `json:"name"`
	NameAr           any `json:"name_ar"`
	TransfermarktID  any `json:"transfermarkt_id"`
	TransfermarktURL any `json:"transfermarkt_url"`
	WikipediaURL     any `json:"wikipedia_url_provided"`
}

// View projects the record's reporting fields, tolerating the URL field
// aliases seen in scraped exports.
func (r Record) View() View {
	return View{
		Name:             r["name"],
		NameAr:           r["name_ar"],
		TransfermarktID:  r.Field("transfermarkt_id", "id"),
		TransfermarktURL: r.Field("transfermarkt_url", "transfermarktUrl"),
		WikipediaURL:     r.Field("wikipedia_url_provided", "wikipedia_url", "wikipedia"),
	}
}
