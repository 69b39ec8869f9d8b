package models

// CityOption is a typeahead suggestion for an origin or destination.
type CityOption struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

// RecentCity is the bounded per-session "recently used" cache entry.
type RecentCity struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CityQuery struct {
	Query string `form:"q"`
	// Seq is a client-supplied monotonic sequence number. Results are always
	// returned, but per-session typeahead state is committed only when Seq is
	// at least the newest sequence seen, so a slow early request can never
	// overwrite a later one.
	Seq int64 `form:"seq"`
}
