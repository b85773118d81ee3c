package common

// UpdateResponse is the response from a track / untrack operation, specific
// to HTTP.
type UpdateResponse struct {
	// Updated is the number of trackers affected (0 or 1).
	Updated int64 `json:"updated"`
}

// TrackRequest names a job by its remote id, specific to HTTP.
type TrackRequest struct {
	ID string `json:"id"`
}
