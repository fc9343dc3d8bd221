package domain

import "github.com/google/uuid"

// DirectoryEntry is one (campaign, ad group) pairing available for
// selection. A campaign name repeats once per ad group.
type DirectoryEntry struct {
	ID       uuid.UUID `json:"id"`
	Campaign string    `json:"campaign"`
	AdGroup  string    `json:"adGroup"`
}
