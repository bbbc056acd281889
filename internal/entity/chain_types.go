package entity

// Chain represents the metadata of a blockchain network as served by the
// Blockscout chain registry. A record is immutable once cached.
type Chain struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsTestnet   bool       `json:"isTestnet"`
	Explorers   []Explorer `json:"explorers"`
}

// Explorer defines one block explorer instance serving a chain. The resolver
// only ever uses the first entry of a chain's explorer list.
type Explorer struct {
	URL string `json:"url"`
}

// ExplorerURL returns the base URL of the chain's primary explorer, or false
// when the chain has no explorer entries at all.
func (c Chain) ExplorerURL() (string, bool) {
	if len(c.Explorers) == 0 {
		return "", false
	}
	return c.Explorers[0].URL, true
}
