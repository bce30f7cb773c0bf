package domain

// TicketRecord identifies a follow-up ticket created in the tracking system.
type TicketRecord struct {
	Key string `json:"key"`
	ID  string `json:"id"`
	URL string `json:"url"`
}

// DocumentRecord identifies an entry created in the document database.
type DocumentRecord struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ChannelMessage is a single message read from a chat channel.
type ChannelMessage struct {
	Type     string `json:"type"`
	User     string `json:"user,omitempty"`
	Text     string `json:"text"`
	TS       string `json:"ts"`
	ThreadTS string `json:"thread_ts,omitempty"`
}
