package client

// MessageTypeSMS is the only message class this service sends. The text
// length budget enforced upstream keeps every message inside the plain
// SMS size class.
const MessageTypeSMS = "SMS"

type Message struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type sendManyRequest struct {
	Messages []Message `json:"messages"`
}
