package model

// Item is the domain model for a todo entry.
// Field names match the persisted JSON contract.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}
