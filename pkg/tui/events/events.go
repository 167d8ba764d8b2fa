// Package events defines the messages fetch commands deliver to the UI.
package events

import (
	"fmt"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

// CatalogLoadedMsg carries the result of a catalog page fetch.
type CatalogLoadedMsg struct {
	Ticket dex.Ticket
	Page   *dex.CatalogPage
	Err    error
}

// Describe renders the result in a human-friendly format for logs.
func (m CatalogLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf("ticket:%d err:%q", m.Ticket, m.Err)
	}
	return fmt.Sprintf("ticket:%d category:%q page:%d records:%d", m.Ticket, m.Page.Category, m.Page.State.Current, len(m.Page.Records))
}

// TypesLoadedMsg carries the list of categories.
type TypesLoadedMsg struct {
	Ticket dex.Ticket
	Types  []pokeapi.Category
	Err    error
}

// Describe renders the result in a human-friendly format for logs.
func (m TypesLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf("ticket:%d err:%q", m.Ticket, m.Err)
	}
	return fmt.Sprintf("ticket:%d types:%d", m.Ticket, len(m.Types))
}

// RecordLoadedMsg carries the result of a search by name or id.
type RecordLoadedMsg struct {
	Ticket dex.Ticket
	Query  string
	Record *pokeapi.Record
	Err    error
}

// Describe renders the result in a human-friendly format for logs.
func (m RecordLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf("ticket:%d query:%q err:%q", m.Ticket, m.Query, m.Err)
	}
	return fmt.Sprintf("ticket:%d query:%q id:%d", m.Ticket, m.Query, m.Record.ID)
}
