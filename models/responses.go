package models

// CreateResponse is returned by the remote document API after a document
// has been created in a collection.
type CreateResponse struct {
	// ID is the server-assigned document identifier.
	ID string `json:"id"`
}

// DocumentResponse is the remote API representation of a single document.
type DocumentResponse struct {
	// ID is the last path segment of the document.
	ID string `json:"id"`

	// Data is the document body.
	Data Document `json:"data"`
}

// CollectionResponse lists every document of a collection.
type CollectionResponse struct {
	// Documents holds the collection members in server order.
	Documents []IdentifiedDocument `json:"documents"`

	// Length is the number of entries in Documents.
	Length int `json:"length"`
}
