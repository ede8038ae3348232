package service

import "mkulima/entities"

type KBService interface {
	// UpsertDocument stores an advisory article and returns it with the
	// number of chunks written.
	UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error)
	Search(query string, k int) ([]entities.KBChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.KBDocument, error)
}
