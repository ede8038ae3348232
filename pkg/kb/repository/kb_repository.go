package repository

import "mkulima/entities"

type KBRepository interface {
	CreateDoc(d *entities.KBDocument) error
	BulkInsertChunks(cs []entities.KBChunk) error
	AllChunks() ([]entities.KBChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.KBDocument, error)
}
