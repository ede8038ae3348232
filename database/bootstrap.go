package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"mkulima/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	if err := SeedPlants(db); err != nil {
		log.Fatalf("seed plants: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.DiseaseDetection{},
		&entities.Plant{},
		&entities.KBDocument{},
		&entities.KBChunk{},
	)
}

// SeedPlants loads the supported-plant catalog on first boot. Rows are
// keyed by name, so reseeding an existing database is a no-op.
func SeedPlants(db *gorm.DB) error {
	plants := []entities.Plant{
		{
			Name:           "maize",
			ScientificName: "Zea mays",
			LocalName:      "Mahindi",
			Category:       "cereal",
			CommonDiseases: []string{
				"Maize Lethal Necrosis",
				"Northern Leaf Blight",
				"Common Rust",
				"Gray Leaf Spot",
				"Healthy",
			},
		},
		{
			Name:           "coffee",
			ScientificName: "Coffea arabica",
			LocalName:      "Kahawa",
			Category:       "cash_crop",
			CommonDiseases: []string{
				"Coffee Leaf Rust",
				"Coffee Berry Disease",
				"Healthy",
			},
		},
		{
			Name:           "tomato",
			ScientificName: "Solanum lycopersicum",
			LocalName:      "Nyanya",
			Category:       "vegetable",
			CommonDiseases: []string{
				"Tomato Early Blight",
				"Tomato Late Blight",
				"Tomato Leaf Mold",
				"Bacterial Spot",
				"Healthy",
			},
		},
		{
			Name:           "banana",
			ScientificName: "Musa acuminata",
			LocalName:      "Ndizi",
			Category:       "fruit",
			CommonDiseases: []string{
				"Banana Sigatoka",
				"Banana Bunchy Top",
				"Healthy",
			},
		},
	}

	for i := range plants {
		var existing entities.Plant
		err := db.Where("name = ?", plants[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&plants[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
