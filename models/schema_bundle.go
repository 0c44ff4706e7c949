package models

import "time"

// SchemaBundle is a full snapshot of the study schema, used for exports.
type SchemaBundle struct {
	ExportedAt    time.Time      `json:"exported_at" yaml:"exported_at"`
	ServerVersion string         `json:"server_version" yaml:"server_version"`
	Studies       []Study        `json:"studies" yaml:"studies"`
	Forms         []InputForm    `json:"forms" yaml:"forms"`
	Fields        []InputField   `json:"fields" yaml:"fields"`
	Enums         []InputEnum    `json:"enums" yaml:"enums"`
	FoodEnums     []FoodEnum     `json:"food_enums" yaml:"food_enums"`
	FoodItems     []FoodEnumItem `json:"food_items" yaml:"food_items"`
	FoodImages    []FoodImage    `json:"food_images" yaml:"food_images"`
}
