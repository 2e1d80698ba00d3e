package models

// Champion is the reference table populated by the champion sync.
// Names can contain apostrophes and must survive a round trip untouched.
type Champion struct {
	ChampionId   int    `gorm:"primaryKey;autoIncrement:false;column:champion_id"`
	ChampionName string `gorm:"type:varchar(40);not null;column:champion_name"`
}

func (Champion) TableName() string {
	return "champions"
}
