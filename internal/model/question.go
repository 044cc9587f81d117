package model

// Question is one multiple-choice item of the placement test.
// The catalog is seeded once at startup and never mutated afterwards.
type Question struct {
	// autoIncrement:false keeps the catalog's explicit zero-based ids;
	// an auto-increment pk would turn id 0 into the sequence default.
	ID      int      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Text    string   `json:"text" gorm:"type:text;not null"`
	Options []Option `json:"options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// Option ids are local to their question (0, 1, 2, ...), matching the
// callback payload the chat keyboard sends back.
type Option struct {
	ID         int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	QuestionID int    `gorm:"primaryKey;autoIncrement:false" json:"question_id"`
	Text       string `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null"`
}
