package store

// The notebook schema: three entity tables plus the name-keyed links table.
// Foreign keys cascade so that deleting a note or a tag sweeps its join rows,
// while links deliberately reference the target by name only.

type Note struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;not null"`
	Content string `gorm:"not null"`
}

type Tag struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null"`
	Color uint32 `gorm:"not null"`
}

type TagJoin struct {
	ID     int64 `gorm:"primaryKey"`
	NoteID int64 `gorm:"uniqueIndex:idx_tag_join_pair;not null"`
	TagID  int64 `gorm:"uniqueIndex:idx_tag_join_pair;not null"`
	Note   Note  `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
	Tag    Tag   `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (TagJoin) TableName() string { return "tag_join" }

type Link struct {
	ID     int64  `gorm:"primaryKey"`
	FromID int64  `gorm:"index;not null"`
	ToName string `gorm:"not null"`
	Note   Note   `gorm:"foreignKey:FromID;constraint:OnDelete:CASCADE"`
}
