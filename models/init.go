package models

// Init creates or updates the user and post tables, including the unique
// indexes on username and email that back duplicate detection.
func (s *Store) Init() error {
	if err := s.DB.AutoMigrate(&User{}); err != nil {
		return err
	}
	return s.DB.AutoMigrate(&Post{})
}
