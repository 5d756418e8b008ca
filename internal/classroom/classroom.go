// Package classroom lists the external course catalog a class can be
// synced against. The real integration is stubbed with a fixed roster.
package classroom

// Course is one entry in the external catalog.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section"`
}

// Catalog fetches the courses available for syncing.
type Catalog interface {
	Courses() ([]Course, error)
}

// MockCatalog serves a canned course list without touching any network.
type MockCatalog struct{}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{}
}

func (m *MockCatalog) Courses() ([]Course, error) {
	return []Course{
		{ID: "1", Name: "Advanced Mathematics", Section: "Grade 10"},
		{ID: "2", Name: "Physics Fundamentals", Section: "Grade 10"},
		{ID: "3", Name: "World History", Section: "Grade 10"},
		{ID: "4", Name: "English Literature", Section: "Grade 10"},
	}, nil
}
