package handler

import "apilab/internal/model"

// MemoryStore holds the canned sample payloads the demo server serves. The
// todo records mirror the first few the real placeholder service returns.
type MemoryStore struct {
	todos    []model.Todo
	pictures map[string]model.Picture
	today    string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: []model.Todo{
			{UserID: 1, ID: 1, Title: "delectus aut autem", Completed: false},
			{UserID: 1, ID: 2, Title: "quis ut nam facilis et officia qui", Completed: false},
			{UserID: 1, ID: 3, Title: "fugiat veniam minus", Completed: false},
			{UserID: 1, ID: 4, Title: "et porro tempora", Completed: true},
			{UserID: 1, ID: 5, Title: "laboriosam mollitia et enim quasi adipisci quia provident illum", Completed: false},
		},
		pictures: map[string]model.Picture{
			"2026-02-26": {
				Date:           "2026-02-26",
				Explanation:    "A supernova remnant some 6,500 light-years away, the Crab Nebula is the expanding debris cloud of a star seen to explode in the year 1054.",
				HDURL:          "http://localhost/images/crab_hd.jpg",
				MediaType:      "image",
				ServiceVersion: "v1",
				Title:          "The Crab Nebula",
				URL:            "http://localhost/images/crab.jpg",
			},
			"2026-02-25": {
				Copyright:      "Local Observatory",
				Date:           "2026-02-25",
				Explanation:    "Rising over the limb of the Moon, planet Earth hangs in the black sky in this restored image from lunar orbit.",
				HDURL:          "http://localhost/images/earthrise_hd.jpg",
				MediaType:      "image",
				ServiceVersion: "v1",
				Title:          "Earthrise",
				URL:            "http://localhost/images/earthrise.jpg",
			},
		},
		today: "2026-02-26",
	}
}

func (s *MemoryStore) Todo(id int) *model.Todo {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return &s.todos[i]
		}
	}
	return nil
}

func (s *MemoryStore) Todos(limit int) []model.Todo {
	if limit > len(s.todos) {
		limit = len(s.todos)
	}
	return s.todos[:limit]
}

// Picture returns the record for date, or today's sample when date is empty.
func (s *MemoryStore) Picture(date string) *model.Picture {
	if date == "" {
		date = s.today
	}
	if pic, ok := s.pictures[date]; ok {
		return &pic
	}
	return nil
}

func (s *MemoryStore) TodoTotal() int {
	return len(s.todos)
}
