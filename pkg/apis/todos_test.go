package apis

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"apilab/pkg/fetch"

	"github.com/go-playground/assert/v2"
)

func TestTodoFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId":1,"id":1,"title":"delectus aut autem","completed":false}`))
	}))
	defer srv.Close()

	client := NewTodosClient(TodosConfig{BaseURL: srv.URL})

	todo, err := client.Todo(1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, todo.UserID)
	assert.Equal(t, 1, todo.ID)
	assert.Equal(t, "delectus aut autem", todo.Title)
	assert.Equal(t, false, todo.Completed)
}

func TestTodoNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.Error(w, `{}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewTodosClient(TodosConfig{BaseURL: srv.URL})

	todo, err := client.Todo(999)
	assert.Equal(t, true, todo == nil)

	var statusErr *fetch.StatusError
	assert.Equal(t, true, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestTodoJSONKeepsOrder(t *testing.T) {
	body := `{"userId":1,"id":1,"title":"delectus aut autem","completed":false}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewTodosClient(TodosConfig{BaseURL: srv.URL})

	raw, err := client.TodoJSON(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, body, string(raw))
}

func TestTodosLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("_limit"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"userId": 1, "id": 1, "title": "delectus aut autem", "completed": false},
			{"userId": 1, "id": 2, "title": "quis ut nam facilis", "completed": false},
		})
	}))
	defer srv.Close()

	client := NewTodosClient(TodosConfig{BaseURL: srv.URL})

	todos, err := client.Todos(2)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(todos))
	assert.Equal(t, 2, todos[1].ID)
}
