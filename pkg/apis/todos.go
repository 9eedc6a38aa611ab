package apis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"apilab/internal/model"
	"apilab/pkg/fetch"
)

const defaultTodosBaseURL = "https://jsonplaceholder.typicode.com"

// TodosClient talks to the placeholder todo service. No credential needed.
type TodosClient struct {
	baseURL string
	fetcher *fetch.Client
}

type TodosConfig struct {
	BaseURL string
	Timeout time.Duration
}

func NewTodosClient(cfg TodosConfig) *TodosClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTodosBaseURL
	}

	return &TodosClient{
		baseURL: baseURL,
		fetcher: fetch.NewClient(cfg.Timeout),
	}
}

func (c *TodosClient) Name() string {
	return "Todos"
}

func (c *TodosClient) Todo(id int) (*model.Todo, error) {
	var todo model.Todo
	req := &fetch.Request{URL: fmt.Sprintf("%s/todos/%d", c.baseURL, id)}

	if err := c.fetcher.GetInto(req, &todo); err != nil {
		return nil, fmt.Errorf("todos fetch: %w", err)
	}

	return &todo, nil
}

// TodoJSON returns the raw body for presentation, key order intact.
func (c *TodosClient) TodoJSON(id int) (json.RawMessage, error) {
	req := &fetch.Request{URL: fmt.Sprintf("%s/todos/%d", c.baseURL, id)}

	raw, err := c.fetcher.GetJSON(req)
	if err != nil {
		return nil, fmt.Errorf("todos fetch: %w", err)
	}

	return raw, nil
}

func (c *TodosClient) Todos(limit int) ([]model.Todo, error) {
	var todos []model.Todo
	req := &fetch.Request{
		URL:   c.baseURL + "/todos",
		Query: map[string]string{"_limit": strconv.Itoa(limit)},
	}

	if err := c.fetcher.GetInto(req, &todos); err != nil {
		return nil, fmt.Errorf("todos fetch: %w", err)
	}

	return todos, nil
}
