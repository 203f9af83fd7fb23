package placeholder

// Todo mirrors a single record returned by GET /todos.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
