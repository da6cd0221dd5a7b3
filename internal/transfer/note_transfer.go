package transfer

type NoteCreation struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Content string `json:"content"`
}
