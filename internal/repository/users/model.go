package users

// UserDoc повторяет строение документа в коллекции users.
type UserDoc struct {
	Role    string `json:"role"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
