package entities

type User struct {
	ID      string
	Role    UserRoleType
	Name    string
	Phone   string
	Address string
}

type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleStaff UserRoleType = "staff"
	RoleAdmin UserRoleType = "admin"
)

const DefaultUserRole = RoleUser

func (r UserRoleType) String() string {
	return string(r)
}
