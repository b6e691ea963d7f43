package entities

// Actor - аутентифицированный инициатор запроса, личность подтверждается выше по стеку.
type Actor struct {
	ID   string
	Role RoleType
}

type RoleType string

const (
	RoleCustomer RoleType = "customer"
	RoleDriver   RoleType = "driver"
	RoleAdmin    RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}
