package model

// Customer is customer model entity
type Customer struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Code    string `json:"code" bson:"code"`
	Name    string `json:"name" bson:"name"`
	Points  int    `json:"points" bson:"points"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

// Identifier returns customer id
func (c *Customer) Identifier() string {
	return c.ID
}

// AssignIdentifier sets customer id
func (c *Customer) AssignIdentifier(id string) {
	c.ID = id
}
