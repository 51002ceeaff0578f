package model

// Gift is gift model entity, price is expressed in loyalty points
type Gift struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Code        string `json:"code" bson:"code"`
	Name        string `json:"name" bson:"name"`
	Price       int    `json:"price" bson:"price"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"`
}

// Identifier returns gift id
func (g *Gift) Identifier() string {
	return g.ID
}

// AssignIdentifier sets gift id
func (g *Gift) AssignIdentifier(id string) {
	g.ID = id
}
