package entities

// ServiceType is a catalog entry describing an activity kind within a demand
// category. Reference data; seeded by cmd/migrate and read-only afterwards.
type ServiceType struct {
	ID        string      `json:"id"`
	Nome      string      `json:"nome"`
	Categoria TipoDemanda `json:"categoria"`
	Ativo     bool        `json:"ativo"`
}
