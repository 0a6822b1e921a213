package models

import "strings"

// Tipos de concurso aceitos.
const (
	TipoNacional  = "nacional"
	TipoEstado    = "estado"
	TipoMunicipio = "municipio"
)

// NomeConcursoPadrao is used when a stored contest carries no name.
const NomeConcursoPadrao = "Concurso sem nome"

type Concurso struct {
	ID     string   `bson:"_id,omitempty" json:"id"`
	Nome   string   `bson:"nome" json:"nome"`
	Tipo   string   `bson:"tipo" json:"tipo"`
	Cargos []string `bson:"cargos" json:"cargos"`
}

// Normalize applies the permissive defaults for malformed stored
// records: missing name, unknown tipo and nil cargo list are repaired
// instead of rejected.
func (c *Concurso) Normalize() {
	c.Nome = strings.TrimSpace(c.Nome)
	if c.Nome == "" {
		c.Nome = NomeConcursoPadrao
	}
	switch c.Tipo {
	case TipoNacional, TipoEstado, TipoMunicipio:
	default:
		c.Tipo = TipoNacional
	}
	if c.Cargos == nil {
		c.Cargos = []string{}
	}
}
