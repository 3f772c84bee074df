package user

// Patch is the explicit allow-list of profile fields a user may change.
// A nil field means "leave as is"; unknown request fields are rejected
// before this struct is ever built.
type Patch struct {
	Nombre    *string
	Telefono  *string
	Direccion *string
}

func (p Patch) Empty() bool {
	return p.Nombre == nil && p.Telefono == nil && p.Direccion == nil
}
