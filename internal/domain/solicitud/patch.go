package solicitud

// Patch is the partial-update shape for a solicitud header. Estado is
// not patchable here; status transitions go through the privileged
// endpoint.
type Patch struct {
	MetodoEntrega    *string
	DireccionEntrega *string
}

func (p Patch) Empty() bool {
	return p.MetodoEntrega == nil && p.DireccionEntrega == nil
}
