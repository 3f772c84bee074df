package validator

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"prestamos-api/internal/domain/catalogo"
	"prestamos-api/internal/domain/user"
	"prestamos-api/internal/interface/api/rest/dto/auth"
	"prestamos-api/internal/interface/api/rest/dto/solicitud"
)

const (
	minNombreLen   = 3
	maxNombreLen   = 30
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt safe

	maxDireccionLen   = 200
	maxDescripcionLen = 200
)

func ValidateID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	nombre := strings.TrimSpace(r.Nombre)
	correo := strings.ToLower(strings.TrimSpace(r.Correo))

	if nombre == "" {
		errs["nombre"] = "nombre is required"
	} else if l := utf8.RuneCountInString(nombre); l < minNombreLen || l > maxNombreLen {
		errs["nombre"] = "nombre length must be 3–30 characters"
	} else if !isHumanName(nombre) {
		errs["nombre"] = "allowed characters: letters, space, '-', '''"
	}

	if correo == "" {
		errs["correo"] = "correo is required"
	} else if _, err := mail.ParseAddress(correo); err != nil {
		errs["correo"] = "invalid email format"
	}

	if r.Contrasena == "" {
		errs["contrasena"] = "contrasena is required"
	} else if utf8.RuneCountInString(r.Contrasena) < minPasswordLen {
		errs["contrasena"] = "contrasena must be at least 6 characters"
	} else if len(r.Contrasena) > maxPasswordLen {
		errs["contrasena"] = "contrasena must be at most 72 bytes"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	correo := strings.ToLower(strings.TrimSpace(r.Correo))
	if correo == "" {
		errs["correo"] = "correo is required"
	} else if _, err := mail.ParseAddress(correo); err != nil {
		errs["correo"] = "invalid email format"
	}

	if strings.TrimSpace(r.Contrasena) == "" {
		errs["contrasena"] = "contrasena is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateGoogle(r auth.GoogleRequest) map[string]string {
	if strings.TrimSpace(r.IDToken) == "" {
		return map[string]string{"id_token": "id_token is required"}
	}
	return nil
}

var perfilAllowList = map[string]struct{}{
	"nombre":    {},
	"telefono":  {},
	"direccion": {},
}

// ValidatePerfilPatch builds a patch from a raw JSON object so unknown
// keys can be told apart from absent ones. Unknown keys come back in
// desconocidos; field-level problems in errs.
func ValidatePerfilPatch(raw map[string]any) (patch user.Patch, desconocidos []string, errs map[string]string) {
	errs = make(map[string]string)

	for k := range raw {
		if _, ok := perfilAllowList[k]; !ok {
			desconocidos = append(desconocidos, k)
		}
	}
	if len(desconocidos) > 0 {
		return user.Patch{}, desconocidos, nil
	}

	if v, ok := raw["nombre"]; ok {
		s, isStr := v.(string)
		s = strings.TrimSpace(s)
		if !isStr || s == "" {
			errs["nombre"] = "nombre must be a non-empty string"
		} else if l := utf8.RuneCountInString(s); l < minNombreLen || l > maxNombreLen {
			errs["nombre"] = "nombre length must be 3–30 characters"
		} else {
			patch.Nombre = &s
		}
	}
	if v, ok := raw["telefono"]; ok {
		if s, fieldErr := optionalString(v, 30); fieldErr != "" {
			errs["telefono"] = fieldErr
		} else {
			patch.Telefono = s
		}
	}
	if v, ok := raw["direccion"]; ok {
		if s, fieldErr := optionalString(v, maxDireccionLen); fieldErr != "" {
			errs["direccion"] = fieldErr
		} else {
			patch.Direccion = s
		}
	}

	if len(errs) == 0 {
		errs = nil
	}
	return patch, nil, errs
}

// optionalString accepts a string or explicit null; null clears the
// stored value by mapping to an empty string.
func optionalString(v any, maxLen int) (*string, string) {
	if v == nil {
		empty := ""
		return &empty, ""
	}
	s, ok := v.(string)
	if !ok {
		return nil, "must be a string"
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxLen {
		return nil, "value too long (max " + strconv.Itoa(maxLen) + " characters)"
	}
	return &s, ""
}

func ValidateSolicitudCreate(r solicitud.CreateRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.MetodoEntrega) == "" {
		errs["metodo_entrega"] = "metodo_entrega is required"
	}
	if r.DireccionEntrega != nil && utf8.RuneCountInString(*r.DireccionEntrega) > maxDireccionLen {
		errs["direccion_entrega"] = "direccion_entrega too long (max 200 characters)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateSolicitudPatch(r solicitud.PatchRequest) map[string]string {
	errs := make(map[string]string)

	if r.MetodoEntrega == nil && r.DireccionEntrega == nil {
		errs["body"] = "at least one of metodo_entrega, direccion_entrega is required"
	}
	if r.MetodoEntrega != nil && strings.TrimSpace(*r.MetodoEntrega) == "" {
		errs["metodo_entrega"] = "metodo_entrega must not be empty"
	}
	if r.DireccionEntrega != nil && utf8.RuneCountInString(*r.DireccionEntrega) > maxDireccionLen {
		errs["direccion_entrega"] = "direccion_entrega too long (max 200 characters)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateEstado(r solicitud.EstadoRequest) map[string]string {
	if strings.TrimSpace(r.Estado) == "" {
		return map[string]string{"estado": "estado is required"}
	}
	return nil
}

func ValidateCompleta(r solicitud.CompletaRequest) map[string]string {
	errs := ValidateSolicitudCreate(solicitud.CreateRequest{
		MetodoEntrega:    r.MetodoEntrega,
		DireccionEntrega: r.DireccionEntrega,
	})
	if errs == nil {
		errs = make(map[string]string)
	}

	if len(r.Articulos) == 0 {
		errs["articulos"] = "at least 1 articulo is required"
	}
	for idx, a := range r.Articulos {
		prefix := "articulos[" + strconv.Itoa(idx) + "]"

		if a.IDTipo <= 0 {
			errs[prefix+".id_tipo_articulo"] = "id_tipo_articulo must be a positive id"
		}
		if strings.TrimSpace(a.Descripcion) == "" {
			errs[prefix+".descripcion"] = "descripcion is required"
		} else if utf8.RuneCountInString(a.Descripcion) > maxDescripcionLen {
			errs[prefix+".descripcion"] = "descripcion too long (max 200 characters)"
		}
		if a.ValorEstimado < 0 {
			errs[prefix+".valor_estimado"] = "valor_estimado must not be negative"
		}
		if a.Condicion != nil && !isCondicion(*a.Condicion) {
			errs[prefix+".condicion"] = "condicion must be one of: nuevo, seminuevo, usado, malo"
		}
		for fdx, f := range a.Fotos {
			fprefix := prefix + ".fotos[" + strconv.Itoa(fdx) + "]"
			if !isHTTPURL(f.URL) {
				errs[fprefix+".url"] = "url must be a valid http(s) URL"
			}
			if f.Orden < 1 {
				errs[fprefix+".orden"] = "orden must be >= 1"
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isCondicion(s string) bool {
	for _, o := range catalogo.CondicionesArticulo() {
		if strings.EqualFold(s, o.Valor) {
			return true
		}
	}
	return false
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
