package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prestamos-api/internal/interface/api/rest/dto/auth"
	"prestamos-api/internal/interface/api/rest/dto/solicitud"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		in     string
		wantID int64
		wantOK bool
	}{
		{"1", 1, true},
		{"1045", 1045, true},
		{"0", 0, false},
		{"-7", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		id, ok := ValidateID(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if ok {
			assert.Equal(t, tt.wantID, id)
		}
	}
}

func TestValidateRegister(t *testing.T) {
	valid := auth.RegisterRequest{
		Nombre:     "Ana López",
		Correo:     "ana@example.com",
		Contrasena: "s3creta",
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.Nil(t, ValidateRegister(valid))
	})

	tests := []struct {
		name    string
		mutate  func(r *auth.RegisterRequest)
		wantKey string
	}{
		{"missing nombre", func(r *auth.RegisterRequest) { r.Nombre = "  " }, "nombre"},
		{"nombre too short", func(r *auth.RegisterRequest) { r.Nombre = "An" }, "nombre"},
		{"nombre too long", func(r *auth.RegisterRequest) { r.Nombre = strings.Repeat("a", 31) }, "nombre"},
		{"nombre with digits", func(r *auth.RegisterRequest) { r.Nombre = "Ana 2" }, "nombre"},
		{"missing correo", func(r *auth.RegisterRequest) { r.Correo = "" }, "correo"},
		{"malformed correo", func(r *auth.RegisterRequest) { r.Correo = "not-an-email" }, "correo"},
		{"missing contrasena", func(r *auth.RegisterRequest) { r.Contrasena = "" }, "contrasena"},
		{"contrasena too short", func(r *auth.RegisterRequest) { r.Contrasena = "12345" }, "contrasena"},
		{"contrasena over bcrypt limit", func(r *auth.RegisterRequest) { r.Contrasena = strings.Repeat("x", 73) }, "contrasena"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			errs := ValidateRegister(r)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantKey)
		})
	}

	t.Run("accented names and apostrophes pass", func(t *testing.T) {
		r := valid
		r.Nombre = "José-María O'Neill"
		require.Nil(t, ValidateRegister(r))
	})
}

func TestValidatePerfilPatch(t *testing.T) {
	t.Run("unknown keys reported without building a patch", func(t *testing.T) {
		_, desconocidos, errs := ValidatePerfilPatch(map[string]any{
			"nombre":        "Ana María",
			"correo":        "otro@example.com",
			"estado_activo": true,
		})
		require.Nil(t, errs)
		assert.ElementsMatch(t, []string{"correo", "estado_activo"}, desconocidos)
	})

	t.Run("valid patch", func(t *testing.T) {
		patch, desconocidos, errs := ValidatePerfilPatch(map[string]any{
			"nombre":   "Ana María",
			"telefono": "+525512345678",
		})
		require.Nil(t, errs)
		require.Empty(t, desconocidos)
		require.NotNil(t, patch.Nombre)
		assert.Equal(t, "Ana María", *patch.Nombre)
		require.NotNil(t, patch.Telefono)
		assert.Equal(t, "+525512345678", *patch.Telefono)
		assert.Nil(t, patch.Direccion)
	})

	t.Run("null clears optional fields", func(t *testing.T) {
		patch, _, errs := ValidatePerfilPatch(map[string]any{
			"telefono":  nil,
			"direccion": nil,
		})
		require.Nil(t, errs)
		require.NotNil(t, patch.Telefono)
		assert.Equal(t, "", *patch.Telefono)
		require.NotNil(t, patch.Direccion)
		assert.Equal(t, "", *patch.Direccion)
	})

	t.Run("field errors", func(t *testing.T) {
		tests := []struct {
			name    string
			raw     map[string]any
			wantKey string
		}{
			{"null nombre", map[string]any{"nombre": nil}, "nombre"},
			{"blank nombre", map[string]any{"nombre": "  "}, "nombre"},
			{"short nombre", map[string]any{"nombre": "An"}, "nombre"},
			{"non-string telefono", map[string]any{"telefono": 55}, "telefono"},
			{"direccion too long", map[string]any{"direccion": strings.Repeat("x", 201)}, "direccion"},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				_, desconocidos, errs := ValidatePerfilPatch(tt.raw)
				require.Empty(t, desconocidos)
				require.NotNil(t, errs)
				assert.Contains(t, errs, tt.wantKey)
			})
		}
	})
}

func TestValidateSolicitudPatch(t *testing.T) {
	metodo := "oficina"
	blank := "  "
	long := strings.Repeat("x", 201)

	tests := []struct {
		name    string
		req     solicitud.PatchRequest
		wantKey string
	}{
		{"empty patch", solicitud.PatchRequest{}, "body"},
		{"blank metodo", solicitud.PatchRequest{MetodoEntrega: &blank}, "metodo_entrega"},
		{"long direccion", solicitud.PatchRequest{DireccionEntrega: &long}, "direccion_entrega"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSolicitudPatch(tt.req)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantKey)
		})
	}

	t.Run("single field is enough", func(t *testing.T) {
		require.Nil(t, ValidateSolicitudPatch(solicitud.PatchRequest{MetodoEntrega: &metodo}))
	})
}

func TestValidateCompleta(t *testing.T) {
	condicion := "usado"
	valid := solicitud.CompletaRequest{
		MetodoEntrega: "oficina",
		Articulos: []solicitud.ArticuloRequest{
			{
				IDTipo:        3,
				Descripcion:   "Anillo de oro 14k",
				ValorEstimado: 2500,
				Condicion:     &condicion,
				Fotos: []solicitud.FotoRequest{
					{URL: "https://cdn.example.com/fotos/anillo.jpg", Orden: 1},
				},
			},
		},
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.Nil(t, ValidateCompleta(valid))
	})

	t.Run("condicion is case-insensitive", func(t *testing.T) {
		r := valid
		c := "Usado"
		r.Articulos = []solicitud.ArticuloRequest{valid.Articulos[0]}
		r.Articulos[0].Condicion = &c
		require.Nil(t, ValidateCompleta(r))
	})

	tests := []struct {
		name    string
		mutate  func(r *solicitud.CompletaRequest)
		wantKey string
	}{
		{
			"missing metodo",
			func(r *solicitud.CompletaRequest) { r.MetodoEntrega = "" },
			"metodo_entrega",
		},
		{
			"no articulos",
			func(r *solicitud.CompletaRequest) { r.Articulos = nil },
			"articulos",
		},
		{
			"zero tipo",
			func(r *solicitud.CompletaRequest) { r.Articulos[0].IDTipo = 0 },
			"articulos[0].id_tipo_articulo",
		},
		{
			"blank descripcion",
			func(r *solicitud.CompletaRequest) { r.Articulos[0].Descripcion = " " },
			"articulos[0].descripcion",
		},
		{
			"negative valor",
			func(r *solicitud.CompletaRequest) { r.Articulos[0].ValorEstimado = -1 },
			"articulos[0].valor_estimado",
		},
		{
			"unknown condicion",
			func(r *solicitud.CompletaRequest) {
				c := "destruido"
				r.Articulos[0].Condicion = &c
			},
			"articulos[0].condicion",
		},
		{
			"non-http foto url",
			func(r *solicitud.CompletaRequest) { r.Articulos[0].Fotos[0].URL = "ftp://host/f.jpg" },
			"articulos[0].fotos[0].url",
		},
		{
			"foto orden below 1",
			func(r *solicitud.CompletaRequest) { r.Articulos[0].Fotos[0].Orden = 0 },
			"articulos[0].fotos[0].orden",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			r.Articulos = []solicitud.ArticuloRequest{valid.Articulos[0]}
			r.Articulos[0].Fotos = []solicitud.FotoRequest{valid.Articulos[0].Fotos[0]}
			tt.mutate(&r)
			errs := ValidateCompleta(r)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantKey)
		})
	}
}
