package auth

type (
	RegisterRequest struct {
		Nombre     string `json:"nombre"`
		Correo     string `json:"correo"`
		Contrasena string `json:"contrasena"`
	}

	LoginRequest struct {
		Correo     string `json:"correo"`
		Contrasena string `json:"contrasena"`
	}

	GoogleRequest struct {
		IDToken string `json:"id_token"`
	}
)
