package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeletedResponse respuesta de borrados: filas eliminadas.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// CreatedResponse respuesta de altas simples: id generado.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
