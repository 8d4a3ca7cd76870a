package dto

// Respuesta is the uniform API envelope: {success, message, data}.
// Soft results ("already closed", "already annulled") are delivered through it
// with Success=false and a 200 status; callers must branch on the flag.
type Respuesta struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Exito builds a successful envelope.
func Exito(message string, data interface{}) *Respuesta {
	return &Respuesta{Success: true, Message: message, Data: data}
}

// Aviso builds a non-error envelope with Success=false (idempotent-read
// semantics: the operation was understood but changed nothing).
func Aviso(message string, data interface{}) *Respuesta {
	return &Respuesta{Success: false, Message: message, Data: data}
}
