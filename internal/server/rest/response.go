package rest

import (
	"encoding/json"
	"net/http"
)

const (
	msgTokenMissing   = "Token ausente"
	msgTokenInvalid   = "Token inválido"
	msgUserCreated    = "Usuário criado com sucesso"
	msgUserNotFound   = "Usuário não encontrado"
	msgWrongPassword  = "Senha inválida"
	msgAccessDenied   = "Acesso negado"
	msgInvalidMusicID = "musica_id deve ser inteiro"
	msgInternal       = "internal error"
)

type errorResponse struct {
	Error string `json:"error"`
}

type registerResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
