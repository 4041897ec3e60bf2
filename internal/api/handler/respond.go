package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Contrato do formulário legado do site: os endpoints de negócio sempre
// respondem 200, com status "success" ou "error" no corpo.
type formResponse map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("handler: failed to encode response")
	}
}

func writeFormError(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusOK, formResponse{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}
