package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
}

// Render patches the signals for DataStar requests and writes them as JSON
// otherwise.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}

	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchSignals(data)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, err = w.Write(data)
	return err
}

// Signals returns a Response updating client signals. v must marshal to a
// JSON object.
//
//	return handler.Signals(map[string]any{"qty": "10"})
func Signals(v any) Response {
	return signalsResponse{signals: v}
}
