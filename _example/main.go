// Command example serves a JSON endpoint whose payloads are sanitized and
// validated by an apischema.Schema, plus the OpenAPI document describing it.
//
// Run:
//
//	go run ./_example
//
// Then POST to http://localhost:8080/orders or open
// http://localhost:8080/openapi.json.
package main

import (
	"net/http"
	"os"

	"github.com/Gobd/apischema"
	"github.com/Gobd/apischema/openapi"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var order = apischema.Definition{
	"customer_name": apischema.Prop{"type": apischema.String, "required": true, "trim": true, "length": []int{1, 200}},
	"item_count":    apischema.Prop{"type": apischema.Integer, "required": true, "min": 1},
	"total":         apischema.Prop{"type": apischema.Number, "required": true, "min": 0.01},
	"coupon":        apischema.Prop{"type": apischema.String, "uppercase": true, "match": `^[A-Z0-9]{6}$`},
	"shipping": apischema.Prop{
		"method": apischema.Prop{"type": apischema.String, "enum": []string{"ground", "air"}, "default": "ground"},
	},
}

// ErrorResponse is the body of non-validation failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	schema := apischema.NewMust(order, apischema.WithLogger(logger))

	doc := openapi.DocBase("Example API", "Demonstrates apischema", "0.1.0")
	err := openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:   "Create an order",
		Request:   schema,
		Response:  schema,
		Validated: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("build openapi document")
	}

	http.HandleFunc("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	})

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		clean, err := schema.Sanitize(r.Context(), payload, nil)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		errs, err := schema.Validate(r.Context(), clean, nil)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		if errs != nil {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}

		writeJSON(w, http.StatusOK, clean)
	})

	logger.Info().Str("addr", "http://localhost:8080").Msg("listening")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
